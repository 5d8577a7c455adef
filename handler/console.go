package handler

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
)

// ConsoleHandler writes formatted log entries to stdout or any io.Writer
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	stats           *Stats
	closed          atomic.Bool
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}

	// Cache WriterFormatter for the direct write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats and writes an entry
func (h *ConsoleHandler) Handle(entry core.Entry) error {
	if h.closed.Load() {
		return ErrClosed
	}

	if err := h.write(entry); err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

func (h *ConsoleHandler) write(entry core.Entry) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.writerFormatter.FormatTo(entry, h.writer)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.writer.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The underlying writer is not closed
// because the handler does not own it.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
