package handler

import (
	"strings"
	"sync"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
)

// DefaultBufferCapacity is the number of messages a BufferHandler keeps
// when no capacity is configured.
const DefaultBufferCapacity = 10000

// BufferHandler keeps the most recent log entries in memory. Once the
// capacity is reached the oldest entry is evicted for every new one.
type BufferHandler struct {
	formatter formatter.Formatter
	capacity  int

	mu       sync.Mutex
	entries  []core.Entry
	messages []string
	start    int
	closed   bool
}

// BufferConfig holds configuration for the message buffer handler
type BufferConfig struct {
	// Capacity is the maximum number of retained messages (default: DefaultBufferCapacity)
	Capacity int
	// Formatter renders retained messages (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewBufferHandler creates a new message buffer handler
func NewBufferHandler(cfg BufferConfig) *BufferHandler {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultBufferCapacity
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &BufferHandler{
		formatter: cfg.Formatter,
		capacity:  cfg.Capacity,
	}
}

// Handle formats the entry and appends it to the buffer
func (h *BufferHandler) Handle(entry core.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	msg := strings.TrimSuffix(string(data), "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, entry)
		h.messages = append(h.messages, msg)
		return nil
	}

	// Full: overwrite the oldest slot
	h.entries[h.start] = entry
	h.messages[h.start] = msg
	h.start = (h.start + 1) % h.capacity
	return nil
}

// Messages returns the retained messages, oldest first
func (h *BufferHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return ordered(h.messages, h.start)
}

// Entries returns the retained entries, oldest first
func (h *BufferHandler) Entries() []core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return ordered(h.entries, h.start)
}

// Len returns the number of retained messages
func (h *BufferHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

// Reset drops all retained messages
func (h *BufferHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	h.messages = nil
	h.start = 0
}

// String returns the retained messages joined by newlines
func (h *BufferHandler) String() string {
	return strings.Join(h.Messages(), "\n")
}

// Close stops the buffer from accepting entries. Retained messages
// remain readable.
func (h *BufferHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

func ordered[T any](ring []T, start int) []T {
	out := make([]T, 0, len(ring))
	out = append(out, ring[start:]...)
	return append(out, ring[:start]...)
}
