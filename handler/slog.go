package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/levellog/core"
)

// Levels that log/slog lacks
const (
	SlogLevelTrace = slog.LevelDebug - 4
	SlogLevelFatal = slog.LevelError + 4
)

// SlogHandler forwards entries to a log/slog.Handler, letting any slog
// backend serve as the sink for a levellog Logger.
type SlogHandler struct {
	handler slog.Handler
}

// NewSlogHandler creates a handler writing to h
func NewSlogHandler(h slog.Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Handle converts the entry to a slog.Record. The slog handler's own
// Enabled check still applies.
func (s *SlogHandler) Handle(entry core.Entry) error {
	ctx := context.Background()
	level := CoreLevelToSlog(entry.Level)
	if !s.handler.Enabled(ctx, level) {
		return nil
	}

	record := slog.NewRecord(entry.Time, level, entry.Message, 0)
	if entry.Logger != "" {
		record.AddAttrs(slog.String("logger", entry.Logger))
	}
	if entry.Err != nil {
		record.AddAttrs(slog.Any("error", entry.Err))
	}
	return s.handler.Handle(ctx, record)
}

// Close is a no-op; the slog handler is owned by the caller
func (s *SlogHandler) Close() error {
	return nil
}

// CoreLevelToSlog maps a core.Level onto the slog scale
func CoreLevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return SlogLevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return SlogLevelFatal
	}
}
