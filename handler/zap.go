package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/levellog/core"
)

// ZapHandler forwards entries to a zap logger.
//
// zap has no trace level, so Trace entries are written at Debug. Fatal
// entries are written at Error with a severity=FATAL field, because
// zap's own fatal level terminates the process.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler writing to l
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// Handle writes the entry through zap
func (h *ZapHandler) Handle(entry core.Entry) error {
	ce := h.logger.Check(coreLevelToZap(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	if !entry.Time.IsZero() {
		ce.Time = entry.Time
	}

	fields := make([]zap.Field, 0, 3)
	if entry.Logger != "" {
		fields = append(fields, zap.String("logger", entry.Logger))
	}
	if entry.Level == core.TraceLevel || entry.Level == core.FatalLevel {
		fields = append(fields, zap.String("severity", entry.Level.String()))
	}
	if entry.Err != nil {
		fields = append(fields, zap.Error(entry.Err))
	}
	ce.Write(fields...)
	return nil
}

// Close flushes any buffered zap output
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

func coreLevelToZap(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
