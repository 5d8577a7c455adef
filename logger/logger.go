package logger

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/handler"
)

// Logger is the level-gated logging contract.
//
// The eager methods (Trace..Fatal) take an already built message and an
// optional error. The closure methods (Tracec..Fatalc) take producers
// that are only invoked when the level is enabled, message producer
// first, then error producers in order. Both surfaces make exactly the
// same forward/suppress decision for a given level.
//
// Passing more than one error combines them with multierr; nil errors
// are ignored.
type Logger interface {
	Trace(msg string, err ...error)
	Debug(msg string, err ...error)
	Info(msg string, err ...error)
	Warn(msg string, err ...error)
	Error(msg string, err ...error)
	Fatal(msg string, err ...error)

	Tracec(msg func() string, err ...func() error)
	Debugc(msg func() string, err ...func() error)
	Infoc(msg func() string, err ...func() error)
	Warnc(msg func() string, err ...func() error)
	Errorc(msg func() string, err ...func() error)
	Fatalc(msg func() string, err ...func() error)

	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool
	IsFatalEnabled() bool

	// Enabled reports whether the logger forwards entries at level
	Enabled(level Level) bool

	// LogLevel returns the configured threshold
	LogLevel() Level

	// Name returns the logger's name, empty for anonymous loggers
	Name() string
}

// ErrorHandler is called when the handler fails to process an entry
type ErrorHandler func(entry core.Entry, err error)

// WriterErrorHandler reports handler failures as a line on w
func WriterErrorHandler(w io.Writer) ErrorHandler {
	return func(entry core.Entry, err error) {
		_, _ = fmt.Fprintf(w, "levellog: %s entry for %q not handled: %v\n", entry.Level, entry.Logger, err)
	}
}

// HandlerLogger is the Logger implementation backed by a handler.Handler.
// It is immutable once built and safe for concurrent use.
type HandlerLogger struct {
	name    string
	level   Level
	handler handler.Handler
	onError ErrorHandler
	now     func() time.Time
}

var _ Logger = (*HandlerLogger)(nil)

// Builder provides a fluent API for building HandlerLogger instances
type Builder struct {
	name    string
	level   Level
	handler handler.Handler
	onError ErrorHandler
	now     func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: InfoLevel, // Default level
		now:   time.Now,
	}
}

// WithName sets the logger name carried by every entry
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level Level) *Builder {
	b.level = level
	return b
}

// WithHandler sets the handler. Without one, accepted calls go nowhere.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithErrorHandler sets the hook invoked when the handler returns an error
func (b *Builder) WithErrorHandler(fn ErrorHandler) *Builder {
	b.onError = fn
	return b
}

// WithClock sets the function used to timestamp entries
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// WithCoarseClock timestamps entries with core.CoarseNow
func (b *Builder) WithCoarseClock() *Builder {
	core.StartCoarseClock()
	b.now = core.CoarseNow
	return b
}

// Build creates the HandlerLogger instance
func (b *Builder) Build() *HandlerLogger {
	return &HandlerLogger{
		name:    b.name,
		level:   b.level,
		handler: b.handler,
		onError: b.onError,
		now:     b.now,
	}
}

// Nop returns a logger without a handler. Its threshold is FatalLevel:
// IsFatalEnabled reports true and Fatal calls pass the gate (Fatalc
// producers run), but the entry is discarded because there is no sink.
// All lower levels are suppressed at the gate.
func Nop() *HandlerLogger {
	return NewBuilder().WithLevel(FatalLevel).Build()
}

// Named returns a copy of the logger with a different name
func (l *HandlerLogger) Named(name string) *HandlerLogger {
	c := *l
	c.name = name
	return &c
}

// Name returns the logger's name
func (l *HandlerLogger) Name() string {
	return l.name
}

// LogLevel returns the configured threshold
func (l *HandlerLogger) LogLevel() Level {
	return l.level
}

// Enabled reports whether entries at level are forwarded
func (l *HandlerLogger) Enabled(level Level) bool {
	return level.Valid() && level.Enabled(l.level)
}

func (l *HandlerLogger) IsTraceEnabled() bool { return l.Enabled(TraceLevel) }
func (l *HandlerLogger) IsDebugEnabled() bool { return l.Enabled(DebugLevel) }
func (l *HandlerLogger) IsInfoEnabled() bool { return l.Enabled(InfoLevel) }
func (l *HandlerLogger) IsWarnEnabled() bool { return l.Enabled(WarnLevel) }
func (l *HandlerLogger) IsErrorEnabled() bool { return l.Enabled(ErrorLevel) }
func (l *HandlerLogger) IsFatalEnabled() bool { return l.Enabled(FatalLevel) }

// Log logs a message at the specified level
func (l *HandlerLogger) Log(level Level, msg string, err ...error) {
	if !l.Enabled(level) {
		return
	}
	l.forward(level, msg, combine(err))
}

// Logc logs a lazily produced message at the specified level. The
// producers are not called when level is disabled. A panic raised by a
// producer propagates to the caller and nothing is forwarded.
func (l *HandlerLogger) Logc(level Level, msg func() string, err ...func() error) {
	if !l.Enabled(level) {
		return
	}
	l.forwardc(level, msg, err)
}

// Trace logs a trace message
func (l *HandlerLogger) Trace(msg string, err ...error) {
	if !l.Enabled(TraceLevel) {
		return
	}
	l.forward(TraceLevel, msg, combine(err))
}

// Debug logs a debug message
func (l *HandlerLogger) Debug(msg string, err ...error) {
	if !l.Enabled(DebugLevel) {
		return
	}
	l.forward(DebugLevel, msg, combine(err))
}

// Info logs an info message
func (l *HandlerLogger) Info(msg string, err ...error) {
	if !l.Enabled(InfoLevel) {
		return
	}
	l.forward(InfoLevel, msg, combine(err))
}

// Warn logs a warning message
func (l *HandlerLogger) Warn(msg string, err ...error) {
	if !l.Enabled(WarnLevel) {
		return
	}
	l.forward(WarnLevel, msg, combine(err))
}

// Error logs an error message
func (l *HandlerLogger) Error(msg string, err ...error) {
	if !l.Enabled(ErrorLevel) {
		return
	}
	l.forward(ErrorLevel, msg, combine(err))
}

// Fatal logs a fatal message. It does not exit or panic.
func (l *HandlerLogger) Fatal(msg string, err ...error) {
	if !l.Enabled(FatalLevel) {
		return
	}
	l.forward(FatalLevel, msg, combine(err))
}

// Tracec logs a lazily produced trace message
func (l *HandlerLogger) Tracec(msg func() string, err ...func() error) {
	if !l.Enabled(TraceLevel) {
		return
	}
	l.forwardc(TraceLevel, msg, err)
}

// Debugc logs a lazily produced debug message
func (l *HandlerLogger) Debugc(msg func() string, err ...func() error) {
	if !l.Enabled(DebugLevel) {
		return
	}
	l.forwardc(DebugLevel, msg, err)
}

// Infoc logs a lazily produced info message
func (l *HandlerLogger) Infoc(msg func() string, err ...func() error) {
	if !l.Enabled(InfoLevel) {
		return
	}
	l.forwardc(InfoLevel, msg, err)
}

// Warnc logs a lazily produced warning message
func (l *HandlerLogger) Warnc(msg func() string, err ...func() error) {
	if !l.Enabled(WarnLevel) {
		return
	}
	l.forwardc(WarnLevel, msg, err)
}

// Errorc logs a lazily produced error message
func (l *HandlerLogger) Errorc(msg func() string, err ...func() error) {
	if !l.Enabled(ErrorLevel) {
		return
	}
	l.forwardc(ErrorLevel, msg, err)
}

// Fatalc logs a lazily produced fatal message. It does not exit or panic.
func (l *HandlerLogger) Fatalc(msg func() string, err ...func() error) {
	if !l.Enabled(FatalLevel) {
		return
	}
	l.forwardc(FatalLevel, msg, err)
}

// Close closes the logger's handler
func (l *HandlerLogger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

// forwardc runs the producers in order: message, then errors.
func (l *HandlerLogger) forwardc(level Level, msg func() string, errFns []func() error) {
	var m string
	if msg != nil {
		m = msg()
	}

	var err error
	for _, fn := range errFns {
		if fn != nil {
			err = multierr.Append(err, fn())
		}
	}

	l.forward(level, m, err)
}

// forward hands one accepted entry to the handler
func (l *HandlerLogger) forward(level Level, msg string, err error) {
	if l.handler == nil {
		return
	}

	entry := core.Entry{
		Time:    l.now(),
		Logger:  l.name,
		Level:   level,
		Message: msg,
		Err:     err,
	}

	if herr := l.handler.Handle(entry); herr != nil && l.onError != nil {
		l.onError(entry, herr)
	}
}

func combine(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return multierr.Combine(errs...)
	}
}
