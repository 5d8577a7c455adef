package factory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
	"github.com/philipp01105/levellog/handler"
	"github.com/philipp01105/levellog/logger"
)

var (
	// ErrInvalidRule is returned for a rule without a usable pattern
	ErrInvalidRule = errors.New("invalid logger rule")
	// ErrMissingCallback is returned when a Custom logger has no callback
	ErrMissingCallback = errors.New("custom logger type requires a callback")
)

// Rule assigns a threshold and sink to every logger whose name matches Pattern
type Rule struct {
	Pattern *regexp.Regexp
	Level   core.Level
	Type    LoggerType
	// Callback receives entries when Type is Custom
	Callback handler.CallbackFunc
	// Formatter overrides Options.Formatter for this rule
	Formatter formatter.Formatter
}

// Options configures a Factory
type Options struct {
	// Rules are matched against logger names in order; the first match wins
	Rules []Rule

	// DefaultLevel and DefaultType apply to names no rule matches. The
	// zero values are TraceLevel and Console.
	DefaultLevel core.Level
	DefaultType  LoggerType
	// DefaultCallback is required when DefaultType is Custom
	DefaultCallback handler.CallbackFunc

	// Formatter renders Console and MessageBuffer output (default: TextFormatter)
	Formatter formatter.Formatter
	// Writer is the Console destination (default: os.Stdout)
	Writer io.Writer
	// BufferCapacity bounds every MessageBuffer (default: handler.DefaultBufferCapacity)
	BufferCapacity int
	// ErrorHandler is installed on every logger the factory creates
	ErrorHandler logger.ErrorHandler
}

// route is one resolved rule with its handler built
type route struct {
	pattern *regexp.Regexp
	level   core.Level
	handler handler.Handler
}

// Factory hands out named loggers configured by its rules. Loggers are
// created on first lookup and cached, so repeated lookups of a name
// return the same instance. A Factory is safe for concurrent use.
type Factory struct {
	routes   []route
	fallback route
	onError  logger.ErrorHandler

	mu      sync.Mutex
	loggers map[string]*logger.HandlerLogger
}

// New validates the options and builds one handler per rule
func New(opts Options) (*Factory, error) {
	if opts.Formatter == nil {
		opts.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	// Every Console handler of the factory writes through one lock
	opts.Writer = handler.NewLockedWriter(opts.Writer)

	f := &Factory{
		routes:  make([]route, 0, len(opts.Rules)),
		onError: opts.ErrorHandler,
		loggers: make(map[string]*logger.HandlerLogger),
	}

	for i, rule := range opts.Rules {
		if rule.Pattern == nil {
			return nil, fmt.Errorf("%w: rule %d has no pattern", ErrInvalidRule, i)
		}
		if !rule.Level.Valid() {
			return nil, fmt.Errorf("%w: rule %d: %w", ErrInvalidRule, i, core.ErrUnknownLevel)
		}
		fm := rule.Formatter
		if fm == nil {
			fm = opts.Formatter
		}
		h, err := newHandler(rule.Type, rule.Callback, fm, opts)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rule.Pattern, err)
		}
		f.routes = append(f.routes, route{pattern: rule.Pattern, level: rule.Level, handler: h})
	}

	if !opts.DefaultLevel.Valid() {
		return nil, fmt.Errorf("default level: %w", core.ErrUnknownLevel)
	}
	h, err := newHandler(opts.DefaultType, opts.DefaultCallback, opts.Formatter, opts)
	if err != nil {
		return nil, fmt.Errorf("default logger: %w", err)
	}
	f.fallback = route{level: opts.DefaultLevel, handler: h}

	return f, nil
}

func newHandler(t LoggerType, cb handler.CallbackFunc, fm formatter.Formatter, opts Options) (handler.Handler, error) {
	switch t {
	case Console:
		return handler.NewConsoleHandler(handler.ConsoleConfig{Writer: opts.Writer, Formatter: fm}), nil
	case MessageBuffer:
		return handler.NewBufferHandler(handler.BufferConfig{Capacity: opts.BufferCapacity, Formatter: fm}), nil
	case Custom:
		if cb == nil {
			return nil, ErrMissingCallback
		}
		return handler.NewCallbackHandler(cb)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLoggerType, int(t))
	}
}

func (f *Factory) resolve(name string) route {
	for _, r := range f.routes {
		if r.pattern.MatchString(name) {
			return r
		}
	}
	return f.fallback
}

// GetLogger returns the logger for name, creating it on first use
func (f *Factory) GetLogger(name string) logger.Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.loggers[name]; ok {
		return l
	}

	r := f.resolve(name)
	l := logger.NewBuilder().
		WithName(name).
		WithLevel(r.level).
		WithHandler(r.handler).
		WithErrorHandler(f.onError).
		Build()
	f.loggers[name] = l
	return l
}

// Buffer returns the message buffer backing the logger called name.
// It reports false when that logger is not of type MessageBuffer.
func (f *Factory) Buffer(name string) (*handler.BufferHandler, bool) {
	b, ok := f.resolve(name).handler.(*handler.BufferHandler)
	return b, ok
}

// Close closes every handler. Loggers obtained earlier keep their
// thresholds, but their handlers reject further entries.
func (f *Factory) Close() error {
	var err error
	for _, r := range f.routes {
		err = multierr.Append(err, r.handler.Close())
	}
	return multierr.Append(err, f.fallback.handler.Close())
}
