package logger

import (
	"sync"
)

var (
	defaultLogger Logger = Nop()
	defaultMu     sync.RWMutex
)

// Default returns the default logger
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger restores Nop.
func SetDefault(l Logger) {
	if l == nil {
		l = Nop()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(msg string, err ...error) {
	Default().Trace(msg, err...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, err ...error) {
	Default().Debug(msg, err...)
}

// Info logs an info message using the default logger
func Info(msg string, err ...error) {
	Default().Info(msg, err...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, err ...error) {
	Default().Warn(msg, err...)
}

// Error logs an error message using the default logger
func Error(msg string, err ...error) {
	Default().Error(msg, err...)
}

// Fatal logs a fatal message using the default logger
func Fatal(msg string, err ...error) {
	Default().Fatal(msg, err...)
}

// Tracec logs a lazily produced trace message using the default logger
func Tracec(msg func() string, err ...func() error) {
	Default().Tracec(msg, err...)
}

// Debugc logs a lazily produced debug message using the default logger
func Debugc(msg func() string, err ...func() error) {
	Default().Debugc(msg, err...)
}

// Infoc logs a lazily produced info message using the default logger
func Infoc(msg func() string, err ...func() error) {
	Default().Infoc(msg, err...)
}

// Warnc logs a lazily produced warning message using the default logger
func Warnc(msg func() string, err ...func() error) {
	Default().Warnc(msg, err...)
}

// Errorc logs a lazily produced error message using the default logger
func Errorc(msg func() string, err ...func() error) {
	Default().Errorc(msg, err...)
}

// Fatalc logs a lazily produced fatal message using the default logger
func Fatalc(msg func() string, err ...func() error) {
	Default().Fatalc(msg, err...)
}
