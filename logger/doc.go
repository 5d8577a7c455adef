// Package logger is the public API of levellog. Most users only need
// to import this package.
//
// Logger is the contract application code logs through. Each severity
// has an eager method taking a message and an optional error:
//
//	log.Warn("cache miss")
//	log.Error("save failed", err)
//
// and a closure method whose producers only run when the level is
// enabled, so expensive messages need no manual IsXEnabled guard:
//
//	log.Debugc(func() string { return dump(state) })
//
// A call is forwarded when its level is at or above the logger's
// threshold, and suppressed otherwise. Eager and closure methods make
// the same decision; IsTraceEnabled..IsFatalEnabled report it.
//
// HandlerLogger is immutable after construction. The threshold, name
// and handler are set once through the Builder, so the gate is a plain
// read with no locking:
//
//	log := logger.NewBuilder().
//	    WithName("app.db").
//	    WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{})).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// Accepted entries reach the handler synchronously and in call order.
// A handler error goes to the ErrorHandler set with WithErrorHandler
// and is otherwise dropped. Panics, whether raised by a producer or by
// the handler, are not recovered.
//
// The package-level functions delegate to a default Logger, which is
// Nop until SetDefault is called.
package logger
