// Package handler provides the Handler interface and the sinks a
// logger forwards accepted entries to.
//
// A logger never calls a handler for an entry below its threshold and
// calls it exactly once, synchronously, for every entry at or above
// it. Handlers therefore never drop or reorder entries; a handler that
// cannot write returns an error and the logger reports it through its
// error hook.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer (default: stdout).
//   - BufferHandler keeps the most recent messages in memory, for tests
//     and for surfacing recent log output inside an application.
//   - CallbackHandler passes every entry to a user function.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler writes through a log/slog.Handler.
//   - ZapHandler writes through a *zap.Logger.
//
// Panics raised inside a handler (for example by a user callback) are
// not recovered.
package handler
