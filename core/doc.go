// Package core defines the shared types used across levellog.
//
// Level is the totally ordered severity scale
// (Trace < Debug < Info < Warn < Error < Fatal). Every gating decision
// in the module reduces to Level.Enabled, a single integer comparison
// against a logger's threshold.
//
// Entry is the tuple a logger forwards to its handler once a call has
// passed the gate: level, message and optional error, stamped with the
// time and the name of the logger that accepted it.
//
// CoarseNow is a cached clock with 500µs resolution for loggers that
// prefer a cheaper timestamp over an exact one.
package core
