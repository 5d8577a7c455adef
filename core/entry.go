package core

import "time"

// Entry is a single accepted log call as it is forwarded to a handler.
type Entry struct {
	Time    time.Time
	Logger  string
	Level   Level
	Message string
	// Err is nil when the call carried no error
	Err error
}

// HasError reports whether the entry carries an error
func (e Entry) HasError() bool {
	return e.Err != nil
}
