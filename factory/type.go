package factory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLoggerType is returned for unrecognized logger type names
var ErrUnknownLoggerType = errors.New("unknown logger type")

// LoggerType selects the sink a factory wires a logger to
type LoggerType int

const (
	// Console writes formatted lines to a writer (default: stdout)
	Console LoggerType = iota
	// MessageBuffer keeps recent messages in memory
	MessageBuffer
	// Custom hands every entry to a user callback
	Custom
)

// String returns the lower-case name of the type
func (t LoggerType) String() string {
	switch t {
	case Console:
		return "console"
	case MessageBuffer:
		return "messagebuffer"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseLoggerType converts a name to a LoggerType, ignoring case.
// "buffer" is accepted for MessageBuffer.
func ParseLoggerType(s string) (LoggerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console":
		return Console, nil
	case "messagebuffer", "buffer":
		return MessageBuffer, nil
	case "custom":
		return Custom, nil
	default:
		return Console, fmt.Errorf("%w: %q", ErrUnknownLoggerType, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t LoggerType) MarshalText() ([]byte, error) {
	if t < Console || t > Custom {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLoggerType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *LoggerType) UnmarshalText(text []byte) error {
	parsed, err := ParseLoggerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
