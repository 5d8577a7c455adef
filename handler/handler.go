package handler

import (
	"errors"

	"github.com/philipp01105/levellog/core"
)

// ErrClosed is returned when an entry is handled after Close
var ErrClosed = errors.New("handler is closed")

// Handler receives entries that passed a logger's level gate
type Handler interface {
	// Handle processes a log entry. It is called synchronously, once
	// per accepted log call, in call order.
	Handle(entry core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}
