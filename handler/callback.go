package handler

import (
	"errors"
	"sync/atomic"

	"github.com/philipp01105/levellog/core"
)

// ErrNilCallback is returned when a CallbackHandler is built without a callback
var ErrNilCallback = errors.New("callback handler requires a callback")

// CallbackFunc receives every entry forwarded to a CallbackHandler
type CallbackFunc func(entry core.Entry)

// CallbackHandler hands each entry to a user supplied function.
// A panic raised by the callback is not recovered and reaches the
// caller of the logging method.
type CallbackHandler struct {
	fn     CallbackFunc
	closed atomic.Bool
}

// NewCallbackHandler creates a handler invoking fn for every entry
func NewCallbackHandler(fn CallbackFunc) (*CallbackHandler, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	return &CallbackHandler{fn: fn}, nil
}

// Handle invokes the callback with the entry
func (h *CallbackHandler) Handle(entry core.Entry) error {
	if h.closed.Load() {
		return ErrClosed
	}
	h.fn(entry)
	return nil
}

// Close stops the handler from invoking the callback
func (h *CallbackHandler) Close() error {
	h.closed.Store(true)
	return nil
}
