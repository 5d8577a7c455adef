package factory

import (
	"sync"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/logger"
)

var (
	defaultFactory *Factory
	defaultMu      sync.RWMutex
)

// Default returns the process-wide factory. Until SetDefault is called
// it is a console factory at InfoLevel built on first use.
func Default() *Factory {
	defaultMu.RLock()
	f := defaultFactory
	defaultMu.RUnlock()
	if f != nil {
		return f
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultFactory == nil {
		// Zero options are always valid
		defaultFactory, _ = New(Options{DefaultLevel: core.InfoLevel})
	}
	return defaultFactory
}

// SetDefault replaces the process-wide factory. Loggers handed out by
// the previous factory keep working against its handlers.
func SetDefault(f *Factory) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// GetLogger returns a logger from the process-wide factory
func GetLogger(name string) logger.Logger {
	return Default().GetLogger(name)
}
