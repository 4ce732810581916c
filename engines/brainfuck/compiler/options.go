package compiler

import (
	"fmt"
	"log/slog"
	"os"
)

// DefaultCacheSize is the number of compiled programs kept by default.
const DefaultCacheSize = 64

// FunctionalOption configures a Compiler.
type FunctionalOption func(*Compiler) error

// WithLogHandler sets the log handler. It clears any logger set earlier.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets a logger, keeping whatever groups it already carries.
// It clears any handler set earlier.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

// WithCacheSize keeps up to size compiled programs keyed by source hash.
// Zero disables the cache.
func WithCacheSize(size int) FunctionalOption {
	return func(c *Compiler) error {
		if size < 0 {
			return fmt.Errorf("cache size cannot be negative: %d", size)
		}
		c.cacheSize = size
		return nil
	}
}

func (c *Compiler) applyDefaults() {
	c.cacheSize = DefaultCacheSize
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}
}

func (c *Compiler) validate() error {
	if c.logHandler == nil && c.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}
	return nil
}
