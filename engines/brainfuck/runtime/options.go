package runtime

import (
	"fmt"
	"log/slog"
)

// DefaultTapeSize is the number of cells on a tape unless WithTapeSize says otherwise.
const DefaultTapeSize = 30000

// CellMode selects how increment and decrement treat cell values.
type CellMode int

const (
	// Unbounded cells are signed 64-bit integers with no wraparound.
	Unbounded CellMode = iota
	// Byte cells wrap within 0..255.
	Byte
)

func (m CellMode) String() string {
	switch m {
	case Unbounded:
		return "unbounded"
	case Byte:
		return "byte"
	default:
		return fmt.Sprintf("CellMode(%d)", int(m))
	}
}

// Option configures a Runtime.
type Option func(*Runtime) error

// WithTapeSize sets the number of cells.
func WithTapeSize(size int) Option {
	return func(r *Runtime) error {
		if size <= 0 {
			return fmt.Errorf("tape size must be positive: %d", size)
		}
		r.tapeSize = size
		return nil
	}
}

// WithCellMode sets the cell arithmetic.
func WithCellMode(mode CellMode) Option {
	return func(r *Runtime) error {
		if mode != Unbounded && mode != Byte {
			return fmt.Errorf("unknown cell mode: %s", mode)
		}
		r.mode = mode
		return nil
	}
}

// WithLogHandler sets the log handler.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runtime) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		r.logHandler = handler
		return nil
	}
}
