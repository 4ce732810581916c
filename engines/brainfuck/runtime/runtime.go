// Package runtime executes compiled instruction trees against a fixed-size tape.
//
// A Runtime is single-owner state: use one per concurrent execution.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-bfscript/engines/brainfuck/program"
	"github.com/robbyt/go-bfscript/internal/helpers"
)

// Runtime owns the tape, the cursor and the output buffer.
type Runtime struct {
	tapeSize int
	mode     CellMode

	tape   []int64
	cursor int
	output []int64

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Runtime with a zeroed tape.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		tapeSize: DefaultTapeSize,
		mode:     Unbounded,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("error applying runtime option: %w", err)
		}
	}

	r.logHandler, r.logger = helpers.SetupLogger(r.logHandler, "brainfuck", "Runtime")
	r.tape = make([]int64, r.tapeSize)
	return r, nil
}

func (r *Runtime) String() string {
	return fmt.Sprintf("brainfuck.Runtime{Cells: %d, Mode: %s}", r.tapeSize, r.mode)
}

// Reset zeroes the tape, moves the cursor to 0 and clears the output.
func (r *Runtime) Reset() {
	clear(r.tape)
	r.cursor = 0
	r.output = nil
}

// Execute resets the runtime, runs prog, and returns the output values.
// Execution does not return until the program halts. On ErrCursorOutOfRange
// the output emitted before the failing move is returned with the error.
func (r *Runtime) Execute(prog program.Program) ([]int64, error) {
	r.Reset()

	if err := r.run(prog); err != nil {
		r.logger.Debug("Execution failed", "error", err, "cursor", r.cursor, "outputs", len(r.output))
		return r.Output(), err
	}
	return r.Output(), nil
}

func (r *Runtime) run(prog program.Program) error {
	for _, ins := range prog {
		if err := r.step(ins); err != nil {
			return err
		}
	}
	return nil
}

// step executes one instruction.
func (r *Runtime) step(ins program.Instruction) error {
	switch v := ins.(type) {
	case program.Command:
		return r.command(v.Token)
	case program.Loop:
		// condition is checked at the head, once per full pass over the body
		for r.tape[r.cursor] != 0 {
			if err := r.run(v.Body); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownInstruction, ins)
	}
}

func (r *Runtime) command(tok program.Token) error {
	switch tok {
	case program.MoveRight:
		if r.cursor+1 >= len(r.tape) {
			return fmt.Errorf("%w: move-right from cell %d", ErrCursorOutOfRange, r.cursor)
		}
		r.cursor++
	case program.MoveLeft:
		if r.cursor == 0 {
			return fmt.Errorf("%w: move-left from cell 0", ErrCursorOutOfRange)
		}
		r.cursor--
	case program.Increment:
		r.tape[r.cursor] = r.wrap(r.tape[r.cursor] + 1)
	case program.Decrement:
		r.tape[r.cursor] = r.wrap(r.tape[r.cursor] - 1)
	case program.Output:
		r.output = append(r.output, r.tape[r.cursor])
	default:
		return fmt.Errorf("%w: command %q", ErrUnknownInstruction, tok.Symbol())
	}
	return nil
}

func (r *Runtime) wrap(v int64) int64 {
	if r.mode == Byte {
		return int64(uint8(v))
	}
	return v
}

// Cursor returns the current tape index.
func (r *Runtime) Cursor() int {
	return r.cursor
}

// Cell returns the value at index i, or 0 when i is off the tape.
func (r *Runtime) Cell(i int) int64 {
	if i < 0 || i >= len(r.tape) {
		return 0
	}
	return r.tape[i]
}

// TapeSize returns the number of cells.
func (r *Runtime) TapeSize() int {
	return len(r.tape)
}

// Output returns a copy of the values emitted so far.
func (r *Runtime) Output() []int64 {
	out := make([]int64, len(r.output))
	copy(out, r.output)
	return out
}
