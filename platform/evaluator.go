package platform

import "context"

// Evaluator runs a compiled program.
type Evaluator interface {
	// Eval executes the pre-compiled program on a fresh runtime and returns the
	// emitted output. Compilation happened when the evaluator was created, so
	// a single evaluator can be evaluated any number of times, concurrently.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// EvaluatorResponse is the result of one evaluation.
type EvaluatorResponse interface {
	// Output returns the raw cell values, one per output instruction.
	Output() []int64

	// Bytes returns the output with each value truncated to its low byte.
	Bytes() []byte

	// Inspect returns a printable representation of the output.
	Inspect() string

	// Interface returns the output as a native Go value.
	Interface() any

	// GetScriptExeID returns the ID of the executable unit that produced the output.
	GetScriptExeID() string

	// GetExecTime returns how long the execution took.
	GetExecTime() string
}
