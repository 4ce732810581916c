package runtime

import "errors"

var (
	ErrCursorOutOfRange   = errors.New("cursor moved outside the tape")
	ErrUnknownInstruction = errors.New("unknown instruction")
)
