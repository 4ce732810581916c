package compile

import (
	"fmt"
	"slices"

	"github.com/robbyt/go-bfscript/engines/brainfuck/program"
)

// Compile builds the instruction tree for a validated token sequence. Bracket
// balance is assumed; a bracket that cannot be paired yields
// ErrInternalInconsistency.
//
// Each level holds only its own instructions; an empty window yields an
// empty, non-nil Program.
func Compile(tokens program.Tokens) (program.Program, error) {
	instructions := program.Program{}

	for i := 0; i < len(tokens); {
		switch tok := tokens[i]; tok {
		case program.LoopOpen:
			j, err := findClosingBracket(tokens, i)
			if err != nil {
				return nil, err
			}
			body, err := Compile(tokens[i+1 : j])
			if err != nil {
				return nil, err
			}
			instructions = append(instructions, program.Loop{Body: body})
			i = j + 1
		case program.LoopClose:
			return nil, fmt.Errorf("%w: stray loop-close at token %d", ErrInternalInconsistency, i)
		default:
			instructions = append(instructions, program.Command{Token: tok})
			i++
		}
	}

	return slices.Clip(instructions), nil
}

// findClosingBracket returns the index of the loop-close matching the
// loop-open at tokens[open].
func findClosingBracket(tokens program.Tokens, open int) (int, error) {
	depth := 0
	for i := open + 1; i < len(tokens); i++ {
		switch tokens[i] {
		case program.LoopOpen:
			depth++
		case program.LoopClose:
			if depth == 0 {
				return i, nil
			}
			depth--
		}
	}
	return 0, fmt.Errorf("%w: no loop-close for loop-open at token %d", ErrInternalInconsistency, open)
}
