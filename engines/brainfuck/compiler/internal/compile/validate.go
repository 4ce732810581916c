package compile

import "github.com/robbyt/go-bfscript/engines/brainfuck/program"

// Validate checks that every loop-open has a matching loop-close and vice versa.
func Validate(tokens program.Tokens) error {
	depth := 0
	lastOpen := make([]int, 0, 8)
	for i, tok := range tokens {
		switch tok {
		case program.LoopOpen:
			depth++
			lastOpen = append(lastOpen, i)
		case program.LoopClose:
			if depth == 0 {
				return &BracketError{Reason: UnmatchedClose, Index: i}
			}
			depth--
			lastOpen = lastOpen[:len(lastOpen)-1]
		}
	}
	if depth != 0 {
		return &BracketError{Reason: UnmatchedOpen, Index: lastOpen[len(lastOpen)-1]}
	}
	return nil
}
