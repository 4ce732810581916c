package compile

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol         = errors.New("invalid symbol in program source")
	ErrUnbalancedBrackets    = errors.New("brackets mismatch")
	ErrInternalInconsistency = errors.New("internal compiler inconsistency")
)

// SymbolError reports a character that is neither an instruction nor whitespace.
type SymbolError struct {
	Symbol rune
	Offset int // byte offset in the source
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %q at offset %d", ErrInvalidSymbol, e.Symbol, e.Offset)
}

func (e *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

const (
	UnmatchedClose = "unmatched close"
	UnmatchedOpen  = "unmatched open"
)

// BracketError reports the first bracket that cannot be paired.
type BracketError struct {
	Reason string
	Index  int // token index
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%s: %s at token %d", ErrUnbalancedBrackets, e.Reason, e.Index)
}

func (e *BracketError) Unwrap() error {
	return ErrUnbalancedBrackets
}
