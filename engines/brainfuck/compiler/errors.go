package compiler

import (
	"errors"

	"github.com/robbyt/go-bfscript/engines/brainfuck/compiler/internal/compile"
)

var (
	ErrContentNil         = errors.New("brainfuck content is nil")
	ErrValidationFailed   = errors.New("brainfuck program validation error")
	ErrExecCreationFailed = errors.New("unable to create brainfuck executable")

	// The three compile failure kinds, distinguishable with errors.Is.
	ErrInvalidSymbol         = compile.ErrInvalidSymbol
	ErrUnbalancedBrackets    = compile.ErrUnbalancedBrackets
	ErrInternalInconsistency = compile.ErrInternalInconsistency
)

type (
	SymbolError  = compile.SymbolError
	BracketError = compile.BracketError
)
