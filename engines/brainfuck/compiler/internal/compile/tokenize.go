package compile

import "github.com/robbyt/go-bfscript/engines/brainfuck/program"

// Tokenize converts source text into tokens, skipping space, newline and tab.
// Any other character aborts with a *SymbolError.
func Tokenize(source string) (program.Tokens, error) {
	tokens := make(program.Tokens, 0, len(source))
	for offset, r := range source {
		switch r {
		case ' ', '\n', '\t':
			continue
		}
		tok, ok := program.Lookup(r)
		if !ok {
			return nil, &SymbolError{Symbol: r, Offset: offset}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
