package program

// Token is one recognized instruction symbol. Its value is the source byte.
type Token byte

const (
	MoveRight Token = '>'
	MoveLeft  Token = '<'
	Increment Token = '+'
	Decrement Token = '-'
	Output    Token = '.'
	LoopOpen  Token = '['
	LoopClose Token = ']'
)

var tokenNames = map[Token]string{
	MoveRight: "move-right",
	MoveLeft:  "move-left",
	Increment: "increment",
	Decrement: "decrement",
	Output:    "output",
	LoopOpen:  "loop-open",
	LoopClose: "loop-close",
}

// Lookup returns the token for a source character, or false when the
// character is not one of the seven symbols.
func Lookup(r rune) (Token, bool) {
	if r > 0x7f {
		return 0, false
	}
	t := Token(r)
	_, ok := tokenNames[t]
	return t, ok
}

// Symbol returns the source character of the token.
func (t Token) Symbol() string {
	return string(rune(t))
}

// Name returns the long name of the token, e.g. "move-right".
func (t Token) Name() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t Token) String() string {
	return t.Symbol()
}

// IsBracket reports whether the token opens or closes a loop.
func (t Token) IsBracket() bool {
	return t == LoopOpen || t == LoopClose
}

// Tokens is a token sequence in source order.
type Tokens []Token

func (ts Tokens) String() string {
	b := make([]byte, len(ts))
	for i, t := range ts {
		b[i] = byte(t)
	}
	return string(b)
}
