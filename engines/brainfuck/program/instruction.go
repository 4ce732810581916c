package program

import (
	"fmt"
	"io"
	"strings"
)

// Instruction is a node of the instruction tree: either a Command or a Loop.
type Instruction interface {
	isInstruction()
	String() string
}

// Command is a leaf wrapping one non-bracket token.
type Command struct {
	Token Token
}

func (Command) isInstruction() {}

func (c Command) String() string {
	return c.Token.Symbol()
}

// Loop repeats Body while the current cell is nonzero. An empty body is legal.
type Loop struct {
	Body Program
}

func (Loop) isInstruction() {}

func (l Loop) String() string {
	return "[" + l.Body.String() + "]"
}

// Program is an ordered instruction sequence; the top level of a compiled
// source and the body of every loop.
type Program []Instruction

// String renders the program back to its canonical source text.
func (p Program) String() string {
	var sb strings.Builder
	for _, ins := range p {
		sb.WriteString(ins.String())
	}
	return sb.String()
}

// Flatten turns the tree back into the token sequence it was compiled from.
func (p Program) Flatten() Tokens {
	return p.appendTokens(make(Tokens, 0, len(p)))
}

func (p Program) appendTokens(dst Tokens) Tokens {
	for _, ins := range p {
		switch v := ins.(type) {
		case Command:
			dst = append(dst, v.Token)
		case Loop:
			dst = append(dst, LoopOpen)
			dst = v.Body.appendTokens(dst)
			dst = append(dst, LoopClose)
		}
	}
	return dst
}

// Stats counts commands and loops in the tree and reports the deepest loop nesting.
func (p Program) Stats() (commands, loops, depth int) {
	for _, ins := range p {
		switch v := ins.(type) {
		case Command:
			commands++
		case Loop:
			c, l, d := v.Body.Stats()
			commands += c
			loops += l + 1
			depth = max(depth, d+1)
		}
	}
	return commands, loops, depth
}

// Format writes an indented view of the tree, one instruction per line.
func Format(w io.Writer, p Program) error {
	return format(w, p, 0)
}

func format(w io.Writer, p Program, level int) error {
	indent := strings.Repeat("  ", level)
	for _, ins := range p {
		switch v := ins.(type) {
		case Command:
			if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, v.Token.Symbol(), v.Token.Name()); err != nil {
				return err
			}
		case Loop:
			if _, err := fmt.Fprintf(w, "%sloop (%d)\n", indent, len(v.Body)); err != nil {
				return err
			}
			if err := format(w, v.Body, level+1); err != nil {
				return err
			}
		}
	}
	return nil
}
