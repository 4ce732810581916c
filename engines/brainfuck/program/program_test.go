package program

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, r := range "><+-.[]" {
		tok, ok := Lookup(r)
		require.True(t, ok, "symbol %q", r)
		require.Equal(t, string(r), tok.Symbol())
		require.NotEqual(t, "unknown", tok.Name())
	}

	for _, r := range "#, \n\tá" {
		_, ok := Lookup(r)
		require.False(t, ok, "symbol %q", r)
	}
}

func TestTokenNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "move-right", MoveRight.Name())
	require.Equal(t, "loop-close", LoopClose.Name())
	require.Equal(t, "unknown", Token('x').Name())
	require.True(t, LoopOpen.IsBracket())
	require.False(t, Output.IsBracket())
	require.Equal(t, "+-[]", Tokens{Increment, Decrement, LoopOpen, LoopClose}.String())
}

func nested() Program {
	return Program{
		Command{Token: Increment},
		Loop{Body: Program{
			Command{Token: MoveRight},
			Loop{Body: Program{}},
			Loop{Body: Program{Command{Token: Decrement}}},
			Command{Token: MoveLeft},
		}},
		Command{Token: Output},
	}
}

func TestProgramString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "+[>[][-]<].", nested().String())
	require.Equal(t, "", Program{}.String())
}

func TestProgramFlatten(t *testing.T) {
	t.Parallel()

	got := nested().Flatten()
	require.Equal(t, "+[>[][-]<].", got.String())
	require.Empty(t, Program{}.Flatten())
}

func TestProgramStats(t *testing.T) {
	t.Parallel()

	commands, loops, depth := nested().Stats()
	require.Equal(t, 5, commands)
	require.Equal(t, 3, loops)
	require.Equal(t, 2, depth)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, nested()))
	want := "+ increment\n" +
		"loop (4)\n" +
		"  > move-right\n" +
		"  loop (0)\n" +
		"  loop (1)\n" +
		"    - decrement\n" +
		"  < move-left\n" +
		". output\n"
	require.Equal(t, want, buf.String())
}
