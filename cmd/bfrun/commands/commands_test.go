package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-bfscript/engines/brainfuck/compiler"
	"github.com/robbyt/go-bfscript/engines/brainfuck/runtime"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hello.bf")
	require.NoError(t, os.WriteFile(path, []byte(helloWorld), 0o600))

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
		err   error
	}{
		{name: "file", args: []string{"run", path}, want: "Hello World!\n"},
		{name: "stdin", stdin: helloWorld, args: []string{"run"}, want: "Hello World!\n"},
		{name: "stdin dash", stdin: "+++.", args: []string{"run", "-", "--format", "values"}, want: "[3]\n"},
		{name: "inline", args: []string{"run", "+++.", "--format", "hex"}, want: "03\n"},
		{name: "byte cells", args: []string{"run", "-.", "--byte-cells", "--format", "values"}, want: "[255]\n"},
		{name: "unbounded cells", args: []string{"run", "-.", "--format", "values"}, want: "[-1]\n"},
		{name: "partial output", args: []string{"run", "+.>+.>", "--tape-size", "2", "--format", "values"}, want: "[1 1]\n", err: runtime.ErrCursorOutOfRange},
		{name: "invalid symbol", args: []string{"run", "+#"}, err: compiler.ErrInvalidSymbol},
		{name: "unbalanced", args: []string{"run", "[["}, err: compiler.ErrUnbalancedBrackets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := execute(t, tt.stdin, tt.args...)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRunCommandFlags(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "run", "+.", "--format", "yaml")
	require.ErrorContains(t, err, "unknown --format")

	_, err = execute(t, "", "run", "+.", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid --log-level")

	_, err = execute(t, "", "run", "+.", "--tape-size", "0")
	require.Error(t, err)
}

func TestRunCommandHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow.bf" {
			time.Sleep(200 * time.Millisecond)
		}
		_, _ = w.Write([]byte(helloWorld))
	}))
	defer server.Close()

	out, err := execute(t, "", "run", server.URL+"/hello.bf")
	require.NoError(t, err)
	require.Equal(t, "Hello World!\n", out)

	_, err = execute(t, "", "--timeout", "20ms", "run", server.URL+"/slow.bf")
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "check", "+[->[+]]")
	require.NoError(t, err)
	require.Equal(t, "ok: 4 commands, 2 loops, max depth 2\n", out)

	_, err = execute(t, "", "check", "]")
	require.ErrorIs(t, err, compiler.ErrUnbalancedBrackets)

	var symErr *compiler.SymbolError
	_, err = execute(t, "", "check", "+ x")
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, 'x', symErr.Symbol)
	require.Equal(t, 2, symErr.Offset)
}

func TestDumpCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "dump", "+[-.]")
	require.NoError(t, err)
	require.Equal(t, "+ increment\nloop (2)\n  - decrement\n  . output\n", out)

	out, err = execute(t, "+ [ - ]\n", "dump", "--flat")
	require.NoError(t, err)
	require.Equal(t, "+[-]\n", out)
}
