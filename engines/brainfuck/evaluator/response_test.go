package evaluator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecResult(t *testing.T) {
	t.Parallel()

	r := newEvalResult(quiet, []int64{72, 105, -1, 256}, 2*time.Millisecond, "abc123")

	require.Equal(t, []int64{72, 105, -1, 256}, r.Output())
	require.Equal(t, []byte{72, 105, 255, 0}, r.Bytes())
	require.Equal(t, "[72 105 -1 256]", r.Inspect())
	require.Equal(t, []int64{72, 105, -1, 256}, r.Interface())
	require.Equal(t, "abc123", r.GetScriptExeID())
	require.Equal(t, "2ms", r.GetExecTime())
	require.Equal(t, "ExecResult{Outputs: 4, ExecTime: 2ms, ScriptExeID: abc123}", r.String())

	out := r.Output()
	out[0] = 0
	require.Equal(t, int64(72), r.Output()[0], "Output returns a copy")
}

func TestExecResultEmpty(t *testing.T) {
	t.Parallel()

	r := newEvalResult(quiet, nil, 0, "")
	require.Empty(t, r.Output())
	require.Empty(t, r.Bytes())
	require.Equal(t, "[]", r.Inspect())
}
