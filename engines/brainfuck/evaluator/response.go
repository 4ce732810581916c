package evaluator

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// execResult is the output of one evaluation.
type execResult struct {
	output      []int64
	execTime    time.Duration
	scriptExeID string
	logger      *slog.Logger
}

func newEvalResult(handler slog.Handler, output []int64, execTime time.Duration, versionID string) *execResult {
	return &execResult{
		output:      output,
		execTime:    execTime,
		scriptExeID: versionID,
		logger:      slog.New(handler.WithGroup("execResult")),
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf("ExecResult{Outputs: %d, ExecTime: %s, ScriptExeID: %s}",
		len(r.output), r.GetExecTime(), r.GetScriptExeID())
}

func (r *execResult) Output() []int64 {
	out := make([]int64, len(r.output))
	copy(out, r.output)
	return out
}

// Bytes truncates every value to its low byte, as a console would print it.
func (r *execResult) Bytes() []byte {
	b := make([]byte, len(r.output))
	for i, v := range r.output {
		if v < 0 || v > 255 {
			r.logger.Debug("Output value truncated to a byte", "index", i, "value", v)
		}
		b[i] = byte(v)
	}
	return b
}

// Inspect returns the output as a bracketed list of values, e.g. "[72 105]".
func (r *execResult) Inspect() string {
	parts := make([]string, len(r.output))
	for i, v := range r.output {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Interface returns the output values as []int64.
func (r *execResult) Interface() any {
	return r.Output()
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
