package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-bfscript/engines/brainfuck/program"
	"github.com/robbyt/go-bfscript/engines/brainfuck/runtime"
	"github.com/robbyt/go-bfscript/internal/helpers"
	"github.com/robbyt/go-bfscript/platform"
	"github.com/robbyt/go-bfscript/platform/script"
)

// Evaluator runs a compiled program. Every Eval gets its own Runtime, so one
// Evaluator can serve concurrent callers.
type Evaluator struct {
	execUnit    *script.ExecutableUnit
	runtimeOpts []runtime.Option

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for execUnit. runtimeOpts are applied to the
// Runtime created for each evaluation.
func New(
	handler slog.Handler,
	execUnit *script.ExecutableUnit,
	runtimeOpts ...runtime.Option,
) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "brainfuck", "Evaluator")

	return &Evaluator{
		execUnit:    execUnit,
		runtimeOpts: runtimeOpts,
		logHandler:  handler,
		logger:      logger,
	}
}

func (be *Evaluator) String() string {
	return "brainfuck.Evaluator"
}

// GetExecutableUnit returns the unit this evaluator runs.
func (be *Evaluator) GetExecutableUnit() *script.ExecutableUnit {
	return be.execUnit
}

func (be *Evaluator) newRuntime() (*runtime.Runtime, error) {
	opts := append([]runtime.Option{runtime.WithLogHandler(be.logHandler)}, be.runtimeOpts...)
	return runtime.New(opts...)
}

// exec runs prog on a fresh runtime and times it.
func (be *Evaluator) exec(prog program.Program) (*execResult, error) {
	rt, err := be.newRuntime()
	if err != nil {
		return nil, fmt.Errorf("failed to create runtime: %w", err)
	}

	startTime := time.Now()
	output, err := rt.Execute(prog)
	execTime := time.Since(startTime)

	result := newEvalResult(be.logHandler, output, execTime, "")
	if err != nil {
		return result, fmt.Errorf("brainfuck execution error: %w", err)
	}
	return result, nil
}

// Eval executes the compiled program. It checks ctx before starting; once
// started, execution runs until the program halts.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, errors.New("executable unit is nil")
	}

	content := be.execUnit.GetContent()
	if content == nil {
		return nil, errors.New("content is nil")
	}

	bytecode := content.GetByteCode()
	if bytecode == nil {
		return nil, errors.New("bytecode is nil")
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, errors.New("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	prog, ok := bytecode.(program.Program)
	if !ok {
		return nil, fmt.Errorf("unable to type assert bytecode into program.Program for ID: %s", exeID)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := be.exec(prog)
	if result == nil {
		return nil, err
	}
	result.scriptExeID = exeID
	if err != nil {
		logger.WarnContext(ctx, "exec failed", "error", err)
		return result, err
	}
	logger.DebugContext(ctx, "exec complete", "result", result)

	return result, nil
}
