// Package brainfuck wires the compiler, the runtime and the evaluator together.
package brainfuck

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-bfscript/engines/brainfuck/compiler"
	"github.com/robbyt/go-bfscript/engines/brainfuck/evaluator"
	"github.com/robbyt/go-bfscript/engines/brainfuck/runtime"
	"github.com/robbyt/go-bfscript/internal/helpers"
	"github.com/robbyt/go-bfscript/platform/script"
	"github.com/robbyt/go-bfscript/platform/script/loader"
)

// FromBrainfuckLoader compiles the program behind ldr and returns an
// evaluator ready to run it.
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the program source
// - runtimeOpts: tape size and cell mode for every evaluation
//
// A nil logHandler is replaced once with the default stdout handler, which
// every component then shares.
func FromBrainfuckLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	runtimeOpts ...runtime.Option,
) (*evaluator.Evaluator, error) {
	logHandler, _ = helpers.SetupLogger(logHandler, "brainfuck", "")
	comp, err := NewCompiler(compiler.WithLogHandler(logHandler))
	if err != nil {
		return nil, fmt.Errorf("failed to create brainfuck compiler: %w", err)
	}
	return NewEvaluator(logHandler, ldr, comp, runtimeOpts...)
}

// NewCompiler creates a compiler using the functional options pattern.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles the program behind ldr with comp. Sharing one
// compiler with a cache across evaluators avoids recompiling identical sources.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	comp script.Compiler,
	runtimeOpts ...runtime.Option,
) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, fmt.Errorf("loader is nil")
	}
	if comp == nil {
		return nil, fmt.Errorf("compiler is nil")
	}

	logHandler, _ = helpers.SetupLogger(logHandler, "brainfuck", "")
	if err := checkRuntimeOptions(logHandler, runtimeOpts); err != nil {
		return nil, err
	}

	execUnitID := ""
	if sourceURL := ldr.GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, comp)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit, runtimeOpts...), nil
}

// checkRuntimeOptions builds one throwaway runtime so that bad options fail
// here instead of at the first Eval.
func checkRuntimeOptions(logHandler slog.Handler, runtimeOpts []runtime.Option) error {
	opts := append([]runtime.Option{runtime.WithLogHandler(logHandler)}, runtimeOpts...)
	if _, err := runtime.New(opts...); err != nil {
		return fmt.Errorf("invalid runtime options: %w", err)
	}
	return nil
}
