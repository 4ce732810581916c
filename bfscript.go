// Package bfscript compiles and runs programs written in the seven-symbol
// tape language (> < + - . [ ]).
//
// Programs are compiled once, when the evaluator is created, and can then be
// evaluated any number of times:
//
//	e, err := bfscript.FromString("+++.", slog.Default().Handler())
//	if err != nil {
//		return err
//	}
//	resp, err := e.Eval(ctx)
package bfscript

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-bfscript/engines/brainfuck"
	"github.com/robbyt/go-bfscript/engines/brainfuck/runtime"
	"github.com/robbyt/go-bfscript/platform"
	"github.com/robbyt/go-bfscript/platform/script/loader"
)

// FromString creates an evaluator for inline program text.
func FromString(content string, handler slog.Handler, opts ...runtime.Option) (platform.Evaluator, error) {
	ldr, err := loader.NewFromString(content)
	if err != nil {
		return nil, fmt.Errorf("failed to create string loader: %w", err)
	}
	return FromLoader(ldr, handler, opts...)
}

// FromFile creates an evaluator for a program file. The path must be absolute.
func FromFile(path string, handler slog.Handler, opts ...runtime.Option) (platform.Evaluator, error) {
	ldr, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create disk loader: %w", err)
	}
	return FromLoader(ldr, handler, opts...)
}

// FromHTTP creates an evaluator for a program served over http or https.
func FromHTTP(rawURL string, handler slog.Handler, opts ...runtime.Option) (platform.Evaluator, error) {
	return FromHTTPWithOptions(rawURL, loader.DefaultHTTPOptions(), handler, opts...)
}

// FromHTTPWithOptions is FromHTTP with timeout, TLS and authentication settings.
func FromHTTPWithOptions(
	rawURL string,
	httpOpts *loader.HTTPOptions,
	handler slog.Handler,
	opts ...runtime.Option,
) (platform.Evaluator, error) {
	ldr, err := loader.NewFromHTTPWithOptions(rawURL, httpOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP loader: %w", err)
	}
	return FromLoader(ldr, handler, opts...)
}

// FromReader creates an evaluator for a program read from r.
func FromReader(r io.Reader, name string, handler slog.Handler, opts ...runtime.Option) (platform.Evaluator, error) {
	ldr, err := loader.NewFromIoReader(r, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader loader: %w", err)
	}
	return FromLoader(ldr, handler, opts...)
}

// FromInput infers the loader from input (URL, path, inline text, []byte,
// io.Reader or loader.Loader) and creates an evaluator for it.
func FromInput(input any, handler slog.Handler, opts ...runtime.Option) (platform.Evaluator, error) {
	ldr, err := loader.InferLoader(input)
	if err != nil {
		return nil, fmt.Errorf("failed to infer loader: %w", err)
	}
	return FromLoader(ldr, handler, opts...)
}

// FromLoader creates an evaluator for any loader.
func FromLoader(ldr loader.Loader, handler slog.Handler, opts ...runtime.Option) (platform.Evaluator, error) {
	e, err := brainfuck.FromBrainfuckLoader(handler, ldr, opts...)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Run compiles source, executes it once on a fresh tape, and returns the
// output values.
func Run(ctx context.Context, source string, opts ...runtime.Option) ([]int64, error) {
	e, err := FromString(source, slog.Default().Handler(), opts...)
	if err != nil {
		return nil, err
	}
	resp, err := e.Eval(ctx)
	if err != nil {
		if resp != nil {
			return resp.Output(), err
		}
		return nil, err
	}
	return resp.Output(), nil
}
