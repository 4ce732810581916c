package commands

import (
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-bfscript/engines/brainfuck"
	"github.com/robbyt/go-bfscript/engines/brainfuck/compiler"
	"github.com/robbyt/go-bfscript/engines/brainfuck/program"
	"github.com/robbyt/go-bfscript/platform/script/loader"
)

// openLoader resolves the program argument. No argument, or "-", reads stdin.
func openLoader(args []string, stdin io.Reader, cfg *config) (loader.Loader, error) {
	if len(args) == 0 || args[0] == "-" {
		return loader.NewFromIoReader(stdin, "stdin")
	}

	input := args[0]
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return loader.NewFromHTTPWithOptions(input, loader.DefaultHTTPOptions().WithTimeout(cfg.timeout))
	}
	return loader.InferLoader(input)
}

// compileProgram loads and compiles without executing.
func compileProgram(ldr loader.Loader, cfg *config) (program.Program, error) {
	comp, err := brainfuck.NewCompiler(compiler.WithLogHandler(cfg.logHandler), compiler.WithCacheSize(0))
	if err != nil {
		return nil, err
	}

	reader, err := ldr.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ldr.GetSourceURL(), err)
	}

	content, err := comp.Compile(reader)
	if err != nil {
		return nil, err
	}

	prog, ok := content.GetByteCode().(program.Program)
	if !ok {
		return nil, fmt.Errorf("unexpected bytecode type %T", content.GetByteCode())
	}
	return prog, nil
}
