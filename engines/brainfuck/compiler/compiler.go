package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/robbyt/go-bfscript/engines/brainfuck/compiler/internal/compile"
	"github.com/robbyt/go-bfscript/engines/brainfuck/program"
	"github.com/robbyt/go-bfscript/internal/helpers"
	"github.com/robbyt/go-bfscript/platform/script"
)

// Compiler tokenizes, validates and compiles program source into an
// instruction tree. It is safe for concurrent use.
type Compiler struct {
	cacheSize  int
	cache      *lru.Cache[string, program.Program]
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Compiler with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "brainfuck", "Compiler")
	}

	if c.cacheSize > 0 {
		cache, err := lru.New[string, program.Program](c.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create program cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

func (c *Compiler) String() string {
	return "brainfuck.Compiler"
}

// Compile reads the whole program from scriptReader, closes it, and compiles it.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	source, err := io.ReadAll(scriptReader)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("failed to read script: %w", err),
			scriptReader.Close(),
		)
	}

	if err := scriptReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(source)
}

func (c *Compiler) compile(source []byte) (*Executable, error) {
	logger := c.logger.WithGroup("compile")

	var key string
	if c.cache != nil {
		key = helpers.SHA256Bytes(source)
		if prog, ok := c.cache.Get(key); ok {
			logger.Debug("Program cache hit", "key", key[:8])
			return newExecutable(source, prog), nil
		}
	}

	tokens, err := compile.Tokenize(string(source))
	if err != nil {
		logger.Warn("Tokenization failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if len(tokens) == 0 {
		logger.Warn("Program has no instructions")
	}

	if err := compile.Validate(tokens); err != nil {
		logger.Warn("Bracket validation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	prog, err := compile.Compile(tokens)
	if err != nil {
		if errors.Is(err, ErrInternalInconsistency) {
			logger.Error("Compiler disagrees with bracket validation", "error", err)
		}
		return nil, err
	}

	commands, loops, depth := prog.Stats()
	logger.Debug("Compilation successful",
		"tokens", len(tokens), "commands", commands, "loops", loops, "depth", depth)

	exe := newExecutable(source, prog)
	if exe == nil {
		logger.Error("Failed to create Executable from program")
		return nil, ErrExecCreationFailed
	}

	if c.cache != nil {
		c.cache.Add(key, prog)
	}
	return exe, nil
}
