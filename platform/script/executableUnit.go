package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-bfscript/internal/helpers"
	"github.com/robbyt/go-bfscript/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit is one compiled version of a program together with where it came from.
type ExecutableUnit struct {
	// ID identifies this version; derived from a hash of the source when not given.
	ID string

	CreatedAt time.Time

	// ScriptLoader loads the source (string, file, HTTP, etc.).
	ScriptLoader loader.Loader

	// Compiler is the engine compiler that produced Content.
	Compiler Compiler

	// Content holds the source and the compiled instruction tree.
	Content ExecutableContent

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit reads the program from scriptLoader and compiles it.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, errors.New("compiler is nil")
	}
	if scriptLoader == nil {
		return nil, errors.New("loader is nil")
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortSHA256([]byte(exe.GetSource()), checksumLength)
	}
	logger = logger.With("ID", versionID)
	logger.Debug("Executable unit created")

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Compiler:     compiler,
		Content:      exe,
		logHandler:   handler,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

// GetID returns the version identifier.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the compiled content.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}
