package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns a handler and a logger for one component of an engine.
// A nil handler is replaced with a text handler on stdout, grouped under the
// engine name. The returned logger is grouped under component when it is set.
func SetupLogger(handler slog.Handler, engine string, component string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, nil).WithGroup(engine)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if component == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(component))
}
