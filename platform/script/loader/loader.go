// Package loader provides the sources a program can be read from.
package loader

import (
	"errors"
	"io"
	"net/url"
)

var (
	ErrSchemeUnsupported  = errors.New("unsupported scheme")
	ErrScriptNotAvailable = errors.New("script not available")
)

// Loader is used by the engines to read program source.
// GetReader may be called more than once; each call returns a fresh reader.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
