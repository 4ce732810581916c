package loader

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// InferLoader picks a loader for input:
//   - string: http/https URL, file:// URL, a path (contains a separator or ends
//     in .bf/.b), otherwise inline program text
//   - []byte: FromBytes
//   - io.Reader: FromIoReader
//   - Loader: returned as-is
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case Loader:
		return v, nil
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

func inferFromString(input string) (Loader, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty string input", ErrScriptNotAvailable)
	}

	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		switch parsed.Scheme {
		case "http", "https":
			return NewFromHTTP(trimmed)
		case "file":
			return diskLoader(parsed.Path)
		default:
			return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, parsed.Scheme)
		}
	}

	if looksLikePath(trimmed) {
		return diskLoader(trimmed)
	}

	return NewFromString(input)
}

// looksLikePath reports whether input cannot be program text: none of the
// path markers are valid symbols.
func looksLikePath(input string) bool {
	if strings.ContainsAny(input, `/\`) {
		return true
	}
	ext := filepath.Ext(input)
	return ext == ".bf" || ext == ".b"
}

func diskLoader(path string) (Loader, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve relative path %q: %w", path, err)
		}
		path = abs
	}
	return NewFromDisk(path)
}
