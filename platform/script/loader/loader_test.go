package loader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const helloProgram = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func readAll(t *testing.T, l Loader) string {
	t.Helper()
	reader, err := l.GetReader()
	require.NoError(t, err)
	defer func() { require.NoError(t, reader.Close()) }()
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(content)
}

func TestFromString(t *testing.T) {
	t.Parallel()

	t.Run("valid content", func(t *testing.T) {
		l, err := NewFromString("+++.\n")
		require.NoError(t, err)
		require.Equal(t, "string", l.GetSourceURL().Scheme)
		require.Equal(t, "inline", l.GetSourceURL().Host)
		require.Equal(t, "+++.\n", readAll(t, l))
		require.Equal(t, "+++.\n", readAll(t, l), "reader can be requested twice")
		require.Equal(t, "loader.FromString{Chars: 5}", l.String())
	})

	t.Run("same content same URL", func(t *testing.T) {
		a, err := NewFromString("+.")
		require.NoError(t, err)
		b, err := NewFromString("+.")
		require.NoError(t, err)
		require.Equal(t, a.GetSourceURL().String(), b.GetSourceURL().String())
	})

	for _, content := range []string{"", "  \n\t"} {
		_, err := NewFromString(content)
		require.ErrorIs(t, err, ErrScriptNotAvailable)
	}
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	content := []byte("+[-].")
	l, err := NewFromBytes(content)
	require.NoError(t, err)
	content[0] = '-'
	require.Equal(t, "+[-].", readAll(t, l), "loader keeps its own copy")
	require.Equal(t, "bytes", l.GetSourceURL().Scheme)
	require.Equal(t, "loader.FromBytes{Bytes: 5}", l.String())

	_, err = NewFromBytes(nil)
	require.ErrorIs(t, err, ErrScriptNotAvailable)
	_, err = NewFromBytes([]byte("\n\n"))
	require.ErrorIs(t, err, ErrScriptNotAvailable)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestFromIoReader(t *testing.T) {
	t.Parallel()

	t.Run("named source", func(t *testing.T) {
		l, err := NewFromIoReader(strings.NewReader(helloProgram), "stdin")
		require.NoError(t, err)
		require.Equal(t, "reader", l.GetSourceURL().Scheme)
		require.Equal(t, "stdin", l.GetSourceURL().Host)
		require.Equal(t, helloProgram, readAll(t, l))
		require.Equal(t, helloProgram, readAll(t, l))
		require.Contains(t, l.String(), "loader.FromIoReader{Bytes: ")
	})

	t.Run("unnamed source", func(t *testing.T) {
		l, err := NewFromIoReader(strings.NewReader("+"), "")
		require.NoError(t, err)
		require.Equal(t, "unnamed", l.GetSourceURL().Host)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := NewFromIoReader(nil, "x")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		_, err = NewFromIoReader(strings.NewReader(" "), "x")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		_, err = NewFromIoReader(failingReader{}, "x")
		require.ErrorContains(t, err, "boom")
	})
}

func TestFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hello.bf")
	require.NoError(t, os.WriteFile(path, []byte(helloProgram), 0o600))

	t.Run("absolute path", func(t *testing.T) {
		l, err := NewFromDisk(path)
		require.NoError(t, err)
		require.Equal(t, "file", l.GetSourceURL().Scheme)
		require.Equal(t, filepath.ToSlash(path), l.GetSourceURL().Path)
		require.Equal(t, helloProgram, readAll(t, l))
		require.Contains(t, l.String(), "SHA256: ")
	})

	t.Run("file scheme prefix", func(t *testing.T) {
		l, err := NewFromDisk("file://" + path)
		require.NoError(t, err)
		require.Equal(t, helloProgram, readAll(t, l))
	})

	t.Run("missing file fails on read", func(t *testing.T) {
		l, err := NewFromDisk(filepath.Join(dir, "missing.bf"))
		require.NoError(t, err)
		_, err = l.GetReader()
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		require.Equal(t, "loader.FromDisk{Path: "+filepath.Join(dir, "missing.bf")+"}", l.String())
	})

	t.Run("rejected paths", func(t *testing.T) {
		_, err := NewFromDisk("relative/hello.bf")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		_, err = NewFromDisk("/")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		_, err = NewFromDisk("https://example.com/hello.bf")
		require.ErrorIs(t, err, ErrSchemeUnsupported)
	})
}
