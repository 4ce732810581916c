package script

import "io"

// Compiler turns a program read from a loader into ExecutableContent.
// Implementations close the reader.
type Compiler interface {
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
