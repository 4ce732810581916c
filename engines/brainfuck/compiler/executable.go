package compiler

import "github.com/robbyt/go-bfscript/engines/brainfuck/program"

// Executable is the compiled form of one program.
type Executable struct {
	source  []byte
	program program.Program
}

func newExecutable(source []byte, prog program.Program) *Executable {
	if prog == nil {
		return nil
	}
	return &Executable{
		source:  source,
		program: prog,
	}
}

func (e *Executable) GetSource() string {
	return string(e.source)
}

// GetByteCode returns the program.Program instruction tree.
func (e *Executable) GetByteCode() any {
	return e.program
}

func (e *Executable) GetProgram() program.Program {
	return e.program
}
