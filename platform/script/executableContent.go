package script

// ExecutableContent is validated source that has been compiled and is ready to run.
type ExecutableContent interface {
	// GetSource returns the original program text.
	GetSource() string

	// GetByteCode returns the compiled form. The evaluator asserts it into the
	// type its engine requires and fails at runtime when the types disagree.
	GetByteCode() any
}
