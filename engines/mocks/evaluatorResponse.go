package mocks

import (
	"github.com/stretchr/testify/mock"
)

// EvaluatorResponse is a mock implementation of platform.EvaluatorResponse.
type EvaluatorResponse struct {
	mock.Mock
}

func (m *EvaluatorResponse) Output() []int64 {
	args := m.Called()
	out, _ := args.Get(0).([]int64)
	return out
}

func (m *EvaluatorResponse) Bytes() []byte {
	args := m.Called()
	b, _ := args.Get(0).([]byte)
	return b
}

func (m *EvaluatorResponse) Inspect() string {
	args := m.Called()
	return args.String(0)
}

// Interface returns a mockable value of "any" type.
func (m *EvaluatorResponse) Interface() any {
	args := m.Called()
	return args.Get(0)
}

func (m *EvaluatorResponse) GetScriptExeID() string {
	args := m.Called()
	return args.String(0)
}

func (m *EvaluatorResponse) GetExecTime() string {
	args := m.Called()
	return args.String(0)
}
