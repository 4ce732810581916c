package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-bfscript/platform"
)

func TestMocksImplementInterfaces(t *testing.T) {
	t.Parallel()

	var _ platform.Evaluator = (*Evaluator)(nil)
	var _ platform.EvaluatorResponse = (*EvaluatorResponse)(nil)
}

func TestEvaluatorMock(t *testing.T) {
	t.Parallel()

	resp := &EvaluatorResponse{}
	resp.On("Output").Return([]int64{3})

	e := &Evaluator{}
	e.On("Eval", context.Background()).Return(resp, nil).Once()
	e.On("Eval", context.Background()).Return(nil, errors.New("boom")).Once()

	got, err := e.Eval(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{3}, got.Output())

	got, err = e.Eval(context.Background())
	require.Nil(t, got)
	require.EqualError(t, err, "boom")

	e.AssertExpectations(t)
	resp.AssertExpectations(t)
}
