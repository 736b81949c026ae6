package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunner_AllStepsSucceed(t *testing.T) {
	r := New("/bin/sh", zap.NewNop())
	steps := []Step{
		{Name: "first", Args: []string{"-c", "echo first-output"}},
		{Name: "second", Args: []string{"-c", "true"}},
	}

	results, ok := r.Run(context.Background(), steps)

	assert.True(t, ok)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Contains(t, results[0].Output, "first-output")
	assert.NoError(t, results[1].Err)
}

func TestRunner_ContinuesAfterFailure(t *testing.T) {
	r := New("/bin/sh", zap.NewNop())
	steps := []Step{
		{Name: "failing", Args: []string{"-c", "echo boom >&2; exit 3"}},
		{Name: "after", Args: []string{"-c", "echo still-ran"}},
	}

	results, ok := r.Run(context.Background(), steps)

	assert.False(t, ok)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.Contains(t, results[0].Output, "boom")
	assert.NoError(t, results[1].Err)
	assert.Contains(t, results[1].Output, "still-ran")
}

func TestRunner_MissingBinary(t *testing.T) {
	r := New("/nonexistent/binary", zap.NewNop())
	results, ok := r.Run(context.Background(), []Step{{Name: "only", Args: nil}})

	assert.False(t, ok)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}
