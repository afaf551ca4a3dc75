package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codebench-2025.net/internal/domain"
)

func TestRunnerCompleted(t *testing.T) {
	runner := NewRunner(&testLogger{})

	out := runner.Run(context.Background(), []string{"/bin/sh", "-c", "echo hello"}, 5)

	assert.Equal(t, domain.RunStateCompleted, out.State)
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Empty(t, out.Stderr)
	assert.Equal(t, 0, out.ExitCode)
	assert.Greater(t, out.ElapsedSeconds, 0.0)
	assert.NoError(t, out.Err)
}

func TestRunnerNonZeroExitIsCompleted(t *testing.T) {
	runner := NewRunner(&testLogger{})

	out := runner.Run(context.Background(), []string{"/bin/sh", "-c", "echo boom 1>&2; exit 3"}, 5)

	assert.Equal(t, domain.RunStateCompleted, out.State)
	assert.Equal(t, "boom\n", out.Stderr)
	assert.Equal(t, 3, out.ExitCode)
	assert.Greater(t, out.ElapsedSeconds, 0.0)
}

func TestRunnerTimedOut(t *testing.T) {
	runner := NewRunner(&testLogger{})

	out := runner.Run(context.Background(), []string{"/bin/sh", "-c", "echo partial; sleep 30"}, 1)

	assert.Equal(t, domain.RunStateTimedOut, out.State)
	assert.Equal(t, "Error: Code execution timed out after 1 seconds.", out.Stderr)
	// Output written before the kill is discarded, and so is the elapsed time
	assert.Empty(t, out.Stdout)
	assert.Zero(t, out.ElapsedSeconds)
	assert.Equal(t, -1, out.ExitCode)
}

func TestRunnerToolMissing(t *testing.T) {
	runner := NewRunner(&testLogger{})

	t.Run("bare name not on PATH", func(t *testing.T) {
		out := runner.Run(context.Background(), []string{"definitely-not-a-real-tool-5f2a"}, 5)
		assert.Equal(t, domain.RunStateToolMissing, out.State)
		assert.Equal(t, -1, out.ExitCode)
		require.Error(t, out.Err)
	})

	t.Run("absolute path that does not exist", func(t *testing.T) {
		out := runner.Run(context.Background(), []string{"/no/such/binary"}, 5)
		assert.Equal(t, domain.RunStateToolMissing, out.State)
		assert.Equal(t, -1, out.ExitCode)
		require.Error(t, out.Err)
	})
}

func TestRunnerLaunchFail(t *testing.T) {
	runner := NewRunner(&testLogger{})

	t.Run("empty argv", func(t *testing.T) {
		out := runner.Run(context.Background(), nil, 5)
		assert.Equal(t, domain.RunStateLaunchFail, out.State)
		require.Error(t, out.Err)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		out := runner.Run(context.Background(), []string{"/bin/sh", "-c", "true"}, 0)
		assert.Equal(t, domain.RunStateLaunchFail, out.State)
		require.Error(t, out.Err)
	})
}
