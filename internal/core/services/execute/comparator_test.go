package execute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codebench-2025.net/internal/domain"
)

type stubExecutor struct {
	lang string
	res  domain.ExecutionResult
}

func (s stubExecutor) Language() string { return s.lang }

func (s stubExecutor) Execute(_ context.Context, _ string) domain.ExecutionResult {
	return s.res
}

func newStubComparator(py, c domain.ExecutionResult) *ComparisonService {
	return NewComparisonService(
		stubExecutor{lang: "Python", res: py},
		stubExecutor{lang: "C", res: c},
		nopLogger{},
	)
}

func TestCompareVerdict(t *testing.T) {
	t.Run("compiled side faster", func(t *testing.T) {
		svc := newStubComparator(
			domain.ExecutionResult{Stdout: "42\n", ElapsedSeconds: 2.0, ExitCode: 0},
			domain.ExecutionResult{Stdout: "42\n", ElapsedSeconds: 0.5, ExitCode: 0},
		)

		result := svc.Compare(context.Background(), "py", "c")
		require.NotNil(t, result)

		assert.True(t, result.Comparison.BothSuccessful)
		assert.Equal(t, "C", result.Comparison.Faster)
		assert.InDelta(t, 4.0, result.Comparison.Speedup, 1e-9)
	})

	t.Run("interpreted side faster", func(t *testing.T) {
		svc := newStubComparator(
			domain.ExecutionResult{ElapsedSeconds: 0.5, ExitCode: 0},
			domain.ExecutionResult{ElapsedSeconds: 2.0, ExitCode: 0},
		)

		result := svc.Compare(context.Background(), "py", "c")

		assert.Equal(t, "Python", result.Comparison.Faster)
		assert.InDelta(t, 4.0, result.Comparison.Speedup, 1e-9)
	})

	t.Run("equal times go to the compiled side", func(t *testing.T) {
		svc := newStubComparator(
			domain.ExecutionResult{ElapsedSeconds: 1.0, ExitCode: 0},
			domain.ExecutionResult{ElapsedSeconds: 1.0, ExitCode: 0},
		)

		result := svc.Compare(context.Background(), "py", "c")

		assert.Equal(t, "C", result.Comparison.Faster)
		assert.InDelta(t, 1.0, result.Comparison.Speedup, 1e-9)
	})
}

func TestCompareFailures(t *testing.T) {
	t.Run("one side failed", func(t *testing.T) {
		svc := newStubComparator(
			domain.ExecutionResult{ElapsedSeconds: 1.0, ExitCode: 0},
			domain.ExecutionResult{Stderr: "Compilation error:\nbad", ExitCode: -1},
		)

		result := svc.Compare(context.Background(), "py", "c")

		assert.False(t, result.Comparison.BothSuccessful)
		assert.Empty(t, result.Comparison.Faster)
		assert.Zero(t, result.Comparison.Speedup)
	})

	t.Run("non-zero exit with clean stderr still counts as success", func(t *testing.T) {
		svc := newStubComparator(
			domain.ExecutionResult{ElapsedSeconds: 2.0, ExitCode: 1},
			domain.ExecutionResult{ElapsedSeconds: 1.0, ExitCode: 0},
		)

		result := svc.Compare(context.Background(), "py", "c")

		assert.True(t, result.Python.Success)
		assert.True(t, result.Comparison.BothSuccessful)
		assert.Equal(t, "C", result.Comparison.Faster)
	})

	t.Run("zero elapsed time yields no ranking", func(t *testing.T) {
		svc := newStubComparator(
			domain.ExecutionResult{ElapsedSeconds: 0, ExitCode: 0},
			domain.ExecutionResult{ElapsedSeconds: 1.0, ExitCode: 0},
		)

		result := svc.Compare(context.Background(), "py", "c")

		assert.True(t, result.Comparison.BothSuccessful)
		assert.Empty(t, result.Comparison.Faster)
		assert.Zero(t, result.Comparison.Speedup)
	})
}

func TestCompareSideReports(t *testing.T) {
	svc := newStubComparator(
		domain.ExecutionResult{Stdout: "py-out", Stderr: "py-err", ElapsedSeconds: 1.5, ExitCode: 1},
		domain.ExecutionResult{Stdout: "c-out", ElapsedSeconds: 0.5, ExitCode: 0},
	)

	result := svc.Compare(context.Background(), "py", "c")

	assert.Equal(t, "py-out", result.Python.Output)
	assert.Equal(t, "py-err", result.Python.Error)
	assert.InDelta(t, 1.5, result.Python.Time, 1e-9)
	assert.False(t, result.Python.Success)

	assert.Equal(t, "c-out", result.C.Output)
	assert.True(t, result.C.Success)
	assert.False(t, result.Comparison.BothSuccessful)
}
