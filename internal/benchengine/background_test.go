package benchengine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// memoryRunRepo is a mutex-guarded in-memory store; the worker pool saves
// concurrently.
type memoryRunRepo struct {
	mu   sync.Mutex
	runs map[uuid.UUID]*domain.Run
}

func newMemoryRunRepo() *memoryRunRepo {
	return &memoryRunRepo{runs: map[uuid.UUID]*domain.Run{}}
}

func (r *memoryRunRepo) SaveRun(_ context.Context, run *domain.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *run
	r.runs[run.ID] = &copied
	return nil
}

func (r *memoryRunRepo) GetRun(_ context.Context, runID uuid.UUID) (*domain.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[runID]
	if !ok {
		return nil, nil
	}
	copied := *run
	return &copied, nil
}

func (r *memoryRunRepo) GetPendingRuns(_ context.Context, limit int) ([]*domain.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []*domain.Run
	for _, run := range r.runs {
		if run.Status == domain.RunStatusPending && len(pending) < limit {
			copied := *run
			pending = append(pending, &copied)
		}
	}
	return pending, nil
}

func (r *memoryRunRepo) UpdateRunStatus(_ context.Context, runID uuid.UUID, status domain.RunStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[runID]
	if !ok {
		return nil
	}
	run.Status = status
	return nil
}

func (r *memoryRunRepo) ListRuns(_ context.Context, limit int) ([]*domain.Run, error) {
	return nil, nil
}

func (r *memoryRunRepo) status(t *testing.T, runID uuid.UUID) domain.RunStatus {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[runID]
	require.True(t, ok)
	return run.Status
}

type stubComparator struct {
	mu    sync.Mutex
	calls int
}

func (c *stubComparator) Compare(_ context.Context, pythonCode, cCode string) *domain.ComparisonResult {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return &domain.ComparisonResult{
		Python: domain.SideReport{Success: true, Time: 2.0},
		C:      domain.SideReport{Success: true, Time: 1.0},
		Comparison: domain.Verdict{
			Faster:         "C",
			Speedup:        2.0,
			BothSuccessful: true,
		},
	}
}

func (c *stubComparator) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func newTestEngine(repo *memoryRunRepo, comparator *stubComparator) *BenchEngine {
	cfg := &config.BenchEngineCfg{
		PollInterval: 10 * time.Millisecond,
		WorkerSize:   2,
	}
	return NewBenchEngine(cfg, repo, comparator, nopLogger{})
}

func TestProcessPendingRuns(t *testing.T) {
	t.Run("completes a queued comparison", func(t *testing.T) {
		repo := newMemoryRunRepo()
		comparator := &stubComparator{}
		engine := newTestEngine(repo, comparator)

		run := domain.NewComparisonRun("print('hi')", "int main(void){}", nil)
		require.NoError(t, repo.SaveRun(context.Background(), run))

		engine.ProcessPendingRuns(context.Background())

		assert.Equal(t, 1, comparator.callCount())
		stored, err := repo.GetRun(context.Background(), run.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RunStatusCompleted, stored.Status)
		require.NotNil(t, stored.Comparison)
		assert.Equal(t, "C", stored.Comparison.Comparison.Faster)
		assert.NotNil(t, stored.StartedAt)
		assert.NotNil(t, stored.CompletedAt)
	})

	t.Run("drains a batch across the worker pool", func(t *testing.T) {
		repo := newMemoryRunRepo()
		comparator := &stubComparator{}
		engine := newTestEngine(repo, comparator)

		var ids []uuid.UUID
		for i := 0; i < 7; i++ {
			run := domain.NewComparisonRun("py", "c", nil)
			require.NoError(t, repo.SaveRun(context.Background(), run))
			ids = append(ids, run.ID)
		}

		engine.ProcessPendingRuns(context.Background())

		assert.Equal(t, 7, comparator.callCount())
		for _, id := range ids {
			assert.Equal(t, domain.RunStatusCompleted, repo.status(t, id))
		}
	})

	t.Run("no pending runs is a no-op", func(t *testing.T) {
		repo := newMemoryRunRepo()
		comparator := &stubComparator{}
		engine := newTestEngine(repo, comparator)

		engine.ProcessPendingRuns(context.Background())

		assert.Zero(t, comparator.callCount())
	})

	t.Run("non-comparison kind is failed, not executed", func(t *testing.T) {
		repo := newMemoryRunRepo()
		comparator := &stubComparator{}
		engine := newTestEngine(repo, comparator)

		run := domain.NewComparisonRun("py", "c", nil)
		run.Kind = domain.RunKindPython
		require.NoError(t, repo.SaveRun(context.Background(), run))

		engine.ProcessPendingRuns(context.Background())

		assert.Zero(t, comparator.callCount())
		assert.Equal(t, domain.RunStatusFailed, repo.status(t, run.ID))
	})
}

func TestEngineStart(t *testing.T) {
	repo := newMemoryRunRepo()
	comparator := &stubComparator{}
	engine := newTestEngine(repo, comparator)

	run := domain.NewComparisonRun("py", "c", nil)
	require.NoError(t, repo.SaveRun(context.Background(), run))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Start(ctx)

	assert.Eventually(t, func() bool {
		stored, _ := repo.GetRun(context.Background(), run.ID)
		return stored != nil && stored.Status == domain.RunStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}
