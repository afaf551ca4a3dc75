package runs

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codebench-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeRunRepo struct {
	saved     map[uuid.UUID]*domain.Run
	saveErr   error
	listLimit int
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{saved: map[uuid.UUID]*domain.Run{}}
}

func (r *fakeRunRepo) SaveRun(_ context.Context, run *domain.Run) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *run
	r.saved[run.ID] = &copied
	return nil
}

func (r *fakeRunRepo) GetRun(_ context.Context, runID uuid.UUID) (*domain.Run, error) {
	return r.saved[runID], nil
}

func (r *fakeRunRepo) GetPendingRuns(_ context.Context, limit int) ([]*domain.Run, error) {
	var pending []*domain.Run
	for _, run := range r.saved {
		if run.Status == domain.RunStatusPending {
			pending = append(pending, run)
		}
	}
	return pending, nil
}

func (r *fakeRunRepo) UpdateRunStatus(_ context.Context, runID uuid.UUID, status domain.RunStatus) error {
	run, ok := r.saved[runID]
	if !ok {
		return errors.New("run not found")
	}
	run.Status = status
	return nil
}

func (r *fakeRunRepo) ListRuns(_ context.Context, limit int) ([]*domain.Run, error) {
	r.listLimit = limit
	var list []*domain.Run
	for _, run := range r.saved {
		list = append(list, run)
	}
	return list, nil
}

func TestEnqueueComparison(t *testing.T) {
	t.Run("persists a pending comparison run", func(t *testing.T) {
		repo := newFakeRunRepo()
		svc := NewRunService(repo, nopLogger{})

		runID, err := svc.EnqueueComparison(context.Background(), "print('hi')", "int main(void){}", nil)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, runID)

		saved := repo.saved[runID]
		require.NotNil(t, saved)
		assert.Equal(t, domain.RunKindComparison, saved.Kind)
		assert.Equal(t, domain.RunStatusPending, saved.Status)
		assert.Equal(t, "print('hi')", saved.PythonSource)
		assert.Equal(t, "int main(void){}", saved.CSource)
		assert.Nil(t, saved.StartedAt)
	})

	t.Run("rejects empty sources", func(t *testing.T) {
		repo := newFakeRunRepo()
		svc := NewRunService(repo, nopLogger{})

		_, err := svc.EnqueueComparison(context.Background(), "  ", "int main(void){}", nil)
		assert.Error(t, err)

		_, err = svc.EnqueueComparison(context.Background(), "print('hi')", "", nil)
		assert.Error(t, err)

		assert.Empty(t, repo.saved)
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		repo := newFakeRunRepo()
		repo.saveErr = errors.New("db down")
		svc := NewRunService(repo, nopLogger{})

		_, err := svc.EnqueueComparison(context.Background(), "print('hi')", "int main(void){}", nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "db down")
	})
}

func TestListRunsLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		applied   int
	}{
		{"zero gets the default", 0, 20},
		{"negative gets the default", -5, 20},
		{"above the cap gets the default", 500, 20},
		{"in range passes through", 50, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRunRepo()
			svc := NewRunService(repo, nopLogger{})

			_, err := svc.ListRuns(context.Background(), tc.requested)
			require.NoError(t, err)
			assert.Equal(t, tc.applied, repo.listLimit)
		})
	}
}

func TestRecordRun(t *testing.T) {
	repo := newFakeRunRepo()
	svc := NewRunService(repo, nopLogger{})

	run := domain.NewComparisonRun("py", "c", nil)
	run.Status = domain.RunStatusCompleted

	require.NoError(t, svc.RecordRun(context.Background(), run))
	assert.Equal(t, domain.RunStatusCompleted, repo.saved[run.ID].Status)
}
