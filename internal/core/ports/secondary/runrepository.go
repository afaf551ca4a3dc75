package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// RunRepository stores execution and comparison runs.
type RunRepository interface {
	// SaveRun inserts or updates a run
	SaveRun(ctx context.Context, run *domain.Run) error

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, runID uuid.UUID) (*domain.Run, error)

	// GetPendingRuns retrieves pending runs for the bench engine
	GetPendingRuns(ctx context.Context, limit int) ([]*domain.Run, error)

	// UpdateRunStatus updates a run's status
	UpdateRunStatus(ctx context.Context, runID uuid.UUID, status domain.RunStatus) error

	// ListRuns retrieves the most recent runs
	ListRuns(ctx context.Context, limit int) ([]*domain.Run, error)
}
