package runs

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// IRunService manages persisted execution and comparison runs
type IRunService interface {
	// EnqueueComparison queues an asynchronous comparison run
	EnqueueComparison(ctx context.Context, pythonSource, cSource string, ownerID *uuid.UUID) (uuid.UUID, error)

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, runID uuid.UUID) (*domain.Run, error)

	// ListRuns retrieves the most recent runs
	ListRuns(ctx context.Context, limit int) ([]*domain.Run, error)

	// RecordRun persists a completed synchronous run
	RecordRun(ctx context.Context, run *domain.Run) error
}
