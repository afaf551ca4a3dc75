package runs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

var _ IRunService = (*RunService)(nil)

// RunService implements the IRunService interface
type RunService struct {
	runRepo secondary.RunRepository
	logger  primary.Logger
}

// NewRunService creates a new run service
func NewRunService(runRepo secondary.RunRepository, logger primary.Logger) *RunService {
	return &RunService{
		runRepo: runRepo,
		logger:  logger,
	}
}

// EnqueueComparison queues a comparison run for the bench engine. Both
// sources must be non-empty; empty input is rejected here so the queue never
// holds runs that cannot execute.
func (s *RunService) EnqueueComparison(ctx context.Context, pythonSource, cSource string, ownerID *uuid.UUID) (uuid.UUID, error) {
	if strings.TrimSpace(pythonSource) == "" || strings.TrimSpace(cSource) == "" {
		return uuid.Nil, fmt.Errorf("both python and c sources are required")
	}

	run := domain.NewComparisonRun(pythonSource, cSource, ownerID)

	s.logger.Info("Enqueueing comparison run", "runId", run.ID)

	if err := s.runRepo.SaveRun(ctx, run); err != nil {
		s.logger.Error("Failed to save run", "runId", run.ID, "error", err)
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}

	return run.ID, nil
}

// GetRun retrieves a run by ID
func (s *RunService) GetRun(ctx context.Context, runID uuid.UUID) (*domain.Run, error) {
	s.logger.Debug("Getting run", "runId", runID)

	run, err := s.runRepo.GetRun(ctx, runID)
	if err != nil {
		s.logger.Error("Failed to get run", "runId", runID, "error", err)
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRuns retrieves the most recent runs
func (s *RunService) ListRuns(ctx context.Context, limit int) ([]*domain.Run, error) {
	s.logger.Debug("Listing runs", "limit", limit)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.runRepo.ListRuns(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list runs", "error", err)
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return list, nil
}

// RecordRun persists a completed synchronous run for history
func (s *RunService) RecordRun(ctx context.Context, run *domain.Run) error {
	if err := s.runRepo.SaveRun(ctx, run); err != nil {
		s.logger.Error("Failed to record run", "runId", run.ID, "error", err)
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}
