// package runrepository contains the PostgreSQL implementation of the run
// history repository
package runrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

var _ secondary.RunRepository = (*RunRepository)(nil)

// RunRepository implements the RunRepository interface with PostgreSQL
type RunRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB, logger primary.Logger) *RunRepository {
	return &RunRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRun saves a run to PostgreSQL
func (r *RunRepository) SaveRun(ctx context.Context, run *domain.Run) error {
	resultJSON, err := marshalResult(run)
	if err != nil {
		r.logger.Error("Failed to marshal run result", "error", err)
		return fmt.Errorf("failed to marshal run result: %w", err)
	}

	query := `
		INSERT INTO runs (
			id, kind, status, python_source, c_source, result,
			created_at, started_at, completed_at, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			result = EXCLUDED.result,
			started_at = EXCLUDED.started_at,
			completed_at = EXCLUDED.completed_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		run.ID,
		run.Kind,
		run.Status,
		run.PythonSource,
		run.CSource,
		resultJSON,
		run.CreatedAt,
		run.StartedAt,
		run.CompletedAt,
		run.OwnerID,
	)

	if err != nil {
		r.logger.Error("Failed to save run", "error", err)
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// GetRun retrieves a run from PostgreSQL by ID
func (r *RunRepository) GetRun(ctx context.Context, runID uuid.UUID) (*domain.Run, error) {
	query := `
		SELECT id, kind, status, python_source, c_source, result,
			   created_at, started_at, completed_at, owner_id
		FROM runs
		WHERE id = $1
	`

	run, err := r.scanRun(r.db.QueryRowContext(ctx, query, runID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get run", "runId", runID, "error", err)
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// GetPendingRuns retrieves pending runs ordered by creation time
func (r *RunRepository) GetPendingRuns(ctx context.Context, limit int) ([]*domain.Run, error) {
	query := `
		SELECT id, kind, status, python_source, c_source, result,
			   created_at, started_at, completed_at, owner_id
		FROM runs
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	return r.queryRuns(ctx, query, domain.RunStatusPending, limit)
}

// UpdateRunStatus updates a run's status
func (r *RunRepository) UpdateRunStatus(ctx context.Context, runID uuid.UUID, status domain.RunStatus) error {
	query := `UPDATE runs SET status = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, status, runID)
	if err != nil {
		r.logger.Error("Failed to update run status", "runId", runID, "error", err)
		return fmt.Errorf("failed to update run status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}

	return nil
}

// ListRuns retrieves the most recent runs
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*domain.Run, error) {
	query := `
		SELECT id, kind, status, python_source, c_source, result,
			   created_at, started_at, completed_at, owner_id
		FROM runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	return r.queryRuns(ctx, query, limit)
}

func (r *RunRepository) queryRuns(ctx context.Context, query string, args ...interface{}) ([]*domain.Run, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query runs", "error", err)
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			r.logger.Error("Failed to scan run", "error", err)
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *RunRepository) scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var resultJSON []byte
	var startedAt, completedAt sql.NullTime
	var ownerID sql.NullString

	err := row.Scan(
		&run.ID,
		&run.Kind,
		&run.Status,
		&run.PythonSource,
		&run.CSource,
		&resultJSON,
		&run.CreatedAt,
		&startedAt,
		&completedAt,
		&ownerID,
	)
	if err != nil {
		return nil, err
	}

	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	if ownerID.Valid {
		parsed, err := uuid.Parse(ownerID.String)
		if err == nil {
			run.OwnerID = &parsed
		}
	}

	if err := unmarshalResult(&run, resultJSON); err != nil {
		return nil, err
	}

	return &run, nil
}

// marshalResult serializes whichever result shape the run kind carries
func marshalResult(run *domain.Run) ([]byte, error) {
	switch {
	case run.Kind == domain.RunKindComparison && run.Comparison != nil:
		return json.Marshal(run.Comparison)
	case run.Result != nil:
		return json.Marshal(run.Result)
	default:
		return nil, nil
	}
}

func unmarshalResult(run *domain.Run, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if run.Kind == domain.RunKindComparison {
		var comparison domain.ComparisonResult
		if err := json.Unmarshal(data, &comparison); err != nil {
			return fmt.Errorf("failed to unmarshal comparison result: %w", err)
		}
		run.Comparison = &comparison
		return nil
	}
	var result domain.ExecutionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to unmarshal execution result: %w", err)
	}
	run.Result = &result
	return nil
}
