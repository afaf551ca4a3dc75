package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunKind identifies what a persisted run executed.
type RunKind string

const (
	RunKindPython     RunKind = "PYTHON"
	RunKindC          RunKind = "C"
	RunKindComparison RunKind = "COMPARISON"
)

// RunStatus tracks a queued run through the bench engine.
type RunStatus string

const (
	RunStatusPending   RunStatus = "PENDING"
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusCompleted RunStatus = "COMPLETED"
	RunStatusFailed    RunStatus = "FAILED"
)

// Run is a persisted execution or comparison request. Result and Comparison
// are nil until the run completes.
type Run struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	Kind         RunKind           `db:"kind" json:"kind"`
	Status       RunStatus         `db:"status" json:"status"`
	PythonSource string            `db:"python_source" json:"python_source,omitempty"`
	CSource      string            `db:"c_source" json:"c_source,omitempty"`
	Result       *ExecutionResult  `json:"result,omitempty"`
	Comparison   *ComparisonResult `json:"comparison,omitempty"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	StartedAt    *time.Time        `db:"started_at" json:"started_at,omitempty"`
	CompletedAt  *time.Time        `db:"completed_at" json:"completed_at,omitempty"`
	OwnerID      *uuid.UUID        `db:"owner_id" json:"owner_id,omitempty"`
}

type RunTable struct {
	ID           string
	Kind         string
	Status       string
	PythonSource string
	CSource      string
	Result       string
	CreatedAt    string
	StartedAt    string
	CompletedAt  string
	OwnerID      string
}

func GetRunTable() RunTable {
	return RunTable{
		ID:           "id",
		Kind:         "kind",
		Status:       "status",
		PythonSource: "python_source",
		CSource:      "c_source",
		Result:       "result",
		CreatedAt:    "created_at",
		StartedAt:    "started_at",
		CompletedAt:  "completed_at",
		OwnerID:      "owner_id",
	}
}

func (RunTable) TableName() string {
	return "runs"
}

// NewComparisonRun creates a pending comparison run for the bench engine.
func NewComparisonRun(pythonSource, cSource string, ownerID *uuid.UUID) *Run {
	return &Run{
		ID:           uuid.New(),
		Kind:         RunKindComparison,
		Status:       RunStatusPending,
		PythonSource: pythonSource,
		CSource:      cSource,
		CreatedAt:    time.Now(),
		OwnerID:      ownerID,
	}
}
