package runs

import "github.com/google/uuid"

// ExecuteRequest carries source text for a single-language run
type ExecuteRequest struct {
	Code string `json:"code"`
}

// CompareRequest carries both sides of a comparison
type CompareRequest struct {
	PythonCode string `json:"python_code"`
	CCode      string `json:"c_code"`
}

// EnqueueComparisonResponse is returned when a comparison run is queued
type EnqueueComparisonResponse struct {
	RunID uuid.UUID `json:"runId"`
}

// TranslateRequest carries Python source for translation
type TranslateRequest struct {
	PythonCode         string `json:"python_code"`
	IncludeExplanation bool   `json:"include_explanation"`
}
