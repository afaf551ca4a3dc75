package execute

import (
	"context"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// Executor runs a piece of source text and reports the outcome. Misuse
// (empty input, missing tool, timeout) never escapes as an error; it lands
// in the result's stderr so the caller can render it as-is.
type Executor interface {
	// Language returns the human-readable language label, e.g. "Python"
	Language() string

	// Execute runs the source text with the configured timeout
	Execute(ctx context.Context, source string) domain.ExecutionResult
}

// IComparisonService races a Python snippet against its C counterpart.
type IComparisonService interface {
	Compare(ctx context.Context, pythonCode, cCode string) *domain.ComparisonResult
}
