package secondary

import (
	"context"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// Translator maps Python source to C source. Failures are carried inside the
// returned Translation as an error-prefixed string, never as a Go error; the
// chat UI renders whatever text comes back.
type Translator interface {
	Translate(ctx context.Context, pythonCode string) domain.Translation
	TranslateWithExplanation(ctx context.Context, pythonCode string) domain.Translation
}
