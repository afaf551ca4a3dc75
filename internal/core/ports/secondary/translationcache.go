package secondary

import (
	"context"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// TranslationCache caches translations keyed by a digest of the Python
// source so repeated requests skip the model call.
type TranslationCache interface {
	// Get returns the cached translation for the key, or nil when absent.
	// Cache faults are reported as errors but callers treat them as misses.
	Get(ctx context.Context, key string) (*domain.Translation, error)

	// Set stores a translation under the key with the configured TTL
	Set(ctx context.Context, key string, translation *domain.Translation) error
}
