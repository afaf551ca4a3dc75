package translationcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

const (
	translationKeyPrefix  = "translation:"
	translationExpiration = 24 * time.Hour
)

var _ secondary.TranslationCache = (*Cache)(nil)

// Cache implements the TranslationCache interface with Redis
type Cache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewCache creates a new Redis translation cache
func NewCache(redisClient *redis.Client, logger primary.Logger) *Cache {
	return &Cache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Get retrieves a cached translation, or nil when the key is absent
func (c *Cache) Get(ctx context.Context, key string) (*domain.Translation, error) {
	data, err := c.redisClient.Get(ctx, translationKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get translation: %w", err)
	}

	var translation domain.Translation
	if err := json.Unmarshal(data, &translation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal translation: %w", err)
	}

	return &translation, nil
}

// Set stores a translation with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, translation *domain.Translation) error {
	data, err := json.Marshal(translation)
	if err != nil {
		c.logger.Error("Failed to marshal translation", "error", err)
		return fmt.Errorf("failed to marshal translation: %w", err)
	}

	if err := c.redisClient.Set(ctx, translationKeyPrefix+key, data, translationExpiration).Err(); err != nil {
		c.logger.Error("Failed to cache translation", "error", err)
		return fmt.Errorf("failed to cache translation: %w", err)
	}

	return nil
}
