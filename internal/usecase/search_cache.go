package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type JobCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// cacheInvalidator drops cached public job reads after a write. Failures are
// logged and swallowed; entries expire on their own.
type cacheInvalidator struct {
	cache  JobCache
	logger *zap.Logger
}

func (c cacheInvalidator) jobCreated(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.DeleteByPattern(ctx, JobsListCachePattern); err != nil {
		c.logger.Warn("job list cache invalidation failed", zap.Error(err))
	}
}

func (c cacheInvalidator) applicationCreated(ctx context.Context, jobKey string) {
	if c.cache == nil {
		return
	}
	c.jobCreated(ctx)
	if err := c.cache.Delete(ctx, jobKey); err != nil {
		c.logger.Warn("job detail cache invalidation failed", zap.String("key", jobKey), zap.Error(err))
	}
}
