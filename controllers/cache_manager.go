package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ProductCachePrefix = "product:detail:v:"
	CompareCachePrefix = "compare:v:"
	CacheVersionKey    = "prices:version"
	DefaultCacheTTL    = 5 * time.Minute
)

// CacheManager caches the hot buyer reads (product detail and price
// comparison) in Redis. Entries are keyed by a version counter that gets
// bumped on every price submission, so invalidation is a single INCR.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redis,
		ttl:   DefaultCacheTTL,
	}
}

// Get retrieves a cached response for the prefix and product ID.
func (cm *CacheManager) Get(ctx context.Context, prefix, productID string) (map[string]interface{}, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cachedData, err := cm.redis.Get(ctx, cm.key(prefix, version, productID)).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cachedData), &response); err != nil {
		zap.L().Warn("Failed to unmarshal cached response", zap.Error(err))
		return nil, false
	}
	return response, true
}

// SetAsync caches a response asynchronously.
func (cm *CacheManager) SetAsync(prefix, productID string, response interface{}) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		jsonBytes, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal response for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, cm.key(prefix, version, productID), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache response", zap.Error(err))
		}
	}()
}

// Invalidate invalidates all cached price views by bumping the version.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	newVersion, err := cm.redis.Incr(ctx, CacheVersionKey).Result()
	if err != nil {
		zap.L().Error("Failed to invalidate cache", zap.Error(err))
		return
	}
	zap.L().Info("Cache invalidated", zap.Int64("new_version", newVersion))
}

func (cm *CacheManager) key(prefix string, version int64, productID string) string {
	return fmt.Sprintf("%s%d:%s", prefix, version, productID)
}

// getCacheVersion retrieves the current cache version with retry logic.
func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		ver, err := cm.redis.Get(ctx, CacheVersionKey).Int64()
		if err == nil && ver > 0 {
			return ver, nil
		}

		if err == redis.Nil {
			if err := cm.redis.Set(ctx, CacheVersionKey, 1, 0).Err(); err == nil {
				return 1, nil
			}
		}

		if i < maxRetries-1 {
			time.Sleep(time.Millisecond * 50)
		}
	}

	return 0, fmt.Errorf("failed to get cache version after %d retries", maxRetries)
}
