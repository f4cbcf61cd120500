package cached

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"video-service/internal/videoservice/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	videoCachePrefix = "video:"
	videoCacheTTL    = 10 * time.Minute
)

// VideoCache defines the interface for video caching operations.
// Implementations should handle cache misses gracefully by returning nil, nil.
type VideoCache interface {
	// Get retrieves a video by id. Returns nil, nil on a miss.
	Get(ctx context.Context, id int64) (*domain.Video, error)

	// Set stores a video in the cache.
	Set(ctx context.Context, v *domain.Video) error

	// Invalidate removes a video from the cache.
	Invalidate(ctx context.Context, id int64) error
}

// Compile-time interface checks
var (
	_ VideoCache = (*RedisVideoCache)(nil)
	_ VideoCache = (*noopVideoCache)(nil)
)

// RedisVideoCache implements VideoCache using Redis.
type RedisVideoCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewRedisVideoCache creates a new Redis-based video cache.
// Returns a no-op cache if the Redis client is nil.
func NewRedisVideoCache(rdb *redis.Client, logger *zap.Logger) VideoCache {
	if rdb == nil {
		return &noopVideoCache{}
	}
	return &RedisVideoCache{
		rdb:    rdb,
		logger: logger,
	}
}

func (c *RedisVideoCache) cacheKey(id int64) string {
	return videoCachePrefix + strconv.FormatInt(id, 10)
}

// Get retrieves a video from Redis.
func (c *RedisVideoCache) Get(ctx context.Context, id int64) (*domain.Video, error) {
	data, err := c.rdb.Get(ctx, c.cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		c.logger.Warn("failed to get video from cache", zap.Int64("id", id), zap.Error(err))
		return nil, nil // Treat errors as cache miss
	}

	var v domain.Video
	if err := json.Unmarshal(data, &v); err != nil {
		c.logger.Warn("failed to decode cached video", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return &v, nil
}

// Set stores a video in Redis.
func (c *RedisVideoCache) Set(ctx context.Context, v *domain.Video) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.cacheKey(v.ID), data, videoCacheTTL).Err()
}

// Invalidate removes a video from Redis.
func (c *RedisVideoCache) Invalidate(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, c.cacheKey(id)).Err()
}

type noopVideoCache struct{}

func (noopVideoCache) Get(context.Context, int64) (*domain.Video, error) { return nil, nil }
func (noopVideoCache) Set(context.Context, *domain.Video) error          { return nil }
func (noopVideoCache) Invalidate(context.Context, int64) error           { return nil }
