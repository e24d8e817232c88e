package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"sflix-catalog-service/internal/models"
)

// Cache stores successful recommendation results.
type Cache interface {
	Get(ctx context.Context, key string) ([]models.Title, bool)
	Set(ctx context.Context, key string, titles []models.Title, ttl time.Duration)
}

// RedisCache is a Cache backed by Redis. A nil client disables caching.
type RedisCache struct {
	redis *redis.Client
}

// NewRedisCache creates a RedisCache. rdb may be nil.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{redis: rdb}
}

// Get returns the cached titles for key, if any.
func (c *RedisCache) Get(ctx context.Context, key string) ([]models.Title, bool) {
	if c.redis == nil {
		return nil, false
	}
	cached, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("failed to read cache", "key", key, "error", err)
		}
		return nil, false
	}
	var titles []models.Title
	if err := json.Unmarshal([]byte(cached), &titles); err != nil {
		slog.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}
	if titles == nil {
		titles = []models.Title{}
	}
	return titles, true
}

// Set stores titles under key for ttl.
func (c *RedisCache) Set(ctx context.Context, key string, titles []models.Title, ttl time.Duration) {
	if c.redis == nil || ttl <= 0 {
		return
	}
	data, err := json.Marshal(titles)
	if err != nil {
		slog.Error("failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

func cacheKey(kind models.RecommendationKind, input string) string {
	return fmt.Sprintf("recommendations:%s:%s", kind, input)
}
