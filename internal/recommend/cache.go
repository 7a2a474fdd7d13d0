// internal/recommend/cache.go
package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache is the cache-aside store for serialized ranked results.
// Entries expire by TTL only; nothing invalidates them on data changes.
type ResultCache interface {
	// Get returns the payload for a key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key string, payload string, ttl time.Duration) error
}

// RedisResultCache implements ResultCache on a pooled Redis client.
type RedisResultCache struct {
	client *redis.Client
}

func NewRedisResultCache(client *redis.Client) *RedisResultCache {
	return &RedisResultCache{client: client}
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, payload string, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}
