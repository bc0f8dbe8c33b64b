package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mertkaya/edumanage/internal/pkg/logger"
)

// Cache errors
var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheNotFound     = errors.New("cache not found")
)

// Helper provides JSON caching on top of an optional Redis client. A nil
// client degrades gracefully: reads miss and writes are no-ops.
type Helper struct {
	client *redis.Client
	prefix string
}

// NewHelper creates a new cache helper instance
func NewHelper(client *redis.Client, prefix string) *Helper {
	return &Helper{
		client: client,
		prefix: prefix,
	}
}

func (c *Helper) key(key string) string {
	return c.prefix + key
}

// Get retrieves and unmarshals data from cache
func (c *Helper) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

// Set marshals and stores data in cache
func (c *Helper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	return c.client.Set(ctx, c.key(key), data, ttl).Err()
}

// Delete removes keys from cache
func (c *Helper) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}

	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = c.key(key)
	}
	return c.client.Del(ctx, cacheKeys...).Err()
}

// GetOrFetch implements the cache-aside pattern: serve from cache when
// possible, otherwise execute fetchFunc and populate the cache.
func (c *Helper) GetOrFetch(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetchFunc func() (interface{}, error)) error {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrCacheNotFound) && !errors.Is(err, ErrCacheNotAvailable) {
		logger.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling back to fetch")
	}

	value, err := fetchFunc()
	if err != nil {
		return err
	}

	if setErr := c.Set(ctx, key, value, ttl); setErr != nil {
		logger.Warn().Err(setErr).Str("key", key).Msg("Cache write failed")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal result error: %w", err)
	}
	return json.Unmarshal(data, dest)
}

// HealthCheck verifies cache connectivity
func (c *Helper) HealthCheck(ctx context.Context) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	if _, err := c.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}
	return nil
}
