package translate

import (
	"context"
	"fmt"

	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache is a Redis-backed store for translation results. A nil *Cache is
// valid and behaves as a permanent miss, so callers never branch on whether
// caching is enabled.
type Cache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

// NewCache connects to Redis when the cache is enabled. Returns nil (cache
// disabled) when cfg.Enabled is false.
func NewCache(cfg *config.CacheConfig) (*Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client: client,
		cfg:    cfg,
	}, nil
}

// Get returns a cached translation, if any.
func (c *Cache) Get(ctx context.Context, target, text string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}

	value, err := c.client.Get(ctx, cacheKey(target, text)).Result()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("Translation cache read failed", zap.Error(err))
		}
		return "", false
	}

	common.LogDebug("Translation cache hit", zap.String("text", text))
	return value, true
}

// Set stores a translation result. Write failures are logged and ignored.
func (c *Cache) Set(ctx context.Context, target, text, translated string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, cacheKey(target, text), translated, c.cfg.TTL).Err(); err != nil {
		common.LogWarn("Translation cache write failed", zap.Error(err))
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() {
	if c != nil && c.client != nil {
		_ = c.client.Close()
	}
}

func cacheKey(target, text string) string {
	return fmt.Sprintf("translate:%s:%s", target, text)
}
