package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

const (
	settingsCacheKey = "helpdesk:settings"
	settingsCacheTTL = 30 * time.Second
)

// RedisSettingsCache caches triage settings in Redis so hot reads skip
// Postgres. Misses and Redis failures both report a miss; callers fall
// back to the repository.
type RedisSettingsCache struct {
	client *redis.Client
}

// NewRedisSettingsCache wraps an existing Redis client.
func NewRedisSettingsCache(client *redis.Client) *RedisSettingsCache {
	return &RedisSettingsCache{client: client}
}

// Get returns the cached settings, or ok=false on a miss.
func (c *RedisSettingsCache) Get(ctx context.Context) (*domain.Settings, bool) {
	raw, err := c.client.Get(ctx, settingsCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		// Treat Redis trouble as a miss rather than failing the request.
		return nil, false
	}

	var settings domain.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, false
	}
	return &settings, true
}

// Set stores settings with a short TTL.
func (c *RedisSettingsCache) Set(ctx context.Context, settings *domain.Settings) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, settingsCacheKey, raw, settingsCacheTTL).Err()
}

// Invalidate drops the cached entry after an update.
func (c *RedisSettingsCache) Invalidate(ctx context.Context) {
	_ = c.client.Del(ctx, settingsCacheKey).Err()
}
