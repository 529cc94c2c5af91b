// README: Geocode caches: Redis-backed for production, in-memory for tests.
package geocode

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"dropcab/internal/types"
)

const redisKeyPrefix = "geocode:q:"

// RedisCache stores geocode results as JSON values with a TTL.
type RedisCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]types.Location, bool, error) {
	val, err := c.redis.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var locations []types.Location
	if err := json.Unmarshal([]byte(val), &locations); err != nil {
		return nil, false, err
	}
	return locations, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, locations []types.Location) error {
	data, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, redisKeyPrefix+key, data, c.ttl).Err()
}

// MemoryCache is a process-local cache, used in tests and as a fallback when
// no Redis address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]types.Location
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]types.Location)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]types.Location, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	locations, ok := c.entries[key]
	return locations, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, locations []types.Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = locations
	return nil
}
