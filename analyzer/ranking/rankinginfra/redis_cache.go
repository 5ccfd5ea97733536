package rankinginfra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jmatamoros/cvmatch/analyzer/ranking"
)

// RedisResultCache implements ranking.ResultCache on Redis. Keys are
// namespaced so the cache can share a database with other state.
type RedisResultCache struct {
	client    *redis.Client
	namespace string
}

// NewRedisResultCache creates a Redis-backed result cache.
func NewRedisResultCache(client *redis.Client, namespace string) ranking.ResultCache {
	return &RedisResultCache{
		client:    client,
		namespace: namespace,
	}
}

func (c *RedisResultCache) fullKey(key string) string {
	return c.namespace + ":" + key
}

// Get returns the cached payload for key, or nil on a miss.
func (c *RedisResultCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return data, nil
}

// Set stores the payload under key with the given TTL.
func (c *RedisResultCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.fullKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
