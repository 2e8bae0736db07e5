// File: services/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

const (
	practitionersCacheKey = "catalog:practitioners"
	categoriesCacheKey    = "catalog:categories"
)

// Cache is the durable local tier of the store. It keeps the last known
// collections so the catalog survives remote-store outages.
type Cache interface {
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}) error
}

// RedisCache implements Cache on a Redis client.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	// Cached collections never expire; they are the offline source of truth.
	return c.client.Set(ctx, key, b, 0).Err()
}
