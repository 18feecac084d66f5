// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values in Redis. It satisfies [cache.Cache].
type Cache struct {
	client *redis.Client
}

// NewCache wraps a connected client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get decodes the value at key into dest. The boolean is false on a miss.
func (c *Cache) Get(context stdctx.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_cache_get_failed: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("redis_cache_decode_failed: %w", err)
	}
	return true, nil
}

// Set encodes value as JSON and stores it with the given TTL.
func (c *Cache) Set(context stdctx.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_cache_encode_failed: %w", err)
	}

	if err := c.client.Set(context, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}
	return nil
}

// Delete removes keys. Missing keys are not an error.
func (c *Cache) Delete(context stdctx.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis_cache_delete_failed: %w", err)
	}
	return nil
}
