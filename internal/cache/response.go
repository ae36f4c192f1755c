// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Redis-backed cache for serialized JSON responses.
// Public content changes only through the out-of-scope admin, so read
// endpoints can serve cached bodies for a short TTL and skip the database.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Redis key prefix for cached responses.
	responseKeyPrefix = "resp:"

	// DefaultResponseTTL is how long a cached response stays valid.
	DefaultResponseTTL = 5 * time.Minute
)

// ResponseCache stores serialized JSON bodies in Redis. A nil *ResponseCache
// is valid and acts as a cache that always misses, so callers need no
// configuration checks.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Redis client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Key builds the cache key for a request. The origin participates because
// cached bodies embed absolute media URLs.
func Key(origin, path, query string) string {
	if query != "" {
		return origin + path + "?" + query
	}
	return origin + path
}

// Get retrieves a cached response body. Returns false on miss or when the
// cache is disabled.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc == nil || rc.client == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores a response body with the configured TTL. A no-op when the
// cache is disabled.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if rc == nil || rc.client == nil {
		return
	}
	if err := rc.client.Set(ctx, responseKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}
