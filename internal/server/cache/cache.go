// Package cache wraps the optional redis backend used for the token
// denylist and short-lived dashboard aggregates. A nil *Cache is valid and
// degrades to "no caching, nothing denylisted", so the server keeps working
// without redis.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denyPrefix = "denylist:"

type Cache struct {
	rdb *redis.Client
}

// New connects to redis at redisURL ("redis://host:port/db") and verifies
// the connection with a short ping.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Cache{rdb: rdb}, nil
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// Get returns the cached value for key, or nil when absent, expired, or
// caching is disabled.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	v, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set stores value under key for ttl.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes keys. Missing keys are not an error.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// DenyToken records token as revoked for ttl. Tokens with no remaining
// validity are skipped.
func (c *Cache) DenyToken(ctx context.Context, token string, ttl time.Duration) error {
	if c == nil || ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, denyPrefix+token, "1", ttl).Err()
}

// TokenDenied reports whether token has been revoked. Lookup failures count
// as not denied so an unreachable redis cannot lock everyone out.
func (c *Cache) TokenDenied(ctx context.Context, token string) bool {
	if c == nil {
		return false
	}
	n, err := c.rdb.Exists(ctx, denyPrefix+token).Result()
	if err != nil {
		return false
	}
	return n > 0
}
