package cache

import (
	"context"
	"testing"
	"time"
)

// A nil *Cache means redis is not configured. Every method must be a safe
// no-op so the server can run without it.
func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	v, err := c.Get(ctx, "k")
	if v != nil || err != nil {
		t.Fatalf("Get: got %v, %v", v, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "k1", "k2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.DenyToken(ctx, "tok", time.Minute); err != nil {
		t.Fatalf("DenyToken: %v", err)
	}
	if c.TokenDenied(ctx, "tok") {
		t.Fatal("TokenDenied must report false without redis")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestDenyToken_SkipsExpiredValidity(t *testing.T) {
	// Applies to configured caches too, but the nil cache exercises the
	// ttl guard without needing redis.
	var c *Cache
	if err := c.DenyToken(context.Background(), "tok", -time.Second); err != nil {
		t.Fatalf("DenyToken: %v", err)
	}
}

func TestNew_RejectsBadURL(t *testing.T) {
	if _, err := New(context.Background(), "not-a-redis-url"); err == nil {
		t.Fatal("expected error for malformed redis URL")
	}
}
