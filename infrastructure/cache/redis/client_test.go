package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/config"
)

// These are integration tests against a live Redis; set REDIS_TEST_ADDRESS to run them.
func testCache(t *testing.T) *RedisCache {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST_ADDRESS to run")
	}

	cache, err := NewRedisCache(config.RedisConfig{Address: addr, DB: 15})
	if err != nil {
		t.Fatalf("NewRedisCache returned error: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})

	if err == nil {
		t.Error("NewRedisCache should fail when Redis is unreachable")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache when ping fails")
	}
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()
	key := "preview:https://example.com/feed"

	if err := cache.Set(ctx, key, []byte(`{"strategy":"rss"}`), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != `{"strategy":"rss"}` {
		t.Errorf("Get returned %s", got)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after Delete returned %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_AppliesTTL(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "short-lived", []byte("v"), 50*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(150 * time.Millisecond)

	if _, err := cache.Get(ctx, "short-lived"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired key returned %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_DeleteMissingKey(t *testing.T) {
	cache := testCache(t)

	if err := cache.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete should return nil for non-existent key, got: %v", err)
	}
}
