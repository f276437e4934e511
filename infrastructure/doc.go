// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-memory preview cache on patrickmn/go-cache
// - cache/redis: Redis preview cache
// - cache/sqlite: file-backed preview cache that survives restarts
// - http/standard: net/http client with TLS and user agent settings
// - logger/logrus: structured logrus logger with optional file rotation
// - storage/sqlite: feed and article repositories on SQLite
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "preview:https://example.com/feed", payload, time.Hour)
//	value, err := cache.Get(ctx, "preview:https://example.com/feed")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
//	cache, err := sqlite.NewSQLiteCache("cache.db")
//
// # Storage
//
// The store opens its database on first use:
//
//	store := sqlite.NewStore("feedreader.db", logger)
//	defer store.Close()
//	feeds, articles := store.Feeds(), store.Articles()
//
// # Logger
//
//	logger := logrus.New(config.LogConfig{Level: "info", Format: "json"})
//	logger.Info("Feed added", map[string]interface{}{
//	    "user_id": "123",
//	    "url":     "https://example.com/feed.rss",
//	})
package infrastructure
