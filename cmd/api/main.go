// ABOUTME: Main entry point for the feed reader API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedreader-api/api"
	"feedreader-api/api/handlers"
	"feedreader-api/core/article"
	"feedreader-api/core/feed"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/normalize"
	"feedreader-api/infrastructure/cache/memory"
	"feedreader-api/infrastructure/cache/redis"
	sqlitecache "feedreader-api/infrastructure/cache/sqlite"
	stdhttp "feedreader-api/infrastructure/http/standard"
	logruslogger "feedreader-api/infrastructure/logger/logrus"
	"feedreader-api/infrastructure/storage/sqlite"
	"feedreader-api/pkg/config"
	"feedreader-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(cfg.Log)
	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting feed reader API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"database":   cfg.Storage.Path,
		"flags":      flags.GetAllFlags(),
	})

	if cfg.Fetch.AllowInsecureTLS {
		logger.Warn("TLS certificate verification is disabled for feed fetching", map[string]interface{}{
			"setting": "FETCH_ALLOW_INSECURE_TLS",
		})
	}

	cache, closeCache := newCache(cfg.Cache, logger)
	defer closeCache()

	store := sqlite.NewStore(cfg.Storage.Path, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Config{
		Timeout:          cfg.Fetch.Timeout,
		UserAgent:        cfg.Fetch.UserAgent,
		AllowInsecureTLS: cfg.Fetch.AllowInsecureTLS,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Feeds:      store.Feeds(),
		Articles:   store.Articles(),
	}

	pipeline := feed.NewDefaultPipeline(httpClient, logger, feed.PipelineConfig{
		FetchTimeout: cfg.Fetch.Timeout,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		Concurrency:  cfg.Pipeline.Concurrency,
		Normalize: normalize.Options{
			RichMedia:    cfg.Pipeline.RichMedia || flags.IsEnabled(context.Background(), featureflags.RichMediaContent),
			ImageAltText: cfg.Pipeline.ImageAltText,
		},
	})

	feedService := feed.NewFeedService(deps, pipeline, feed.Options{
		BatchSize:  cfg.Pipeline.BatchSize,
		PreviewTTL: cfg.Cache.TTL,
	})
	articleService := article.NewArticleService(deps)

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:      logger,
		Flags:       flags,
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	handlers.NewFeedHandler(feedService).RegisterRoutes(humaAPI)
	handlers.NewArticleHandler(articleService).RegisterRoutes(humaAPI)

	// a subscription fetches and parses the source before responding
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Fetch.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache picks the preview cache backend, falling back to memory when
// the configured backend cannot be opened
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache, func() { _ = redisCache.Close() }
		}

		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlitecache.NewSQLiteCache(cfg.SQLitePath)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.SQLitePath,
			})
			return sqliteCache, func() { _ = sqliteCache.Close() }
		}

		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(), func() {}
}
