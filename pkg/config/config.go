// ABOUTME: Configuration management backed by viper with environment and YAML file support
// ABOUTME: Defines configuration for the server, fetching, pipeline, cache, storage and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Fetch configures the feed HTTP client
	Fetch FetchConfig `mapstructure:"fetch"`

	// Pipeline tunes normalization and persistence
	Pipeline PipelineConfig `mapstructure:"pipeline"`

	// Cache contains cache configuration
	Cache CacheConfig `mapstructure:"cache"`

	// Storage locates the article database
	Storage StorageConfig `mapstructure:"storage"`

	// Log configures the application logger
	Log LogConfig `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `mapstructure:"port"`

	// RateLimit is the number of requests a client may make per RateWindow
	RateLimit int `mapstructure:"rate_limit"`

	RateWindow time.Duration `mapstructure:"rate_window"`

	// CORSOrigins lists allowed origins; empty allows all
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// FetchConfig holds feed fetching configuration
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`

	// AllowInsecureTLS skips certificate verification for feed sources
	AllowInsecureTLS bool `mapstructure:"allow_insecure_tls"`

	UserAgent    string `mapstructure:"user_agent"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// PipelineConfig holds normalization and persistence settings
type PipelineConfig struct {
	// Concurrency bounds concurrent item normalization
	Concurrency int `mapstructure:"concurrency"`

	// BatchSize is the number of concurrent article creates per batch
	BatchSize int `mapstructure:"batch_size"`

	RichMedia    bool `mapstructure:"rich_media"`
	ImageAltText bool `mapstructure:"image_alt_text"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string `mapstructure:"type"`

	// TTL is the lifetime of cached previews
	TTL time.Duration `mapstructure:"ttl"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `mapstructure:"redis"`

	// SQLitePath is the cache database file for the sqlite backend
	SQLitePath string `mapstructure:"sqlite_path"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `mapstructure:"address"`

	// Password is the Redis authentication password
	Password string `mapstructure:"password"`

	// DB is the Redis database number
	DB int `mapstructure:"db"`
}

// StorageConfig holds database configuration
type StorageConfig struct {
	// Path is the SQLite database file
	Path string `mapstructure:"path"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// File enables rotated file output in addition to stdout
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

var defaults = map[string]interface{}{
	"server.port":         "8000",
	"server.rate_limit":   100,
	"server.rate_window":  time.Minute,
	"server.cors_origins": []string{},

	"fetch.timeout":            60 * time.Second,
	"fetch.allow_insecure_tls": true,
	"fetch.user_agent":         "",
	"fetch.max_body_bytes":     int64(10 << 20),

	"pipeline.concurrency":    8,
	"pipeline.batch_size":     20,
	"pipeline.rich_media":     false,
	"pipeline.image_alt_text": false,

	"cache.type":           "memory",
	"cache.ttl":            time.Hour,
	"cache.redis.address":  "localhost:6379",
	"cache.redis.password": "",
	"cache.redis.db":       0,
	"cache.sqlite_path":    "cache.db",

	"storage.path": "feedreader.db",

	"log.level":        "info",
	"log.format":       "json",
	"log.file":         "",
	"log.max_size_mb":  100,
	"log.max_backups":  3,
	"log.max_age_days": 28,
	"log.compress":     false,
}

// envNames maps config keys to their environment variables
var envNames = map[string]string{
	"server.port":         "PORT",
	"server.rate_limit":   "RATE_LIMIT",
	"server.rate_window":  "RATE_WINDOW",
	"server.cors_origins": "CORS_ORIGINS",

	"fetch.timeout":            "FETCH_TIMEOUT",
	"fetch.allow_insecure_tls": "FETCH_ALLOW_INSECURE_TLS",
	"fetch.user_agent":         "FETCH_USER_AGENT",
	"fetch.max_body_bytes":     "FETCH_MAX_BODY_BYTES",

	"pipeline.concurrency":    "PIPELINE_CONCURRENCY",
	"pipeline.batch_size":     "PIPELINE_BATCH_SIZE",
	"pipeline.rich_media":     "PIPELINE_RICH_MEDIA",
	"pipeline.image_alt_text": "PIPELINE_IMAGE_ALT_TEXT",

	"cache.type":           "CACHE_TYPE",
	"cache.ttl":            "CACHE_TTL",
	"cache.redis.address":  "REDIS_ADDRESS",
	"cache.redis.password": "REDIS_PASSWORD",
	"cache.redis.db":       "REDIS_DB",
	"cache.sqlite_path":    "CACHE_SQLITE_PATH",

	"storage.path": "DATABASE_PATH",

	"log.level":        "LOG_LEVEL",
	"log.format":       "LOG_FORMAT",
	"log.file":         "LOG_FILE",
	"log.max_size_mb":  "LOG_MAX_SIZE_MB",
	"log.max_backups":  "LOG_MAX_BACKUPS",
	"log.max_age_days": "LOG_MAX_AGE_DAYS",
	"log.compress":     "LOG_COMPRESS",
}

// LoadFromEnv loads configuration from defaults, the optional CONFIG_FILE and the environment
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

// Load reads configuration with precedence environment > file > defaults.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 || c.Server.RateWindow <= 0 {
		return errors.New("rate limit and window must be positive")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Pipeline.Concurrency < 1 || c.Pipeline.BatchSize < 1 {
		return errors.New("pipeline concurrency and batch size must be at least 1")
	}

	switch c.Cache.Type {
	case "redis", "memory", "sqlite":
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLitePath == "" {
		return errors.New("cache sqlite path cannot be empty when using sqlite cache")
	}

	if c.Storage.Path == "" {
		return errors.New("storage path cannot be empty")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
