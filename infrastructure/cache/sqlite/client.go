// ABOUTME: SQLite-based preview cache that survives application restarts
// ABOUTME: Entries carry a unix expiry; a background sweep purges expired rows until Close

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"feedreader-api/core/interfaces"
)

// DefaultCleanupInterval is how often expired entries are purged
const DefaultCleanupInterval = 5 * time.Minute

// noExpiry marks entries stored with a zero TTL
const noExpiry int64 = 0

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	now      func() time.Time

	stop      chan struct{}
	closeOnce sync.Once
	done      sync.WaitGroup
}

// NewSQLiteCache opens the cache database at filePath and starts the expiry sweep
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite cache: %w", err)
	}

	c := &Client{
		db:       db,
		filePath: filePath,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	if err := c.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	c.done.Add(1)
	go c.cleanupRoutine(DefaultCleanupInterval)

	return c, nil
}

func (c *Client) initSchema() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cache_expiry ON cache(expiry);
	`)
	return err
}

// Get retrieves a live entry or returns interfaces.ErrCacheMiss
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx,
		"SELECT value FROM cache WHERE key = ? AND (expiry = ? OR expiry > ?)",
		key, noExpiry, c.now().Unix(),
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	return value, nil
}

// Set stores value under key; a non-positive ttl never expires
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	expiry := noExpiry
	if ttl > 0 {
		expiry = c.now().Add(ttl).Unix()
	}

	if value == nil {
		value = []byte{}
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)",
		key, value, expiry,
	)
	if err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}

	return nil
}

// Delete removes a key; a missing key is not an error
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func (c *Client) cleanupRoutine(interval time.Duration) {
	defer c.done.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			_, _ = c.cleanup(context.Background())
		}
	}
}

// cleanup removes expired entries and reports how many were purged
func (c *Client) cleanup(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx,
		"DELETE FROM cache WHERE expiry != ? AND expiry <= ?",
		noExpiry, c.now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close stops the sweep and closes the database. Safe to call twice.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.stop)
		c.done.Wait()
		err = c.db.Close()
	})
	return err
}
