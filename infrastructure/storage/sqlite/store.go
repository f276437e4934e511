// ABOUTME: SQLite-backed persistence for feeds and articles
// ABOUTME: The connection is opened lazily on first use, exactly once, and the schema created then

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"feedreader-api/core/interfaces"
)

const schema = `
	CREATE TABLE IF NOT EXISTS feeds (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		last_fetched DATETIME,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feeds_user ON feeds(user_id, created_at);

	CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		feed_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		snippet TEXT NOT NULL DEFAULT '',
		link TEXT NOT NULL DEFAULT '',
		published_at DATETIME NOT NULL,
		author TEXT NOT NULL DEFAULT '',
		lead_image_url TEXT,
		is_read INTEGER NOT NULL DEFAULT 0,
		is_favorite INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_articles_feed ON articles(user_id, feed_id, published_at);
	CREATE INDEX IF NOT EXISTS idx_articles_unread ON articles(user_id, is_read);
	CREATE INDEX IF NOT EXISTS idx_articles_favorite ON articles(user_id, is_favorite);
`

// Store owns the database handle shared by the repositories
type Store struct {
	path   string
	logger interfaces.Logger
	now    func() time.Time

	once sync.Once
	db   *sql.DB
	err  error
}

// NewStore creates a store for the database file at path. Nothing is opened yet.
func NewStore(path string, logger interfaces.Logger) *Store {
	if path == "" {
		path = "feedreader.db"
	}

	return &Store{
		path:   path,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Feeds returns the feed repository
func (s *Store) Feeds() *FeedRepository {
	return &FeedRepository{store: s}
}

// Articles returns the article repository
func (s *Store) Articles() *ArticleRepository {
	return &ArticleRepository{store: s}
}

// conn opens the database and creates the schema on first call.
// A failed open is remembered and returned to every later caller.
func (s *Store) conn(ctx context.Context) (*sql.DB, error) {
	s.once.Do(func() {
		ctx := context.WithoutCancel(ctx)

		db, err := sql.Open("sqlite3", s.path+"?_busy_timeout=5000")
		if err != nil {
			s.err = fmt.Errorf("failed to open SQLite database: %w", err)
			return
		}
		// one connection serializes writers and keeps :memory: databases shared
		db.SetMaxOpenConns(1)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			s.err = fmt.Errorf("failed to connect to SQLite database: %w", err)
			return
		}

		if _, err := db.ExecContext(ctx, schema); err != nil {
			_ = db.Close()
			s.err = fmt.Errorf("failed to initialize schema: %w", err)
			return
		}

		s.db = db
		s.logger.Info("Database opened", map[string]interface{}{
			"path": s.path,
		})
	})

	return s.db, s.err
}

// Ping opens the database if needed and checks it is reachable
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Close closes the database connection if it was opened
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
