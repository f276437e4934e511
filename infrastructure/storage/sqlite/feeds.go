// ABOUTME: FeedRepository on SQLite
// ABOUTME: Feeds are always looked up by owner; a foreign ID behaves as missing

package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

var feedColumns = []string{
	"id", "user_id", "url", "title", "description", "category",
	"last_fetched", "created_at", "updated_at",
}

// FeedRepository implements interfaces.FeedRepository
type FeedRepository struct {
	store *Store
}

// Create assigns an ID and timestamps and stores the feed
func (r *FeedRepository) Create(ctx context.Context, feed *domain.Feed) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}

	now := r.store.now()
	feed.ID = uuid.NewString()
	feed.CreatedAt = now
	feed.UpdatedAt = now

	_, err = db.ExecContext(ctx, `
		INSERT INTO feeds (id, user_id, url, title, description, category, last_fetched, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		feed.ID, feed.UserID, feed.URL, feed.Title, feed.Description, feed.Category,
		feed.LastFetched.UTC(), feed.CreatedAt, feed.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feed: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of a feed
func (r *FeedRepository) Update(ctx context.Context, feed *domain.Feed) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}

	feed.UpdatedAt = r.store.now()
	res, err := db.ExecContext(ctx, `
		UPDATE feeds SET title = ?, description = ?, category = ?, last_fetched = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		feed.Title, feed.Description, feed.Category, feed.LastFetched.UTC(), feed.UpdatedAt,
		feed.ID, feed.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update feed: %w", err)
	}
	return expectRow(res, "feed", feed.ID)
}

// Delete removes a feed
func (r *FeedRepository) Delete(ctx context.Context, userID, id string) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete feed: %w", err)
	}
	return expectRow(res, "feed", id)
}

// FindByID retrieves one feed
func (r *FeedRepository) FindByID(ctx context.Context, userID, id string) (*domain.Feed, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}

	query, params := NewQueryBuilder("feeds", feedColumns...).
		Where("id", "=", id).
		Where("user_id", "=", userID).
		Build()

	feed, err := scanFeed(db.QueryRowContext(ctx, query, params...))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, &errors.NotFoundError{Resource: "feed", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}
	return feed, nil
}

// FindAll lists the user's feeds, oldest first
func (r *FeedRepository) FindAll(ctx context.Context, userID string) ([]*domain.Feed, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}

	query, params := NewQueryBuilder("feeds", feedColumns...).
		Where("user_id", "=", userID).
		OrderBy("created_at", false).
		Build()

	rows, err := db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	defer rows.Close()

	feeds := []*domain.Feed{}
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed: %w", err)
		}
		feeds = append(feeds, feed)
	}
	return feeds, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFeed(row scanner) (*domain.Feed, error) {
	var f domain.Feed
	var lastFetched sql.NullTime

	err := row.Scan(&f.ID, &f.UserID, &f.URL, &f.Title, &f.Description, &f.Category,
		&lastFetched, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if lastFetched.Valid {
		f.LastFetched = lastFetched.Time
	}
	return &f, nil
}

// expectRow turns an update that touched nothing into a NotFoundError
func expectRow(res sql.Result, resource, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &errors.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}
