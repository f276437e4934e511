// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for feed and article persistence, always scoped to a user

package interfaces

import (
	"context"

	"feedreader-api/core/domain"
)

// FeedRepository persists subscribed feeds.
// Lookups for a missing or foreign feed return a *errors.NotFoundError.
type FeedRepository interface {
	// Create assigns an ID and timestamps and stores the feed
	Create(ctx context.Context, feed *domain.Feed) error

	// Update overwrites title, description, category and last fetched time
	Update(ctx context.Context, feed *domain.Feed) error

	// Delete removes a feed owned by userID
	Delete(ctx context.Context, userID, id string) error

	// FindByID retrieves a feed owned by userID
	FindByID(ctx context.Context, userID, id string) (*domain.Feed, error)

	// FindAll lists every feed owned by userID, oldest first
	FindAll(ctx context.Context, userID string) ([]*domain.Feed, error)
}

// ArticleRepository persists normalized articles.
// Listing methods return newest first and honor filter Limit/Offset.
type ArticleRepository interface {
	// Create assigns an ID and creation time and stores the article
	Create(ctx context.Context, article *domain.Article) error

	FindByID(ctx context.Context, userID, id string) (*domain.Article, error)
	FindByFeedID(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)
	FindFavorites(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)
	FindUnread(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)

	// Search matches filter.Query against titles, case-insensitively
	Search(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)

	SetRead(ctx context.Context, userID, id string, read bool) error
	SetFavorite(ctx context.Context, userID, id string, favorite bool) error

	// MarkAllRead marks every article of the user read, or only one feed's when feedID is set
	MarkAllRead(ctx context.Context, userID, feedID string) (int64, error)

	// Count returns the number of articles matching filter.UserID and filter.FeedID
	Count(ctx context.Context, filter domain.ArticleFilter) (int, error)

	DeleteByFeedID(ctx context.Context, userID, feedID string) error
}
