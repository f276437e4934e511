// ABOUTME: ArticleRepository on SQLite
// ABOUTME: Listings are newest first by publication time; search is a case-insensitive title match

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

var articleColumns = []string{
	"id", "feed_id", "user_id", "title", "content", "snippet", "link",
	"published_at", "author", "lead_image_url", "is_read", "is_favorite", "created_at",
}

// ArticleRepository implements interfaces.ArticleRepository
type ArticleRepository struct {
	store *Store
}

// Create assigns an ID and creation time and stores the article
func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}

	article.ID = uuid.NewString()
	article.CreatedAt = r.store.now()

	var leadImage sql.NullString
	if article.LeadImageURL != nil {
		leadImage = sql.NullString{String: *article.LeadImageURL, Valid: true}
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO articles (id, feed_id, user_id, title, content, snippet, link,
			published_at, author, lead_image_url, is_read, is_favorite, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		article.ID, article.FeedID, article.UserID, article.Title, article.Content, article.Snippet, article.Link,
		article.PublishedAt.UTC(), article.Author, leadImage, article.IsRead, article.IsFavorite, article.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}
	return nil
}

// FindByID retrieves one article
func (r *ArticleRepository) FindByID(ctx context.Context, userID, id string) (*domain.Article, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}

	query, params := NewQueryBuilder("articles", articleColumns...).
		Where("id", "=", id).
		Where("user_id", "=", userID).
		Build()

	article, err := scanArticle(db.QueryRowContext(ctx, query, params...))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, &errors.NotFoundError{Resource: "article", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// FindByFeedID lists one feed's articles
func (r *ArticleRepository) FindByFeedID(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return r.list(ctx, r.base(filter).Where("feed_id", "=", filter.FeedID), filter)
}

// FindFavorites lists favorited articles
func (r *ArticleRepository) FindFavorites(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return r.list(ctx, r.base(filter).Where("is_favorite", "=", true), filter)
}

// FindUnread lists unread articles, of one feed when filter.FeedID is set
func (r *ArticleRepository) FindUnread(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	qb := r.base(filter).
		Where("is_read", "=", false).
		WhereIf(filter.FeedID != "", "feed_id", "=", filter.FeedID)
	return r.list(ctx, qb, filter)
}

// Search matches filter.Query against titles
func (r *ArticleRepository) Search(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return r.list(ctx, r.base(filter).Contains("title", filter.Query), filter)
}

// SetRead sets the read state
func (r *ArticleRepository) SetRead(ctx context.Context, userID, id string, read bool) error {
	return r.setFlag(ctx, "UPDATE articles SET is_read = ? WHERE id = ? AND user_id = ?", userID, id, read)
}

// SetFavorite sets the favorite state
func (r *ArticleRepository) SetFavorite(ctx context.Context, userID, id string, favorite bool) error {
	return r.setFlag(ctx, "UPDATE articles SET is_favorite = ? WHERE id = ? AND user_id = ?", userID, id, favorite)
}

// MarkAllRead marks unread articles read and returns how many changed
func (r *ArticleRepository) MarkAllRead(ctx context.Context, userID, feedID string) (int64, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return 0, err
	}

	query := "UPDATE articles SET is_read = 1 WHERE user_id = ? AND is_read = 0"
	params := []interface{}{userID}
	if feedID != "" {
		query += " AND feed_id = ?"
		params = append(params, feedID)
	}

	res, err := db.ExecContext(ctx, query, params...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark articles read: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of articles of the user, or of one feed
func (r *ArticleRepository) Count(ctx context.Context, filter domain.ArticleFilter) (int, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return 0, err
	}

	query, params := NewCountBuilder("articles").
		Where("user_id", "=", filter.UserID).
		WhereIf(filter.FeedID != "", "feed_id", "=", filter.FeedID).
		Build()

	var n int
	if err := db.QueryRowContext(ctx, query, params...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return n, nil
}

// DeleteByFeedID removes every article of a feed
func (r *ArticleRepository) DeleteByFeedID(ctx context.Context, userID, feedID string) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM articles WHERE user_id = ? AND feed_id = ?", userID, feedID); err != nil {
		return fmt.Errorf("failed to delete articles: %w", err)
	}
	return nil
}

func (r *ArticleRepository) base(filter domain.ArticleFilter) *QueryBuilder {
	return NewQueryBuilder("articles", articleColumns...).Where("user_id", "=", filter.UserID)
}

func (r *ArticleRepository) list(ctx context.Context, qb *QueryBuilder, filter domain.ArticleFilter) ([]*domain.Article, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}

	query, params := qb.
		OrderBy("published_at", true).
		OrderBy("created_at", true).
		Page(filter.Limit, filter.Offset).
		Build()

	rows, err := db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := []*domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (r *ArticleRepository) setFlag(ctx context.Context, query, userID, id string, value bool) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, query, value, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	return expectRow(res, "article", id)
}

func scanArticle(row scanner) (*domain.Article, error) {
	var a domain.Article
	var leadImage sql.NullString

	err := row.Scan(&a.ID, &a.FeedID, &a.UserID, &a.Title, &a.Content, &a.Snippet, &a.Link,
		&a.PublishedAt, &a.Author, &leadImage, &a.IsRead, &a.IsFavorite, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	if leadImage.Valid {
		url := leadImage.String
		a.LeadImageURL = &url
	}
	return &a, nil
}
