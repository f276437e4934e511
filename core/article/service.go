// ABOUTME: Article service handles reading state, favorites and search for stored articles
// ABOUTME: Every operation is scoped to the requesting user

package article

import (
	"context"
	"strings"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/feed"
	"feedreader-api/core/interfaces"
)

// ArticleService handles article operations
type ArticleService struct {
	deps interfaces.Dependencies
}

// NewArticleService creates a new article service instance
func NewArticleService(deps interfaces.Dependencies) *ArticleService {
	return &ArticleService{deps: deps}
}

// GetArticle returns one of the user's articles
func (s *ArticleService) GetArticle(ctx context.Context, userID, id string) (*domain.Article, error) {
	return s.deps.Articles.FindByID(ctx, userID, id)
}

// Favorites lists favorited articles, newest first
func (s *ArticleService) Favorites(ctx context.Context, userID string, page, perPage int) ([]*domain.Article, error) {
	return s.deps.Articles.FindFavorites(ctx, pageFilter(userID, "", "", page, perPage))
}

// Unread lists unread articles, optionally of one feed
func (s *ArticleService) Unread(ctx context.Context, userID, feedID string, page, perPage int) ([]*domain.Article, error) {
	return s.deps.Articles.FindUnread(ctx, pageFilter(userID, feedID, "", page, perPage))
}

// Search matches article titles case-insensitively
func (s *ArticleService) Search(ctx context.Context, userID, query string, page, perPage int) ([]*domain.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &errors.ValidationError{Field: "q", Message: "search query cannot be empty"}
	}
	return s.deps.Articles.Search(ctx, pageFilter(userID, "", query, page, perPage))
}

// MarkRead sets the read state and returns the updated article
func (s *ArticleService) MarkRead(ctx context.Context, userID, id string, read bool) (*domain.Article, error) {
	if err := s.deps.Articles.SetRead(ctx, userID, id, read); err != nil {
		return nil, err
	}
	return s.deps.Articles.FindByID(ctx, userID, id)
}

// MarkFavorite sets the favorite state and returns the updated article
func (s *ArticleService) MarkFavorite(ctx context.Context, userID, id string, favorite bool) (*domain.Article, error) {
	if err := s.deps.Articles.SetFavorite(ctx, userID, id, favorite); err != nil {
		return nil, err
	}
	return s.deps.Articles.FindByID(ctx, userID, id)
}

// MarkAllRead marks every article read, or only those of feedID when set
func (s *ArticleService) MarkAllRead(ctx context.Context, userID, feedID string) (int64, error) {
	if feedID != "" {
		if _, err := s.deps.Feeds.FindByID(ctx, userID, feedID); err != nil {
			return 0, err
		}
	}

	n, err := s.deps.Articles.MarkAllRead(ctx, userID, feedID)
	if err != nil {
		return 0, errors.WrapError(err, "failed to mark articles read")
	}

	s.deps.Logger.Debug("Marked articles read", map[string]interface{}{
		"user_id": userID,
		"feed_id": feedID,
		"count":   n,
	})
	return n, nil
}

// Count returns the number of stored articles, optionally of one feed
func (s *ArticleService) Count(ctx context.Context, userID, feedID string) (int, error) {
	return s.deps.Articles.Count(ctx, domain.ArticleFilter{UserID: userID, FeedID: feedID})
}

func pageFilter(userID, feedID, query string, page, perPage int) domain.ArticleFilter {
	limit, offset := feed.PageWindow(page, perPage)
	return domain.ArticleFilter{
		UserID: userID,
		FeedID: feedID,
		Query:  query,
		Limit:  limit,
		Offset: offset,
	}
}
