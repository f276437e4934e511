package handlers

import (
	"context"

	"feedreader-api/core/domain"
	"feedreader-api/core/feed"
)

type mockFeedService struct {
	addFeedFunc      func(ctx context.Context, userID, rawURL, category string) (*feed.SyncResult, error)
	refreshFeedFunc  func(ctx context.Context, userID, id string) (*feed.SyncResult, error)
	updateFeedFunc   func(ctx context.Context, userID, id string, update feed.FeedUpdate) (*domain.Feed, error)
	deleteFeedFunc   func(ctx context.Context, userID, id string) error
	getFeedFunc      func(ctx context.Context, userID, id string) (*domain.Feed, error)
	listFeedsFunc    func(ctx context.Context, userID string) ([]*domain.Feed, error)
	listArticlesFunc func(ctx context.Context, userID, feedID string, page, perPage int) (*feed.ArticlePage, error)
	previewFunc      func(ctx context.Context, rawURL string) (*domain.ParsedFeed, error)
}

func (m *mockFeedService) AddFeed(ctx context.Context, userID, rawURL, category string) (*feed.SyncResult, error) {
	return m.addFeedFunc(ctx, userID, rawURL, category)
}

func (m *mockFeedService) RefreshFeed(ctx context.Context, userID, id string) (*feed.SyncResult, error) {
	return m.refreshFeedFunc(ctx, userID, id)
}

func (m *mockFeedService) UpdateFeed(ctx context.Context, userID, id string, update feed.FeedUpdate) (*domain.Feed, error) {
	return m.updateFeedFunc(ctx, userID, id, update)
}

func (m *mockFeedService) DeleteFeed(ctx context.Context, userID, id string) error {
	return m.deleteFeedFunc(ctx, userID, id)
}

func (m *mockFeedService) GetFeed(ctx context.Context, userID, id string) (*domain.Feed, error) {
	return m.getFeedFunc(ctx, userID, id)
}

func (m *mockFeedService) ListFeeds(ctx context.Context, userID string) ([]*domain.Feed, error) {
	return m.listFeedsFunc(ctx, userID)
}

func (m *mockFeedService) ListArticles(ctx context.Context, userID, feedID string, page, perPage int) (*feed.ArticlePage, error) {
	return m.listArticlesFunc(ctx, userID, feedID, page, perPage)
}

func (m *mockFeedService) Preview(ctx context.Context, rawURL string) (*domain.ParsedFeed, error) {
	return m.previewFunc(ctx, rawURL)
}

type mockArticleService struct {
	getArticleFunc   func(ctx context.Context, userID, id string) (*domain.Article, error)
	favoritesFunc    func(ctx context.Context, userID string, page, perPage int) ([]*domain.Article, error)
	unreadFunc       func(ctx context.Context, userID, feedID string, page, perPage int) ([]*domain.Article, error)
	searchFunc       func(ctx context.Context, userID, query string, page, perPage int) ([]*domain.Article, error)
	markReadFunc     func(ctx context.Context, userID, id string, read bool) (*domain.Article, error)
	markFavoriteFunc func(ctx context.Context, userID, id string, favorite bool) (*domain.Article, error)
	markAllReadFunc  func(ctx context.Context, userID, feedID string) (int64, error)
	countFunc        func(ctx context.Context, userID, feedID string) (int, error)
}

func (m *mockArticleService) GetArticle(ctx context.Context, userID, id string) (*domain.Article, error) {
	return m.getArticleFunc(ctx, userID, id)
}

func (m *mockArticleService) Favorites(ctx context.Context, userID string, page, perPage int) ([]*domain.Article, error) {
	return m.favoritesFunc(ctx, userID, page, perPage)
}

func (m *mockArticleService) Unread(ctx context.Context, userID, feedID string, page, perPage int) ([]*domain.Article, error) {
	return m.unreadFunc(ctx, userID, feedID, page, perPage)
}

func (m *mockArticleService) Search(ctx context.Context, userID, query string, page, perPage int) ([]*domain.Article, error) {
	return m.searchFunc(ctx, userID, query, page, perPage)
}

func (m *mockArticleService) MarkRead(ctx context.Context, userID, id string, read bool) (*domain.Article, error) {
	return m.markReadFunc(ctx, userID, id, read)
}

func (m *mockArticleService) MarkFavorite(ctx context.Context, userID, id string, favorite bool) (*domain.Article, error) {
	return m.markFavoriteFunc(ctx, userID, id, favorite)
}

func (m *mockArticleService) MarkAllRead(ctx context.Context, userID, feedID string) (int64, error) {
	return m.markAllReadFunc(ctx, userID, feedID)
}

func (m *mockArticleService) Count(ctx context.Context, userID, feedID string) (int, error) {
	return m.countFunc(ctx, userID, feedID)
}
