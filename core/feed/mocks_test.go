package feed

import (
	"context"
	"sync"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/parser"
)

// mockPipeline is a mock implementation of the FeedPipeline interface
type mockPipeline struct {
	mu      sync.Mutex
	calls   int
	runFunc func(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

func (m *mockPipeline) Run(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.runFunc != nil {
		return m.runFunc(ctx, url)
	}
	return &domain.ParsedFeed{Articles: []domain.NormalizedArticle{}}, nil
}

// mockParser is a mock implementation of the Parser interface
type mockParser struct {
	runFunc func(ctx context.Context, url string) (*parser.Outcome, error)
}

func (m *mockParser) Run(ctx context.Context, url string) (*parser.Outcome, error) {
	return m.runFunc(ctx, url)
}

// mockAssembler is a mock implementation of the Assembler interface
type mockAssembler struct {
	assembleFunc func(ctx context.Context, items []domain.RawItem, baseURL string) []domain.NormalizedArticle
}

func (m *mockAssembler) Assemble(ctx context.Context, items []domain.RawItem, baseURL string) []domain.NormalizedArticle {
	return m.assembleFunc(ctx, items, baseURL)
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockFeedRepository is a mock implementation of the FeedRepository interface
type mockFeedRepository struct {
	createFunc   func(ctx context.Context, feed *domain.Feed) error
	updateFunc   func(ctx context.Context, feed *domain.Feed) error
	deleteFunc   func(ctx context.Context, userID, id string) error
	findByIDFunc func(ctx context.Context, userID, id string) (*domain.Feed, error)
	findAllFunc  func(ctx context.Context, userID string) ([]*domain.Feed, error)
}

func (m *mockFeedRepository) Create(ctx context.Context, feed *domain.Feed) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, feed)
	}
	feed.ID = "feed-1"
	return nil
}

func (m *mockFeedRepository) Update(ctx context.Context, feed *domain.Feed) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, feed)
	}
	return nil
}

func (m *mockFeedRepository) Delete(ctx context.Context, userID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockFeedRepository) FindByID(ctx context.Context, userID, id string) (*domain.Feed, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockFeedRepository) FindAll(ctx context.Context, userID string) ([]*domain.Feed, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, userID)
	}
	return nil, nil
}

// mockArticleRepository is a mock implementation of the ArticleRepository interface
type mockArticleRepository struct {
	createFunc         func(ctx context.Context, article *domain.Article) error
	findByFeedIDFunc   func(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)
	countFunc          func(ctx context.Context, filter domain.ArticleFilter) (int, error)
	deleteByFeedIDFunc func(ctx context.Context, userID, feedID string) error
}

func (m *mockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepository) FindByID(ctx context.Context, userID, id string) (*domain.Article, error) {
	return nil, nil
}

func (m *mockArticleRepository) FindByFeedID(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	if m.findByFeedIDFunc != nil {
		return m.findByFeedIDFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockArticleRepository) FindFavorites(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return nil, nil
}

func (m *mockArticleRepository) FindUnread(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return nil, nil
}

func (m *mockArticleRepository) Search(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return nil, nil
}

func (m *mockArticleRepository) SetRead(ctx context.Context, userID, id string, read bool) error {
	return nil
}

func (m *mockArticleRepository) SetFavorite(ctx context.Context, userID, id string, favorite bool) error {
	return nil
}

func (m *mockArticleRepository) MarkAllRead(ctx context.Context, userID, feedID string) (int64, error) {
	return 0, nil
}

func (m *mockArticleRepository) Count(ctx context.Context, filter domain.ArticleFilter) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockArticleRepository) DeleteByFeedID(ctx context.Context, userID, feedID string) error {
	if m.deleteByFeedIDFunc != nil {
		return m.deleteByFeedIDFunc(ctx, userID, feedID)
	}
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
