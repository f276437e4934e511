// ABOUTME: Feed service implements the subscription workflow on top of the feed pipeline
// ABOUTME: Adds, refreshes, edits and removes feeds and persists their articles in batches

package feed

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/featureflags"
	urlutil "feedreader-api/pkg/utils/url"
)

const (
	// DefaultBatchSize is the number of concurrent article creates per batch
	DefaultBatchSize = 20

	// DefaultPreviewTTL is how long a cached preview is served
	DefaultPreviewTTL = time.Hour
)

// Options tune FeedService
type Options struct {
	BatchSize  int
	PreviewTTL time.Duration
}

// FeedService handles feed subscriptions for users
type FeedService struct {
	deps       interfaces.Dependencies
	pipeline   interfaces.FeedPipeline
	batchSize  int
	previewTTL time.Duration
}

// SyncResult reports a pipeline run persisted for a feed
type SyncResult struct {
	Feed     *domain.Feed
	Strategy string
	Stored   int
	Failed   int
}

// FeedUpdate carries the user-editable fields; nil leaves a field unchanged
type FeedUpdate struct {
	Title    *string
	Category *string
}

// ArticlePage is one page of a feed's articles, newest first
type ArticlePage struct {
	Articles []*domain.Article
	Total    int
	Page     int
	PerPage  int
	HasMore  bool
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, pipeline interfaces.FeedPipeline, opts Options) *FeedService {
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.PreviewTTL <= 0 {
		opts.PreviewTTL = DefaultPreviewTTL
	}

	return &FeedService{
		deps:       deps,
		pipeline:   pipeline,
		batchSize:  opts.BatchSize,
		previewTTL: opts.PreviewTTL,
	}
}

// AddFeed parses rawURL and subscribes userID to it with all current articles
func (s *FeedService) AddFeed(ctx context.Context, userID, rawURL, category string) (*SyncResult, error) {
	parsed, err := s.pipeline.Run(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	feed, err := domain.NewFeed(userID, strings.TrimSpace(category), parsed.Feed)
	if err != nil {
		return nil, &errors.ValidationError{Field: "url", Message: err.Error()}
	}

	if err := s.deps.Feeds.Create(ctx, feed); err != nil {
		return nil, errors.WrapError(err, "failed to create feed")
	}

	stored, failed := s.saveArticles(ctx, feed, parsed.Articles)

	s.deps.Logger.Info("Feed added", map[string]interface{}{
		"feed_id":  feed.ID,
		"url":      feed.URL,
		"strategy": parsed.Strategy,
		"stored":   stored,
		"failed":   failed,
	})

	return &SyncResult{Feed: feed, Strategy: parsed.Strategy, Stored: stored, Failed: failed}, nil
}

// RefreshFeed re-runs the pipeline for a feed and appends the articles it yields
func (s *FeedService) RefreshFeed(ctx context.Context, userID, id string) (*SyncResult, error) {
	feed, err := s.deps.Feeds.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	parsed, err := s.pipeline.Run(ctx, feed.URL)
	if err != nil {
		return nil, err
	}

	stored, failed := s.saveArticles(ctx, feed, parsed.Articles)

	feed.LastFetched = parsed.Feed.FetchedAt
	if err := s.deps.Feeds.Update(ctx, feed); err != nil {
		return nil, errors.WrapError(err, "failed to update feed")
	}

	s.deps.Logger.Info("Feed refreshed", map[string]interface{}{
		"feed_id":  feed.ID,
		"strategy": parsed.Strategy,
		"stored":   stored,
		"failed":   failed,
	})

	return &SyncResult{Feed: feed, Strategy: parsed.Strategy, Stored: stored, Failed: failed}, nil
}

// UpdateFeed changes a feed's title or category
func (s *FeedService) UpdateFeed(ctx context.Context, userID, id string, update FeedUpdate) (*domain.Feed, error) {
	feed, err := s.deps.Feeds.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, &errors.ValidationError{Field: "title", Message: "title cannot be empty"}
		}
		feed.Title = title
	}
	if update.Category != nil {
		feed.Category = strings.TrimSpace(*update.Category)
	}

	if err := s.deps.Feeds.Update(ctx, feed); err != nil {
		return nil, errors.WrapError(err, "failed to update feed")
	}

	return feed, nil
}

// DeleteFeed removes a feed and its articles
func (s *FeedService) DeleteFeed(ctx context.Context, userID, id string) error {
	if _, err := s.deps.Feeds.FindByID(ctx, userID, id); err != nil {
		return err
	}

	if err := s.deps.Articles.DeleteByFeedID(ctx, userID, id); err != nil {
		return errors.WrapError(err, "failed to delete feed articles")
	}

	return s.deps.Feeds.Delete(ctx, userID, id)
}

// GetFeed returns one of the user's feeds
func (s *FeedService) GetFeed(ctx context.Context, userID, id string) (*domain.Feed, error) {
	return s.deps.Feeds.FindByID(ctx, userID, id)
}

// ListFeeds returns every feed of the user
func (s *FeedService) ListFeeds(ctx context.Context, userID string) ([]*domain.Feed, error) {
	return s.deps.Feeds.FindAll(ctx, userID)
}

// ListArticles returns a page of a feed's articles
func (s *FeedService) ListArticles(ctx context.Context, userID, feedID string, page, perPage int) (*ArticlePage, error) {
	if _, err := s.deps.Feeds.FindByID(ctx, userID, feedID); err != nil {
		return nil, err
	}

	page, perPage = NormalizePage(page, perPage)
	limit, offset := PageWindow(page, perPage)

	filter := domain.ArticleFilter{UserID: userID, FeedID: feedID, Limit: limit, Offset: offset}
	articles, err := s.deps.Articles.FindByFeedID(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.deps.Articles.Count(ctx, domain.ArticleFilter{UserID: userID, FeedID: feedID})
	if err != nil {
		return nil, err
	}

	return &ArticlePage{
		Articles: articles,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		HasMore:  HasMore(total, page, perPage),
	}, nil
}

// Preview runs the pipeline without persisting anything. Results are cached
// when the preview_cache flag is on and a cache is configured.
func (s *FeedService) Preview(ctx context.Context, rawURL string) (*domain.ParsedFeed, error) {
	feedURL, err := urlutil.Normalize(rawURL)
	if err != nil {
		return nil, &errors.ValidationError{Field: "url", Message: "must be an http or https URL"}
	}

	useCache := s.deps.Cache != nil && featureflags.IsEnabled(ctx, featureflags.PreviewCache)
	if useCache {
		if cached, err := s.getCachedPreview(ctx, feedURL); err == nil {
			return cached, nil
		} else if !stderrors.Is(err, interfaces.ErrCacheMiss) {
			s.deps.Logger.Warn("Preview cache read failed", map[string]interface{}{
				"url":   feedURL,
				"error": err.Error(),
			})
		}
	}

	parsed, err := s.pipeline.Run(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	if useCache {
		// Cache errors never fail a preview
		if err := s.cachePreview(ctx, feedURL, parsed); err != nil {
			s.deps.Logger.Warn("Preview cache write failed", map[string]interface{}{
				"url":   feedURL,
				"error": err.Error(),
			})
		}
	}

	return parsed, nil
}

// saveArticles creates articles in batches of concurrent creates. A failed
// create is logged and counted and never stops its siblings.
func (s *FeedService) saveArticles(ctx context.Context, feed *domain.Feed, articles []domain.NormalizedArticle) (stored, failed int) {
	var failures int64

	for start := 0; start < len(articles); start += s.batchSize {
		end := start + s.batchSize
		if end > len(articles) {
			end = len(articles)
		}

		var g errgroup.Group
		for _, normalized := range articles[start:end] {
			article := domain.NewArticle(feed.ID, feed.UserID, normalized)
			g.Go(func() error {
				if err := s.deps.Articles.Create(ctx, article); err != nil {
					atomic.AddInt64(&failures, 1)
					s.deps.Logger.Warn("Failed to store article", map[string]interface{}{
						"feed_id": feed.ID,
						"link":    article.Link,
						"error":   err.Error(),
					})
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	failed = int(atomic.LoadInt64(&failures))
	return len(articles) - failed, failed
}

func previewKey(feedURL string) string {
	return "preview:" + feedURL
}

// getCachedPreview retrieves a preview from cache
func (s *FeedService) getCachedPreview(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	data, err := s.deps.Cache.Get(ctx, previewKey(feedURL))
	if err != nil {
		return nil, err
	}

	var parsed domain.ParsedFeed
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}

// cachePreview stores a preview in cache
func (s *FeedService) cachePreview(ctx context.Context, feedURL string, parsed *domain.ParsedFeed) error {
	data, err := json.Marshal(parsed)
	if err != nil {
		return err
	}

	return s.deps.Cache.Set(ctx, previewKey(feedURL), data, s.previewTTL)
}
