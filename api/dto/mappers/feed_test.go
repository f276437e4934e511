package mappers

import (
	"testing"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/feed"
)

func TestToFeedResponse(t *testing.T) {
	now := time.Now()
	f := &domain.Feed{
		ID:          "feed-123",
		UserID:      "user-1",
		URL:         "https://example.com/feed.xml",
		Title:       "Test Feed",
		Description: "Test Description",
		Category:    "news",
		LastFetched: now,
		CreatedAt:   now.Add(-time.Hour),
		UpdatedAt:   now,
	}

	response := ToFeedResponse(f)

	if response.ID != f.ID || response.URL != f.URL || response.Title != f.Title {
		t.Errorf("unexpected identity fields: %+v", response)
	}
	if response.Category != "news" {
		t.Errorf("Category = %s, want news", response.Category)
	}
	if !response.LastFetched.Equal(now) {
		t.Errorf("LastFetched = %v, want %v", response.LastFetched, now)
	}
}

func TestToFeedResponse_NilFeed(t *testing.T) {
	if ToFeedResponse(nil) != nil {
		t.Error("ToFeedResponse should return nil for nil feed")
	}
}

func TestToFeedResponses_SkipsNil(t *testing.T) {
	got := ToFeedResponses([]*domain.Feed{{ID: "a"}, nil, {ID: "b"}})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	empty := ToFeedResponses(nil)
	if empty == nil || len(empty) != 0 {
		t.Error("ToFeedResponses(nil) should return an empty, non-nil slice")
	}
}

func TestToArticleResponse(t *testing.T) {
	image := "https://example.com/a.jpg"
	a := domain.NewArticle("feed-1", "user-1", domain.NormalizedArticle{
		Title:        "Hello",
		Content:      "<p>Hello</p>",
		Snippet:      "Hello",
		Link:         "https://example.com/hello",
		LeadImageURL: &image,
		IsFavorite:   true,
	})
	a.ID = "article-1"

	r := ToArticleResponse(a)
	if r.ID != "article-1" || r.FeedID != "feed-1" {
		t.Errorf("unexpected ids: %+v", r)
	}
	if r.LeadImageURL == nil || *r.LeadImageURL != image {
		t.Errorf("LeadImageURL = %v, want %s", r.LeadImageURL, image)
	}
	if !r.IsFavorite || r.IsRead {
		t.Errorf("unexpected flags: read=%v favorite=%v", r.IsRead, r.IsFavorite)
	}
}

func TestToSyncResponse(t *testing.T) {
	if ToSyncResponse(nil) != nil || ToSyncResponse(&feed.SyncResult{}) != nil {
		t.Error("ToSyncResponse should return nil without a feed")
	}

	r := ToSyncResponse(&feed.SyncResult{Feed: &domain.Feed{ID: "f"}, Strategy: "rss", Stored: 3, Failed: 1})
	if r.Feed.ID != "f" || r.Strategy != "rss" || r.Stored != 3 || r.Failed != 1 {
		t.Errorf("unexpected response: %+v", r)
	}
}

func TestToArticlePageResponse(t *testing.T) {
	page := &feed.ArticlePage{
		Articles: []*domain.Article{{ID: "a"}},
		Total:    11,
		Page:     1,
		PerPage:  10,
		HasMore:  true,
	}

	r := ToArticlePageResponse(page)
	if len(r.Articles) != 1 || r.Total != 11 || !r.HasMore {
		t.Errorf("unexpected page: %+v", r)
	}
}

func TestToPreviewResponse(t *testing.T) {
	parsed := &domain.ParsedFeed{
		Feed:     domain.NewFeedDescriptor("https://example.com/feed", "", "", time.Now()),
		Articles: []domain.NormalizedArticle{{Title: "One"}, {Title: "Two"}},
		Strategy: "atom",
	}

	r := ToPreviewResponse(parsed)
	if r.Title != domain.DefaultFeedTitle {
		t.Errorf("Title = %s, want %s", r.Title, domain.DefaultFeedTitle)
	}
	if len(r.Articles) != 2 || r.Articles[1].Title != "Two" {
		t.Errorf("unexpected articles: %+v", r.Articles)
	}
	if r.Strategy != "atom" {
		t.Errorf("Strategy = %s, want atom", r.Strategy)
	}
}
