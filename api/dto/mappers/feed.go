// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"feedreader-api/api/dto/responses"
	"feedreader-api/core/domain"
	"feedreader-api/core/feed"
)

// ToFeedResponse converts a domain Feed to a FeedResponse DTO
func ToFeedResponse(f *domain.Feed) *responses.FeedResponse {
	if f == nil {
		return nil
	}

	return &responses.FeedResponse{
		ID:          f.ID,
		URL:         f.URL,
		Title:       f.Title,
		Description: f.Description,
		Category:    f.Category,
		LastFetched: f.LastFetched,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// ToFeedResponses converts feeds, skipping nils
func ToFeedResponses(feeds []*domain.Feed) []responses.FeedResponse {
	out := make([]responses.FeedResponse, 0, len(feeds))
	for _, f := range feeds {
		if r := ToFeedResponse(f); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// ToSyncResponse converts the outcome of an add or refresh
func ToSyncResponse(result *feed.SyncResult) *responses.SyncResponse {
	if result == nil || result.Feed == nil {
		return nil
	}

	return &responses.SyncResponse{
		Feed:     *ToFeedResponse(result.Feed),
		Strategy: result.Strategy,
		Stored:   result.Stored,
		Failed:   result.Failed,
	}
}

// ToArticleResponse converts a stored article
func ToArticleResponse(a *domain.Article) *responses.ArticleResponse {
	if a == nil {
		return nil
	}

	return &responses.ArticleResponse{
		ID:           a.ID,
		FeedID:       a.FeedID,
		Title:        a.Title,
		Content:      a.Content,
		Snippet:      a.Snippet,
		Link:         a.Link,
		PublishedAt:  a.PublishedAt,
		Author:       a.Author,
		LeadImageURL: a.LeadImageURL,
		IsRead:       a.IsRead,
		IsFavorite:   a.IsFavorite,
		CreatedAt:    a.CreatedAt,
	}
}

// ToArticleResponses converts articles, skipping nils
func ToArticleResponses(articles []*domain.Article) []responses.ArticleResponse {
	out := make([]responses.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		if r := ToArticleResponse(a); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// ToArticlePageResponse converts one page of a feed's articles
func ToArticlePageResponse(page *feed.ArticlePage) *responses.ArticlePageResponse {
	if page == nil {
		return nil
	}

	return &responses.ArticlePageResponse{
		Articles: ToArticleResponses(page.Articles),
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		HasMore:  page.HasMore,
	}
}

// ToPreviewResponse converts a pipeline result
func ToPreviewResponse(parsed *domain.ParsedFeed) *responses.PreviewResponse {
	if parsed == nil {
		return nil
	}

	articles := make([]responses.PreviewArticleResponse, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		articles = append(articles, responses.PreviewArticleResponse{
			Title:        a.Title,
			Content:      a.Content,
			Snippet:      a.Snippet,
			Link:         a.Link,
			PublishedAt:  a.PublishedAt,
			Author:       a.Author,
			LeadImageURL: a.LeadImageURL,
		})
	}

	return &responses.PreviewResponse{
		URL:         parsed.Feed.URL,
		Title:       parsed.Feed.Title,
		Description: parsed.Feed.Description,
		FetchedAt:   parsed.Feed.FetchedAt,
		Strategy:    parsed.Strategy,
		Articles:    articles,
	}
}
