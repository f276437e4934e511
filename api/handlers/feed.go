// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Subscribe, refresh, edit, remove and preview feeds, and page through a feed's articles

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"feedreader-api/api/dto/mappers"
	"feedreader-api/api/dto/requests"
	"feedreader-api/api/dto/responses"
	"feedreader-api/core/domain"
	"feedreader-api/core/feed"
)

// FeedService interface defines the methods needed from the feed service
type FeedService interface {
	AddFeed(ctx context.Context, userID, rawURL, category string) (*feed.SyncResult, error)
	RefreshFeed(ctx context.Context, userID, id string) (*feed.SyncResult, error)
	UpdateFeed(ctx context.Context, userID, id string, update feed.FeedUpdate) (*domain.Feed, error)
	DeleteFeed(ctx context.Context, userID, id string) error
	GetFeed(ctx context.Context, userID, id string) (*domain.Feed, error)
	ListFeeds(ctx context.Context, userID string) ([]*domain.Feed, error)
	ListArticles(ctx context.Context, userID, feedID string, page, perPage int) (*feed.ArticlePage, error)
	Preview(ctx context.Context, rawURL string) (*domain.ParsedFeed, error)
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "addFeed",
		Method:        http.MethodPost,
		Path:          "/feeds",
		Summary:       "Subscribe to a feed",
		Description:   "Fetches and parses the URL, then stores the feed and its articles",
		Tags:          []string{"Feeds"},
		DefaultStatus: http.StatusCreated,
	}, h.AddFeed)

	huma.Register(api, huma.Operation{
		OperationID: "listFeeds",
		Method:      http.MethodGet,
		Path:        "/feeds",
		Summary:     "List subscribed feeds",
		Tags:        []string{"Feeds"},
	}, h.ListFeeds)

	huma.Register(api, huma.Operation{
		OperationID: "previewFeed",
		Method:      http.MethodGet,
		Path:        "/feeds/preview",
		Summary:     "Parse a feed without subscribing",
		Tags:        []string{"Feeds"},
	}, h.Preview)

	huma.Register(api, huma.Operation{
		OperationID: "getFeed",
		Method:      http.MethodGet,
		Path:        "/feeds/{id}",
		Summary:     "Get a subscribed feed",
		Tags:        []string{"Feeds"},
	}, h.GetFeed)

	huma.Register(api, huma.Operation{
		OperationID: "refreshFeed",
		Method:      http.MethodPatch,
		Path:        "/feeds/{id}",
		Summary:     "Refresh a feed",
		Description: "Re-runs the parser and appends the articles it finds",
		Tags:        []string{"Feeds"},
	}, h.RefreshFeed)

	huma.Register(api, huma.Operation{
		OperationID: "updateFeed",
		Method:      http.MethodPut,
		Path:        "/feeds/{id}",
		Summary:     "Rename or recategorize a feed",
		Tags:        []string{"Feeds"},
	}, h.UpdateFeed)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteFeed",
		Method:        http.MethodDelete,
		Path:          "/feeds/{id}",
		Summary:       "Unsubscribe from a feed",
		Tags:          []string{"Feeds"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteFeed)

	huma.Register(api, huma.Operation{
		OperationID: "listFeedArticles",
		Method:      http.MethodGet,
		Path:        "/feeds/{id}/articles",
		Summary:     "Page through a feed's articles, newest first",
		Tags:        []string{"Feeds", "Articles"},
	}, h.ListArticles)
}

// AddFeedInput defines the input for the AddFeed operation
type AddFeedInput struct {
	UserID string `header:"X-User-ID" doc:"Caller identity, anonymous when absent"`
	Body   requests.AddFeedRequest
}

// SyncOutput carries the result of an add or refresh
type SyncOutput struct {
	Body responses.SyncResponse
}

// AddFeed handles POST /feeds
func (h *FeedHandler) AddFeed(ctx context.Context, input *AddFeedInput) (*SyncOutput, error) {
	input.Body.Normalize()

	result, err := h.feedService.AddFeed(ctx, userOrAnonymous(input.UserID), input.Body.URL, input.Body.Category)
	if err != nil {
		return nil, toAddFeedError(err)
	}

	return &SyncOutput{Body: *mappers.ToSyncResponse(result)}, nil
}

// ListFeedsInput defines the input for the ListFeeds operation
type ListFeedsInput struct {
	UserID string `header:"X-User-ID"`
}

// ListFeedsOutput defines the output for the ListFeeds operation
type ListFeedsOutput struct {
	Body responses.FeedListResponse
}

// ListFeeds handles GET /feeds
func (h *FeedHandler) ListFeeds(ctx context.Context, input *ListFeedsInput) (*ListFeedsOutput, error) {
	feeds, err := h.feedService.ListFeeds(ctx, userOrAnonymous(input.UserID))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListFeedsOutput{Body: responses.FeedListResponse{Feeds: mappers.ToFeedResponses(feeds)}}, nil
}

// PreviewInput defines the input for the Preview operation
type PreviewInput struct {
	URL string `query:"url" required:"true" minLength:"1" doc:"Feed or page URL to parse"`
}

// PreviewOutput defines the output for the Preview operation
type PreviewOutput struct {
	Body responses.PreviewResponse
}

// Preview handles GET /feeds/preview
func (h *FeedHandler) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	parsed, err := h.feedService.Preview(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PreviewOutput{Body: *mappers.ToPreviewResponse(parsed)}, nil
}

// FeedIDInput addresses one of the caller's feeds
type FeedIDInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Feed ID"`
}

// FeedOutput carries one feed
type FeedOutput struct {
	Body responses.FeedResponse
}

// GetFeed handles GET /feeds/{id}
func (h *FeedHandler) GetFeed(ctx context.Context, input *FeedIDInput) (*FeedOutput, error) {
	f, err := h.feedService.GetFeed(ctx, userOrAnonymous(input.UserID), input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FeedOutput{Body: *mappers.ToFeedResponse(f)}, nil
}

// RefreshFeed handles PATCH /feeds/{id}
func (h *FeedHandler) RefreshFeed(ctx context.Context, input *FeedIDInput) (*SyncOutput, error) {
	result, err := h.feedService.RefreshFeed(ctx, userOrAnonymous(input.UserID), input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SyncOutput{Body: *mappers.ToSyncResponse(result)}, nil
}

// UpdateFeedInput defines the input for the UpdateFeed operation
type UpdateFeedInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Feed ID"`
	Body   requests.UpdateFeedRequest
}

// UpdateFeed handles PUT /feeds/{id}
func (h *FeedHandler) UpdateFeed(ctx context.Context, input *UpdateFeedInput) (*FeedOutput, error) {
	update := feed.FeedUpdate{Title: input.Body.Title, Category: input.Body.Category}

	f, err := h.feedService.UpdateFeed(ctx, userOrAnonymous(input.UserID), input.ID, update)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FeedOutput{Body: *mappers.ToFeedResponse(f)}, nil
}

// DeleteFeed handles DELETE /feeds/{id}
func (h *FeedHandler) DeleteFeed(ctx context.Context, input *FeedIDInput) (*struct{}, error) {
	if err := h.feedService.DeleteFeed(ctx, userOrAnonymous(input.UserID), input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

// ListArticlesInput defines the input for the ListArticles operation
type ListArticlesInput struct {
	UserID  string `header:"X-User-ID"`
	ID      string `path:"id" doc:"Feed ID"`
	Page    int    `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage int    `query:"per_page" minimum:"1" maximum:"100" default:"10" doc:"Articles per page"`
}

// ArticlePageOutput carries one page of articles
type ArticlePageOutput struct {
	Body responses.ArticlePageResponse
}

// ListArticles handles GET /feeds/{id}/articles
func (h *FeedHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ArticlePageOutput, error) {
	page, err := h.feedService.ListArticles(ctx, userOrAnonymous(input.UserID), input.ID, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ArticlePageOutput{Body: *mappers.ToArticlePageResponse(page)}, nil
}
