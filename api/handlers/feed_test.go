package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/feed"
)

func newFeedAPI(t *testing.T, svc *mockFeedService) humatest.TestAPI {
	_, api := humatest.New(t)
	NewFeedHandler(svc).RegisterRoutes(api)
	return api
}

func TestFeedHandler_RegisterRoutes(t *testing.T) {
	_, api := humatest.New(t)
	NewFeedHandler(&mockFeedService{}).RegisterRoutes(api)

	paths := api.OpenAPI().Paths
	require.NotNil(t, paths["/feeds"])
	assert.NotNil(t, paths["/feeds"].Post)
	assert.NotNil(t, paths["/feeds"].Get)
	require.NotNil(t, paths["/feeds/{id}"])
	assert.NotNil(t, paths["/feeds/{id}"].Patch)
	assert.NotNil(t, paths["/feeds/{id}"].Put)
	assert.NotNil(t, paths["/feeds/{id}"].Delete)
	assert.NotNil(t, paths["/feeds/{id}/articles"])
	assert.NotNil(t, paths["/feeds/preview"])
}

func TestFeedHandler_AddFeed(t *testing.T) {
	svc := &mockFeedService{
		addFeedFunc: func(ctx context.Context, userID, rawURL, category string) (*feed.SyncResult, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "example.com/feed", rawURL)
			assert.Equal(t, "news", category)
			return &feed.SyncResult{
				Feed:     &domain.Feed{ID: "feed-1", URL: "https://example.com/feed", Title: "Example"},
				Strategy: "rss",
				Stored:   2,
			}, nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Post("/feeds", "X-User-ID: user-1", map[string]interface{}{
		"url":      " example.com/feed ",
		"category": "news",
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "rss", body["strategy"])
	assert.Equal(t, float64(2), body["stored"])
	assert.Equal(t, "feed-1", body["feed"].(map[string]interface{})["id"])
}

func TestFeedHandler_AddFeed_DefaultsToAnonymous(t *testing.T) {
	var got string
	svc := &mockFeedService{
		addFeedFunc: func(ctx context.Context, userID, rawURL, category string) (*feed.SyncResult, error) {
			got = userID
			return &feed.SyncResult{Feed: &domain.Feed{ID: "feed-1"}}, nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Post("/feeds", map[string]interface{}{"url": "https://example.com/feed"})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, AnonymousUser, got)
}

func TestFeedHandler_AddFeed_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		inBody string
	}{
		{"unreachable source", &errors.FetchError{URL: "https://down.example", Err: stderrors.New("connection refused")}, http.StatusBadGateway, "failed to add feed"},
		{"invalid url", &errors.ValidationError{Field: "url", Message: "must be an http or https URL"}, http.StatusBadRequest, "http or https"},
		{"storage failure", stderrors.New("database is locked"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockFeedService{
				addFeedFunc: func(ctx context.Context, userID, rawURL, category string) (*feed.SyncResult, error) {
					return nil, tt.err
				},
			}
			api := newFeedAPI(t, svc)

			resp := api.Post("/feeds", map[string]interface{}{"url": "https://down.example"})
			assert.Equal(t, tt.status, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.inBody)
		})
	}
}

func TestFeedHandler_AddFeed_MissingURL(t *testing.T) {
	api := newFeedAPI(t, &mockFeedService{})

	resp := api.Post("/feeds", map[string]interface{}{"category": "news"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestFeedHandler_ListFeeds(t *testing.T) {
	svc := &mockFeedService{
		listFeedsFunc: func(ctx context.Context, userID string) ([]*domain.Feed, error) {
			return []*domain.Feed{{ID: "a"}, {ID: "b"}}, nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Get("/feeds")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Feeds []map[string]interface{} `json:"feeds"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Feeds, 2)
}

func TestFeedHandler_GetFeed_NotFound(t *testing.T) {
	svc := &mockFeedService{
		getFeedFunc: func(ctx context.Context, userID, id string) (*domain.Feed, error) {
			return nil, &errors.NotFoundError{Resource: "feed", ID: id}
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Get("/feeds/missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestFeedHandler_RefreshFeed(t *testing.T) {
	svc := &mockFeedService{
		refreshFeedFunc: func(ctx context.Context, userID, id string) (*feed.SyncResult, error) {
			assert.Equal(t, "feed-1", id)
			return &feed.SyncResult{Feed: &domain.Feed{ID: id}, Strategy: "atom", Stored: 5}, nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Patch("/feeds/feed-1")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"stored":5`)
}

func TestFeedHandler_UpdateFeed(t *testing.T) {
	svc := &mockFeedService{
		updateFeedFunc: func(ctx context.Context, userID, id string, update feed.FeedUpdate) (*domain.Feed, error) {
			require.NotNil(t, update.Title)
			assert.Nil(t, update.Category)
			return &domain.Feed{ID: id, Title: *update.Title}, nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Put("/feeds/feed-1", map[string]interface{}{"title": "Renamed"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), "Renamed")
}

func TestFeedHandler_DeleteFeed(t *testing.T) {
	var deleted string
	svc := &mockFeedService{
		deleteFeedFunc: func(ctx context.Context, userID, id string) error {
			deleted = id
			return nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Delete("/feeds/feed-1")
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "feed-1", deleted)
}

func TestFeedHandler_ListArticles(t *testing.T) {
	svc := &mockFeedService{
		listArticlesFunc: func(ctx context.Context, userID, feedID string, page, perPage int) (*feed.ArticlePage, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 10, perPage)
			return &feed.ArticlePage{
				Articles: []*domain.Article{{ID: "a1"}},
				Total:    11,
				Page:     page,
				PerPage:  perPage,
			}, nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Get("/feeds/feed-1/articles?page=2")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"total":11`)

	resp = api.Get("/feeds/feed-1/articles?per_page=500")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestFeedHandler_Preview(t *testing.T) {
	svc := &mockFeedService{
		previewFunc: func(ctx context.Context, rawURL string) (*domain.ParsedFeed, error) {
			assert.Equal(t, "https://example.com/feed", rawURL)
			return &domain.ParsedFeed{
				Feed:     domain.NewFeedDescriptor(rawURL, "Example", "", time.Now()),
				Articles: []domain.NormalizedArticle{{Title: "One", Link: "https://example.com/1"}},
				Strategy: "rss",
			}, nil
		},
	}
	api := newFeedAPI(t, svc)

	resp := api.Get("/feeds/preview?url=https://example.com/feed")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"lead_image_url":null`)

	resp = api.Get("/feeds/preview")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
