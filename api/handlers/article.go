// ABOUTME: Article handlers for the Huma API
// ABOUTME: Search, favorites, unread lists and read/favorite state changes

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"feedreader-api/api/dto/mappers"
	"feedreader-api/api/dto/responses"
	"feedreader-api/core/domain"
)

// ArticleService interface defines the methods needed from the article service
type ArticleService interface {
	GetArticle(ctx context.Context, userID, id string) (*domain.Article, error)
	Favorites(ctx context.Context, userID string, page, perPage int) ([]*domain.Article, error)
	Unread(ctx context.Context, userID, feedID string, page, perPage int) ([]*domain.Article, error)
	Search(ctx context.Context, userID, query string, page, perPage int) ([]*domain.Article, error)
	MarkRead(ctx context.Context, userID, id string, read bool) (*domain.Article, error)
	MarkFavorite(ctx context.Context, userID, id string, favorite bool) (*domain.Article, error)
	MarkAllRead(ctx context.Context, userID, feedID string) (int64, error)
	Count(ctx context.Context, userID, feedID string) (int, error)
}

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articleService ArticleService
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// RegisterRoutes registers all article-related routes
func (h *ArticleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchArticles",
		Method:      http.MethodGet,
		Path:        "/articles/search",
		Summary:     "Search article titles",
		Tags:        []string{"Articles"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/articles/favorites",
		Summary:     "List favorite articles",
		Tags:        []string{"Articles"},
	}, h.Favorites)

	huma.Register(api, huma.Operation{
		OperationID: "listUnread",
		Method:      http.MethodGet,
		Path:        "/articles/unread",
		Summary:     "List unread articles",
		Tags:        []string{"Articles"},
	}, h.Unread)

	huma.Register(api, huma.Operation{
		OperationID: "countArticles",
		Method:      http.MethodGet,
		Path:        "/articles/count",
		Summary:     "Count articles",
		Tags:        []string{"Articles"},
	}, h.Count)

	huma.Register(api, huma.Operation{
		OperationID: "markAllRead",
		Method:      http.MethodPost,
		Path:        "/articles/read-all",
		Summary:     "Mark every article read, or one feed's",
		Tags:        []string{"Articles"},
	}, h.MarkAllRead)

	huma.Register(api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/articles/{id}",
		Summary:     "Get an article",
		Tags:        []string{"Articles"},
	}, h.GetArticle)

	huma.Register(api, huma.Operation{
		OperationID: "markRead",
		Method:      http.MethodPost,
		Path:        "/articles/{id}/read",
		Summary:     "Mark an article read or unread",
		Tags:        []string{"Articles"},
	}, h.MarkRead)

	huma.Register(api, huma.Operation{
		OperationID: "markFavorite",
		Method:      http.MethodPost,
		Path:        "/articles/{id}/favorite",
		Summary:     "Favorite or unfavorite an article",
		Tags:        []string{"Articles"},
	}, h.MarkFavorite)
}

// ArticleListOutput carries a list of articles
type ArticleListOutput struct {
	Body responses.ArticleListResponse
}

func articleList(articles []*domain.Article) *ArticleListOutput {
	return &ArticleListOutput{Body: responses.ArticleListResponse{Articles: mappers.ToArticleResponses(articles)}}
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	UserID  string `header:"X-User-ID"`
	Query   string `query:"q" required:"true" doc:"Text to find in titles"`
	Page    int    `query:"page" minimum:"1" default:"1"`
	PerPage int    `query:"per_page" minimum:"1" maximum:"100" default:"10"`
}

// Search handles GET /articles/search
func (h *ArticleHandler) Search(ctx context.Context, input *SearchInput) (*ArticleListOutput, error) {
	articles, err := h.articleService.Search(ctx, userOrAnonymous(input.UserID), input.Query, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}
	return articleList(articles), nil
}

// ListInput pages through one of the article lists
type ListInput struct {
	UserID  string `header:"X-User-ID"`
	FeedID  string `query:"feed_id" doc:"Restrict to one feed"`
	Page    int    `query:"page" minimum:"1" default:"1"`
	PerPage int    `query:"per_page" minimum:"1" maximum:"100" default:"10"`
}

// Favorites handles GET /articles/favorites
func (h *ArticleHandler) Favorites(ctx context.Context, input *ListInput) (*ArticleListOutput, error) {
	articles, err := h.articleService.Favorites(ctx, userOrAnonymous(input.UserID), input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}
	return articleList(articles), nil
}

// Unread handles GET /articles/unread
func (h *ArticleHandler) Unread(ctx context.Context, input *ListInput) (*ArticleListOutput, error) {
	articles, err := h.articleService.Unread(ctx, userOrAnonymous(input.UserID), input.FeedID, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}
	return articleList(articles), nil
}

// FeedScopeInput optionally narrows an operation to one feed
type FeedScopeInput struct {
	UserID string `header:"X-User-ID"`
	FeedID string `query:"feed_id" doc:"Restrict to one feed"`
}

// CountOutput carries an article count
type CountOutput struct {
	Body responses.CountResponse
}

// Count handles GET /articles/count
func (h *ArticleHandler) Count(ctx context.Context, input *FeedScopeInput) (*CountOutput, error) {
	n, err := h.articleService.Count(ctx, userOrAnonymous(input.UserID), input.FeedID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CountOutput{Body: responses.CountResponse{Count: n}}, nil
}

// MarkAllReadOutput reports how many articles changed
type MarkAllReadOutput struct {
	Body responses.MarkAllReadResponse
}

// MarkAllRead handles POST /articles/read-all
func (h *ArticleHandler) MarkAllRead(ctx context.Context, input *FeedScopeInput) (*MarkAllReadOutput, error) {
	n, err := h.articleService.MarkAllRead(ctx, userOrAnonymous(input.UserID), input.FeedID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &MarkAllReadOutput{Body: responses.MarkAllReadResponse{Updated: n}}, nil
}

// ArticleIDInput addresses one of the caller's articles
type ArticleIDInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Article ID"`
}

// ArticleOutput carries one article
type ArticleOutput struct {
	Body responses.ArticleResponse
}

// GetArticle handles GET /articles/{id}
func (h *ArticleHandler) GetArticle(ctx context.Context, input *ArticleIDInput) (*ArticleOutput, error) {
	a, err := h.articleService.GetArticle(ctx, userOrAnonymous(input.UserID), input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ArticleOutput{Body: *mappers.ToArticleResponse(a)}, nil
}

// SetStateInput sets a boolean article state
type SetStateInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Article ID"`
	Value  bool   `query:"value" default:"true" doc:"New state"`
}

// MarkRead handles POST /articles/{id}/read
func (h *ArticleHandler) MarkRead(ctx context.Context, input *SetStateInput) (*ArticleOutput, error) {
	a, err := h.articleService.MarkRead(ctx, userOrAnonymous(input.UserID), input.ID, input.Value)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ArticleOutput{Body: *mappers.ToArticleResponse(a)}, nil
}

// MarkFavorite handles POST /articles/{id}/favorite
func (h *ArticleHandler) MarkFavorite(ctx context.Context, input *SetStateInput) (*ArticleOutput, error) {
	a, err := h.articleService.MarkFavorite(ctx, userOrAnonymous(input.UserID), input.ID, input.Value)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ArticleOutput{Body: *mappers.ToArticleResponse(a)}, nil
}
