// ABOUTME: Response DTOs for feed and article endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// FeedResponse represents a subscribed feed
type FeedResponse struct {
	ID          string    `json:"id" doc:"Unique identifier for the feed"`
	URL         string    `json:"url" doc:"Feed URL"`
	Title       string    `json:"title" doc:"Feed title"`
	Description string    `json:"description" doc:"Feed description"`
	Category    string    `json:"category" doc:"Grouping label"`
	LastFetched time.Time `json:"last_fetched" doc:"When the feed was last fetched"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeedListResponse lists the caller's feeds
type FeedListResponse struct {
	Feeds []FeedResponse `json:"feeds"`
}

// SyncResponse reports a feed add or refresh
type SyncResponse struct {
	Feed     FeedResponse `json:"feed"`
	Strategy string       `json:"strategy" doc:"Parse strategy that produced the articles"`
	Stored   int          `json:"stored" doc:"Articles saved"`
	Failed   int          `json:"failed" doc:"Articles that could not be saved"`
}

// ArticleResponse represents a stored article
type ArticleResponse struct {
	ID           string    `json:"id"`
	FeedID       string    `json:"feed_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content" doc:"Sanitized HTML"`
	Snippet      string    `json:"snippet" doc:"Plain-text preview"`
	Link         string    `json:"link"`
	PublishedAt  time.Time `json:"published_at"`
	Author       string    `json:"author,omitempty"`
	LeadImageURL *string   `json:"lead_image_url" doc:"Representative image, null when none"`
	IsRead       bool      `json:"is_read"`
	IsFavorite   bool      `json:"is_favorite"`
	CreatedAt    time.Time `json:"created_at"`
}

// ArticleListResponse is an unpaginated-total article listing
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

// ArticlePageResponse is one page of a feed's articles
type ArticlePageResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
	HasMore  bool              `json:"has_more"`
}

// MarkAllReadResponse reports how many articles changed
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// PreviewArticleResponse is a parsed article that was not stored
type PreviewArticleResponse struct {
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Snippet      string    `json:"snippet"`
	Link         string    `json:"link"`
	PublishedAt  time.Time `json:"published_at"`
	Author       string    `json:"author,omitempty"`
	LeadImageURL *string   `json:"lead_image_url"`
}

// PreviewResponse is a parsed feed that was not stored
type PreviewResponse struct {
	URL         string                   `json:"url"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	FetchedAt   time.Time                `json:"fetched_at"`
	Strategy    string                   `json:"strategy"`
	Articles    []PreviewArticleResponse `json:"articles"`
}

// CountResponse is an article count
type CountResponse struct {
	Count int `json:"count"`
}
