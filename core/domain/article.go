// ABOUTME: Article domain models, the normalized pipeline output and its persisted form
// ABOUTME: NormalizedArticle carries no feed or user identity

package domain

import "time"

// DefaultArticleTitle is used for items without a title
const DefaultArticleTitle = "Untitled"

// SnippetLength bounds the plain-text preview of an article
const SnippetLength = 400

// NormalizedArticle is a sanitized article ready to be stored
type NormalizedArticle struct {
	Title        string    `json:"title" yaml:"title"`
	Content      string    `json:"content" yaml:"content"`
	Snippet      string    `json:"snippet" yaml:"snippet"`
	Link         string    `json:"link" yaml:"link"`
	PublishedAt  time.Time `json:"published_at" yaml:"published_at"`
	Author       string    `json:"author" yaml:"author"`
	LeadImageURL *string   `json:"lead_image_url" yaml:"lead_image_url"`
	IsRead       bool      `json:"is_read" yaml:"is_read"`
	IsFavorite   bool      `json:"is_favorite" yaml:"is_favorite"`
}

// Article is a normalized article stored for a user's feed
type Article struct {
	ID     string
	FeedID string
	UserID string

	NormalizedArticle

	CreatedAt time.Time
}

// NewArticle binds a normalized article to a feed and user
func NewArticle(feedID, userID string, normalized NormalizedArticle) *Article {
	return &Article{
		FeedID:            feedID,
		UserID:            userID,
		NormalizedArticle: normalized,
	}
}

// ArticleFilter narrows article queries
type ArticleFilter struct {
	UserID string
	FeedID string
	Query  string
	Limit  int
	Offset int
}
