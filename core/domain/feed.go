// ABOUTME: Feed domain models for parsed feed metadata and subscribed feeds
// ABOUTME: Provides validation logic to ensure feed data integrity

package domain

import (
	"errors"
	"net/url"
	"time"
)

// DefaultFeedTitle is used when a source exposes no usable title
const DefaultFeedTitle = "Unnamed Feed"

// FeedDescriptor is the metadata of a parsed feed source
type FeedDescriptor struct {
	// URL is the scheme-normalized source URL
	URL string `json:"url" yaml:"url"`

	// Title is never empty, see DefaultFeedTitle
	Title string `json:"title" yaml:"title"`

	// Description may be empty
	Description string `json:"description" yaml:"description"`

	// FetchedAt is set when the pipeline completes
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// NewFeedDescriptor builds a descriptor, defaulting an empty title
func NewFeedDescriptor(feedURL, title, description string, fetchedAt time.Time) FeedDescriptor {
	if title == "" {
		title = DefaultFeedTitle
	}

	return FeedDescriptor{
		URL:         feedURL,
		Title:       title,
		Description: description,
		FetchedAt:   fetchedAt,
	}
}

// Feed is a feed source subscribed by a user
type Feed struct {
	// ID is the unique identifier for the feed
	ID string

	// UserID owns the subscription
	UserID string

	// URL is the feed's source URL
	URL string

	// Title is the human-readable title of the feed
	Title string

	// Description provides a brief description of the feed's content
	Description string

	// Category is a user-chosen grouping label
	Category string

	LastFetched time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFeed creates a feed for a user from a parsed descriptor
func NewFeed(userID, category string, descriptor FeedDescriptor) (*Feed, error) {
	feed := &Feed{
		UserID:      userID,
		URL:         descriptor.URL,
		Title:       descriptor.Title,
		Description: descriptor.Description,
		Category:    category,
		LastFetched: descriptor.FetchedAt,
	}

	if err := feed.Validate(); err != nil {
		return nil, err
	}

	return feed, nil
}

// Validate checks if the feed has valid required fields
func (f *Feed) Validate() error {
	if f.Title == "" {
		return errors.New("feed title cannot be empty")
	}

	if f.URL == "" {
		return errors.New("feed URL cannot be empty")
	}

	u, err := url.Parse(f.URL)
	if err != nil || u.Host == "" {
		return errors.New("feed URL is not valid format")
	}

	return nil
}

// ParsedFeed is the pipeline output for one source URL
type ParsedFeed struct {
	Feed     FeedDescriptor      `json:"feed" yaml:"feed"`
	Articles []NormalizedArticle `json:"articles" yaml:"articles"`

	// Strategy names the parse strategy that produced the items
	Strategy string `json:"strategy" yaml:"strategy"`
}
