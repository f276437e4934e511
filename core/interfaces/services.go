// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"feedreader-api/core/domain"
)

// FeedPipeline turns a feed source URL into normalized articles.
// It only returns an error when the URL is invalid or no payload could ever be fetched.
type FeedPipeline interface {
	Run(ctx context.Context, url string) (*domain.ParsedFeed, error)
}
