// Package core contains the business logic of the feed reader.
// It is framework-agnostic: HTTP, storage and caching are reached only
// through the contracts in core/interfaces.
//
// The core package is organized into several sub-packages:
//
// - domain: Feed, Article and the pipeline's intermediate RawItem
// - parser: fetching and the ordered chain of parse strategies
// - normalize: HTML sanitization, snippets and lead image selection
// - assembler: concurrent normalization of raw items into articles
// - feed: the fetch-parse-normalize pipeline and feed subscriptions
// - article: read, favorite, search and listing workflows
// - errors: fetch, parse and lookup error taxonomy
// - interfaces: contracts for cache, HTTP, logging and storage
//
// # Usage Example
//
//	import (
//	    "feedreader-api/core/feed"
//	    "feedreader-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Feeds:      myFeeds,      // implements interfaces.FeedRepository
//	    Articles:   myArticles,   // implements interfaces.ArticleRepository
//	}
//
//	pipeline := feed.NewDefaultPipeline(myHTTPClient, myLogger, feed.PipelineConfig{})
//	feedService := feed.NewFeedService(deps, pipeline, feed.Options{})
//
//	result, err := feedService.AddFeed(ctx, "user-1", "https://example.com/feed.rss", "news")
package core
