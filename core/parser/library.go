// ABOUTME: Strategies backed by gofeed, first over its own networking, then over our payload
// ABOUTME: Converts gofeed items into RawItems with content candidates and media hints

package parser

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

// DefaultFetchTimeout bounds gofeed's own request when no timeout is configured
const DefaultFetchTimeout = 60 * time.Second

type libraryURLStrategy struct {
	client *http.Client
}

// NewLibraryURLStrategy lets gofeed fetch and parse the URL itself, giving up after timeout
func NewLibraryURLStrategy(timeout time.Duration) Strategy {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return libraryURLStrategy{client: &http.Client{Timeout: timeout}}
}

func (libraryURLStrategy) Name() string { return StrategyLibraryURL }

// Parse builds a parser per call; gofeed parsers keep per-parse state.
func (s libraryURLStrategy) Parse(ctx context.Context, in *Input) Result {
	fp := gofeed.NewParser()
	fp.Client = s.client

	ctx, cancel := context.WithTimeout(ctx, s.client.Timeout)
	defer cancel()

	feed, err := fp.ParseURLWithContext(in.URL, ctx)
	if err != nil {
		return failure(&errors.ParseError{Strategy: StrategyLibraryURL, Err: err})
	}
	return fromGofeed(StrategyLibraryURL, feed)
}

type libraryPayloadStrategy struct{}

// NewLibraryPayloadStrategy parses the browser-like fetched payload with gofeed
func NewLibraryPayloadStrategy() Strategy {
	return libraryPayloadStrategy{}
}

func (libraryPayloadStrategy) Name() string { return StrategyLibraryPayload }

func (s libraryPayloadStrategy) Parse(ctx context.Context, in *Input) Result {
	payload, err := in.Payload(ctx)
	if err != nil {
		return failure(err)
	}

	feed, err := gofeed.NewParser().ParseString(prepareXML(payload.Body))
	if err != nil {
		return failure(&errors.ParseError{Strategy: StrategyLibraryPayload, Err: err})
	}
	return fromGofeed(StrategyLibraryPayload, feed)
}

func fromGofeed(strategy string, feed *gofeed.Feed) Result {
	title := strings.TrimSpace(feed.Title)
	description := strings.TrimSpace(feed.Description)

	items := make([]domain.RawItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		items = append(items, gofeedItem(it))
	}

	if len(items) == 0 {
		return empty(strategy, title, description)
	}
	return success(title, description, items)
}

func gofeedItem(it *gofeed.Item) domain.RawItem {
	item := domain.RawItem{
		Title:     strings.TrimSpace(it.Title),
		Link:      strings.TrimSpace(it.Link),
		Published: firstNonEmpty(it.Published, it.Updated),
		Author:    gofeedAuthor(it),
		Media:     gofeedMedia(it),
	}

	switch {
	case it.PublishedParsed != nil:
		item.PublishedAt = it.PublishedParsed
	case it.UpdatedParsed != nil:
		item.PublishedAt = it.UpdatedParsed
	}

	if item.Link == "" && len(it.Links) > 0 {
		item.Link = strings.TrimSpace(it.Links[0])
	}

	return item.WithContents(it.Content, it.Description)
}

func gofeedAuthor(it *gofeed.Item) string {
	for _, a := range it.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			return strings.TrimSpace(a.Name)
		}
	}
	if it.DublinCoreExt != nil {
		for _, c := range it.DublinCoreExt.Creator {
			if strings.TrimSpace(c) != "" {
				return strings.TrimSpace(c)
			}
		}
	}
	return ""
}

func gofeedMedia(it *gofeed.Item) *domain.MediaHint {
	if media, ok := it.Extensions["media"]; ok {
		for _, key := range []string{"content", "thumbnail"} {
			for _, ext := range media[key] {
				if u := ext.Attrs["url"]; u != "" {
					return &domain.MediaHint{URL: u, Type: mediaType(key, ext.Attrs["type"], ext.Attrs["medium"])}
				}
			}
		}
		for _, group := range media["group"] {
			for _, ext := range group.Children["content"] {
				if u := ext.Attrs["url"]; u != "" {
					return &domain.MediaHint{URL: u, Type: mediaType("content", ext.Attrs["type"], ext.Attrs["medium"])}
				}
			}
		}
	}

	for _, enc := range it.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(strings.ToLower(enc.Type), "image/") {
			return &domain.MediaHint{URL: enc.URL, Type: enc.Type}
		}
	}

	if it.Image != nil && it.Image.URL != "" {
		return &domain.MediaHint{URL: it.Image.URL, Type: "image/*"}
	}
	return nil
}

// mediaType derives a MIME type for a media RSS element; thumbnails are always images
func mediaType(element, declared, medium string) string {
	switch {
	case declared != "":
		return declared
	case element == "thumbnail" || medium == "image":
		return "image/*"
	default:
		return ""
	}
}
