// ABOUTME: ArticleAssembler maps raw parsed items onto normalized articles
// ABOUTME: Items are normalized concurrently; a failure in one item never drops it

package assembler

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"feedreader-api/core/domain"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/normalize"
	htmlutil "feedreader-api/pkg/utils/html"
	timeutil "feedreader-api/pkg/utils/time"
	urlutil "feedreader-api/pkg/utils/url"
)

// DefaultConcurrency bounds concurrent item normalization
const DefaultConcurrency = 8

// ContentNormalizer is satisfied by *normalize.Normalizer
type ContentNormalizer interface {
	Normalize(raw string, media *domain.MediaHint, base string) normalize.Result
}

// Assembler builds NormalizedArticles from RawItems
type Assembler struct {
	normalizer  ContentNormalizer
	logger      interfaces.Logger
	concurrency int
	now         func() time.Time
}

// New creates an Assembler. A concurrency below one uses DefaultConcurrency.
func New(normalizer ContentNormalizer, logger interfaces.Logger, concurrency int) *Assembler {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	return &Assembler{
		normalizer:  normalizer,
		logger:      logger,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Assemble returns exactly one article per item, in item order. baseURL is
// the feed URL used for relative links and as the default article link.
func (a *Assembler) Assemble(ctx context.Context, items []domain.RawItem, baseURL string) []domain.NormalizedArticle {
	articles := make([]domain.NormalizedArticle, len(items))
	if len(items) == 0 {
		return articles
	}

	normalizedAt := a.now()

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i := range items {
		i := i
		g.Go(func() error {
			articles[i] = a.assembleOne(items[i], baseURL, normalizedAt)
			return nil
		})
	}
	_ = g.Wait()

	return articles
}

func (a *Assembler) assembleOne(item domain.RawItem, baseURL string, normalizedAt time.Time) (article domain.NormalizedArticle) {
	link := articleLink(item.Link, baseURL)

	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("Article normalization failed", map[string]interface{}{
				"title": item.Title,
				"link":  link,
				"error": fmt.Sprint(r),
			})
			article = fallbackArticle(item, link, normalizedAt)
		}
	}()

	res := a.normalizer.Normalize(item.Content, item.Media, link)

	return domain.NormalizedArticle{
		Title:        articleTitle(item.Title),
		Content:      res.HTML,
		Snippet:      res.Snippet,
		Link:         link,
		PublishedAt:  publishedAt(item, normalizedAt),
		Author:       strings.TrimSpace(item.Author),
		LeadImageURL: res.LeadImage,
	}
}

// fallbackArticle keeps the item's metadata with its content as escaped text
func fallbackArticle(item domain.RawItem, link string, normalizedAt time.Time) domain.NormalizedArticle {
	text := htmlutil.StripHTML(item.Content)

	content := ""
	if text != "" {
		content = "<p>" + html.EscapeString(text) + "</p>"
	}

	return domain.NormalizedArticle{
		Title:       articleTitle(item.Title),
		Content:     content,
		Snippet:     normalize.Snippet(text),
		Link:        link,
		PublishedAt: publishedAt(item, normalizedAt),
		Author:      strings.TrimSpace(item.Author),
	}
}

func articleTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if strings.Contains(title, "<") {
		title = htmlutil.StripHTML(title)
	}
	if title == "" {
		return domain.DefaultArticleTitle
	}
	return title
}

// articleLink resolves raw against the feed URL; anything but an http(s) link becomes the feed URL
func articleLink(raw, baseURL string) string {
	if link := urlutil.Resolve(baseURL, raw); urlutil.IsWeb(link) {
		return link
	}
	return baseURL
}

// publishedAt prefers the parser's instant, then the raw string, then normalizedAt
func publishedAt(item domain.RawItem, normalizedAt time.Time) time.Time {
	if item.PublishedAt != nil && !item.PublishedAt.IsZero() {
		return *item.PublishedAt
	}
	return timeutil.ParseWithDefault(item.Published, normalizedAt)
}
