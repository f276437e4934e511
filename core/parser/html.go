// ABOUTME: HTML strategy that scrapes a web page when no feed document could be read
// ABOUTME: Article-like containers become items, otherwise one synthetic article is built

package parser

import (
	"context"
	stderrors "errors"
	neturl "net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	urlutil "feedreader-api/pkg/utils/url"
)

const containerSelector = "article, .post, .entry, .article"

var (
	mainSelectors = []string{"main", "#content", ".content"}

	errFeedDocument = stderrors.New("payload is a feed document, not a web page")
)

type htmlStrategy struct{}

func (htmlStrategy) Name() string { return StrategyHTML }

func (htmlStrategy) Parse(ctx context.Context, in *Input) Result {
	payload, err := in.Payload(ctx)
	if err != nil {
		return failure(err)
	}
	if looksLikeFeedXML(payload.Body) {
		return failure(&errors.ParseError{Strategy: StrategyHTML, Err: errFeedDocument})
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(payload.Body))
	if err != nil {
		return failure(&errors.ParseError{Strategy: StrategyHTML, Err: err})
	}

	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())
	description := strings.TrimSpace(doc.Find("meta[name='description']").First().AttrOr("content", ""))

	if items := containerItems(doc, in.URL); len(items) > 0 {
		return success(pageTitle, description, items)
	}

	item, ok := syntheticItem(doc, payload.Body, in.URL, pageTitle)
	if !ok {
		return empty(StrategyHTML, pageTitle, description)
	}
	return success(pageTitle, description, []domain.RawItem{item})
}

func containerItems(doc *goquery.Document, base string) []domain.RawItem {
	var items []domain.RawItem

	doc.Find(containerSelector).Each(func(_ int, c *goquery.Selection) {
		// nested matches belong to their outer container
		if c.ParentsFiltered(containerSelector).Length() > 0 {
			return
		}

		title := strings.TrimSpace(c.Find("h1, h2, h3, h4, h5, h6").First().Text())
		if title == "" {
			title = strings.TrimSpace(c.Find(".title").First().Text())
		}
		if title == "" && strings.TrimSpace(c.Text()) == "" {
			return
		}

		href := c.Find("a[href]").First().AttrOr("href", "")
		content, _ := c.Html()

		item := domain.RawItem{
			Title:     title,
			Link:      urlutil.Resolve(base, href),
			Published: c.Find("time[datetime]").First().AttrOr("datetime", ""),
			Author:    strings.TrimSpace(c.Find(".author, [rel='author']").First().Text()),
		}
		items = append(items, item.WithContents(content))
	})

	return items
}

// syntheticItem turns the whole page into one article linked to the input URL
func syntheticItem(doc *goquery.Document, body, pageURL, pageTitle string) (domain.RawItem, bool) {
	var content string
	for _, sel := range mainSelectors {
		if m := doc.Find(sel).First(); m.Length() > 0 && hasSubstance(m) {
			content, _ = m.Html()
			break
		}
	}

	var article readability.Article
	if content == "" || pageTitle == "" {
		if u, err := neturl.Parse(pageURL); err == nil {
			if a, err := readability.FromReader(strings.NewReader(body), u); err == nil {
				article = a
			}
		}
	}

	if content == "" && strings.TrimSpace(article.TextContent) != "" {
		content = article.Content
	}
	if content == "" {
		if b := doc.Find("body").First(); b.Length() > 0 && hasSubstance(b) {
			content, _ = b.Html()
		}
	}
	if content == "" {
		return domain.RawItem{}, false
	}

	item := domain.RawItem{
		Title:  firstNonEmpty(pageTitle, article.Title, "Content from "+urlutil.Host(pageURL)),
		Link:   pageURL,
		Author: strings.TrimSpace(article.Byline),
	}
	if article.Image != "" {
		item.Media = &domain.MediaHint{URL: urlutil.Resolve(pageURL, article.Image), Type: "image/*"}
	}

	return item.WithContents(content), true
}

func hasSubstance(s *goquery.Selection) bool {
	if s.Find("img").Length() > 0 {
		return true
	}
	return strings.TrimSpace(s.Text()) != ""
}
