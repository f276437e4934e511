// ABOUTME: RSS strategy for rss, bare channel, and RDF (RSS 1.0) roots
// ABOUTME: Also provides the RSS extraction and media hint lookup reused by other strategies

package parser

import (
	"context"
	stderrors "errors"
	"strings"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

const mediaNamespace = "http://search.yahoo.com/mrss/"

var (
	errNotRSS    = stderrors.New("not an RSS document")
	errNoChannel = stderrors.New("no channel element")
)

type rssStrategy struct{}

func (rssStrategy) Name() string { return StrategyRSS }

func (rssStrategy) Parse(ctx context.Context, in *Input) Result {
	payload, err := in.Payload(ctx)
	if payload == nil {
		return failure(err)
	}

	root, err := parseXML(payload.Body)
	if err != nil {
		return failure(&errors.ParseError{Strategy: StrategyRSS, Err: err})
	}

	switch root.name() {
	case "rss", "channel":
	case "RDF":
		if root.first(local("channel")) == nil {
			return failure(&errors.ParseError{Strategy: StrategyRSS, Err: errNotRSS})
		}
	default:
		return failure(&errors.ParseError{Strategy: StrategyRSS, Err: errNotRSS})
	}

	return extractRSS(StrategyRSS, root)
}

func extractRSS(strategy string, root *node) Result {
	channel := root
	if root.name() != "channel" {
		channel = root.first("descendant::" + local("channel"))
	}
	if channel == nil {
		return failure(&errors.ParseError{Strategy: strategy, Err: errNoChannel})
	}

	title := channel.text(local("title"))
	description := channel.text(local("description"))

	// RSS 1.0 puts items next to the channel, not inside it
	var items []domain.RawItem
	for _, it := range root.all("descendant-or-self::" + local("item")) {
		items = append(items, rssItem(it))
	}

	if len(items) == 0 {
		return empty(strategy, title, description)
	}
	return success(title, description, items)
}

func rssItem(it *node) domain.RawItem {
	link := firstNonEmpty(it.text(local("link")), it.attr(local("link"), "href"), permalink(it))

	item := domain.RawItem{
		Title:     it.text(local("title")),
		Link:      link,
		Published: firstNonEmpty(it.text(local("pubDate")), it.text(local("date"))),
		Author:    firstNonEmpty(it.text(local("author")), it.text(local("creator"))),
		Media:     itemMedia(it),
	}

	return item.WithContents(it.text(local("encoded")), it.text(local("description")))
}

// permalink returns a guid usable as link
func permalink(it *node) string {
	guid := it.first(local("guid"))
	if guid == nil || strings.EqualFold(guid.attrValue("isPermaLink"), "false") {
		return ""
	}
	if v := guid.innerText(); strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return ""
}

func itemMedia(it *node) *domain.MediaHint {
	if hint := mediaRSS(it); hint != nil {
		return hint
	}
	if enc := it.first(local("enclosure") + "[starts-with(@type,'image/')]"); enc != nil {
		return &domain.MediaHint{URL: enc.attrValue("url"), Type: enc.attrValue("type")}
	}
	return nil
}

// mediaRSS looks for media:content or media:thumbnail, including inside media:group
func mediaRSS(n *node) *domain.MediaHint {
	for _, m := range n.all("descendant::" + local("content", "thumbnail") + "[@url]") {
		if m.prefix() != "media" && m.namespace() != mediaNamespace && m.namespace() != "media" {
			continue
		}
		return &domain.MediaHint{
			URL:  m.attrValue("url"),
			Type: mediaType(m.name(), m.attrValue("type"), m.attrValue("medium")),
		}
	}
	return nil
}
