// ABOUTME: Sniff strategy for XML whose root is neither a committed Atom nor RSS document
// ABOUTME: Re-dispatches on channel or feed descendants, else reads repeating item-like nodes

package parser

import (
	"context"
	"strings"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

var itemLike = []string{"item", "entry", "article"}

const xhtmlNamespace = "http://www.w3.org/1999/xhtml"

type sniffStrategy struct{}

func (sniffStrategy) Name() string { return StrategySniff }

func (sniffStrategy) Parse(ctx context.Context, in *Input) Result {
	payload, err := in.Payload(ctx)
	if payload == nil {
		return failure(err)
	}

	root, err := parseXML(payload.Body)
	if err != nil {
		return failure(&errors.ParseError{Strategy: StrategySniff, Err: err})
	}

	if root.first("descendant-or-self::"+local("channel")) != nil {
		return extractRSS(StrategySniff, root)
	}
	if feed := root.first("descendant-or-self::" + local("feed")); feed != nil {
		return extractAtom(StrategySniff, feed)
	}

	// item-like nodes of a web page are left to the html strategy
	if strings.EqualFold(root.name(), "html") || root.namespace() == xhtmlNamespace {
		return failure(&errors.ParseError{Strategy: StrategySniff, Err: errWebPage})
	}

	title := root.text(local("title"))
	description := root.text(local("description", "subtitle"))

	// outermost item-like nodes only
	expr := "descendant::" + local(itemLike...) + "[not(ancestor::" + local(itemLike...) + ")]"

	var items []domain.RawItem
	for _, n := range root.all(expr) {
		item := looseItem(n)
		if item.Title == "" && item.Link == "" && item.Content == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return empty(StrategySniff, title, description)
	}
	return success(title, description, items)
}

func looseItem(n *node) domain.RawItem {
	item := domain.RawItem{
		Title: n.text("descendant::" + local("title", "headline")),
		Link: firstNonEmpty(
			n.text("descendant::"+local("link", "url")),
			n.attr("descendant::"+local("link"), "href"),
		),
		Published: n.text("descendant::" + local("pubDate", "published", "date", "updated", "created")),
		Author:    n.text("descendant::" + local("author", "creator")),
		Media:     mediaRSS(n),
	}

	return item.WithContents(
		n.text("descendant::"+local("content", "encoded")),
		n.text("descendant::"+local("description", "summary", "body", "text")),
	)
}
