// ABOUTME: Atom strategy, committed when the document root is an Atom-namespaced feed
// ABOUTME: Also provides the Atom extraction reused by the sniff strategy

package parser

import (
	"context"
	stderrors "errors"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

var errNotAtom = stderrors.New("not an Atom document")

type atomStrategy struct{}

func (atomStrategy) Name() string { return StrategyAtom }

func (atomStrategy) Parse(ctx context.Context, in *Input) Result {
	payload, err := in.Payload(ctx)
	if payload == nil {
		return failure(err)
	}

	root, err := parseXML(payload.Body)
	if err != nil {
		return failure(&errors.ParseError{Strategy: StrategyAtom, Err: err})
	}
	if root.name() != "feed" || root.namespace() != atomNamespace {
		return failure(&errors.ParseError{Strategy: StrategyAtom, Err: errNotAtom})
	}

	return extractAtom(StrategyAtom, root)
}

func extractAtom(strategy string, feed *node) Result {
	title := feed.text(local("title"))
	description := feed.text(local("subtitle"))

	var items []domain.RawItem
	for _, entry := range feed.all(local("entry")) {
		items = append(items, atomEntry(entry))
	}

	if len(items) == 0 {
		return empty(strategy, title, description)
	}
	return success(title, description, items)
}

func atomEntry(entry *node) domain.RawItem {
	link := firstNonEmpty(
		entry.attr(local("link")+"[@rel='alternate']", "href"),
		entry.attr(local("link")+"[not(@rel)]", "href"),
		entry.attr(local("link"), "href"),
	)

	item := domain.RawItem{
		Title:     entry.text(local("title")),
		Link:      link,
		Published: firstNonEmpty(entry.text(local("published")), entry.text(local("updated"))),
		Author:    entry.text(local("author") + "/" + local("name")),
		Media:     entryMedia(entry),
	}

	return item.WithContents(atomContent(entry.first(local("content"))), atomContent(entry.first(local("summary"))))
}

// atomContent keeps inline XHTML as markup, other types as their decoded text
func atomContent(n *node) string {
	if n == nil {
		return ""
	}
	if n.attrValue("type") == "xhtml" {
		return n.markup()
	}
	return n.innerText()
}

func entryMedia(entry *node) *domain.MediaHint {
	if hint := mediaRSS(entry); hint != nil {
		return hint
	}
	if enc := entry.first(local("link") + "[@rel='enclosure'][starts-with(@type,'image/')]"); enc != nil {
		return &domain.MediaHint{URL: enc.attrValue("href"), Type: enc.attrValue("type")}
	}
	return nil
}
