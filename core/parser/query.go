// ABOUTME: Minimal node-query abstraction over xmlquery used by the XML strategies
// ABOUTME: Exposes first/all/text/attr lookups so the XML library stays replaceable

package parser

import (
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
)

var (
	xmlDeclEncoding = regexp.MustCompile(`^(<\?xml[^>]*?)\s+encoding\s*=\s*["'][^"']*["']`)
	feedRoot        = regexp.MustCompile(`(?is)^(<\?xml[^>]*>\s*)?(<!--.*?-->\s*|<\?[^>]*>\s*)*<(rss|feed|rdf:rdf|channel)[\s>]`)
)

type node struct {
	n *xmlquery.Node
}

// parseXML parses body, already UTF-8, and returns its document element
func parseXML(body string) (*node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(prepareXML(body)))
	if err != nil {
		return nil, err
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return &node{n: c}, nil
		}
	}
	return nil, errNoRootElement
}

// prepareXML trims the body and drops the encoding declaration, since the
// payload has already been transcoded.
func prepareXML(body string) string {
	body = strings.TrimSpace(strings.TrimPrefix(body, "\ufeff"))
	return xmlDeclEncoding.ReplaceAllString(body, "$1")
}

// looksLikeFeedXML reports whether body is a feed document rather than a web page
func looksLikeFeedXML(body string) bool {
	return feedRoot.MatchString(strings.TrimSpace(strings.TrimPrefix(body, "\ufeff")))
}

// local builds a child-axis step matching any of names regardless of prefix
func local(names ...string) string {
	conds := make([]string, len(names))
	for i, name := range names {
		conds[i] = "local-name()='" + name + "'"
	}
	return "*[" + strings.Join(conds, " or ") + "]"
}

func (n *node) name() string {
	return n.n.Data
}

func (n *node) namespace() string {
	return n.n.NamespaceURI
}

func (n *node) prefix() string {
	return n.n.Prefix
}

func (n *node) all(expr string) []*node {
	found, err := xmlquery.QueryAll(n.n, expr)
	if err != nil {
		return nil
	}
	nodes := make([]*node, len(found))
	for i, f := range found {
		nodes[i] = &node{n: f}
	}
	return nodes
}

func (n *node) first(expr string) *node {
	found, err := xmlquery.Query(n.n, expr)
	if err != nil || found == nil {
		return nil
	}
	return &node{n: found}
}

// text returns the first non-empty trimmed text among the matches of expr
func (n *node) text(expr string) string {
	for _, m := range n.all(expr) {
		if t := m.innerText(); t != "" {
			return t
		}
	}
	return ""
}

// attr returns the first non-empty attribute value among the matches of expr
func (n *node) attr(expr, name string) string {
	for _, m := range n.all(expr) {
		if v := m.attrValue(name); v != "" {
			return v
		}
	}
	return ""
}

func (n *node) attrValue(name string) string {
	return strings.TrimSpace(n.n.SelectAttr(name))
}

func (n *node) innerText() string {
	return strings.TrimSpace(n.n.InnerText())
}

// markup returns the serialized children, used for inline XHTML content
func (n *node) markup() string {
	return strings.TrimSpace(n.n.OutputXML(false))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
