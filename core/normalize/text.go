// ABOUTME: Plain-text extraction with golang.org/x/net/html
// ABOUTME: Block elements and br become line breaks; scripts, styles, svg and images are skipped

package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	htmlutil "feedreader-api/pkg/utils/html"
)

var inlineSpace = regexp.MustCompile(`[ \t\f\r\x{00a0}]+`)

var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Article: true,
	atom.Header: true, atom.Footer: true, atom.Aside: true, atom.Main: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.Blockquote: true, atom.Pre: true, atom.Hr: true,
	atom.Table: true, atom.Tr: true, atom.Figure: true, atom.Figcaption: true,
}

var skippedElements = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Noscript: true, atom.Template: true,
	atom.Svg: true, atom.Iframe: true, atom.Video: true, atom.Audio: true,
}

// plainText renders markup as text; anchors collapse to their text
func plainText(markup string, imageAlt bool) string {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return htmlutil.StripHTML(markup)
	}

	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n, imageAlt)
	}
	return collapseLines(b.String())
}

func writeText(b *strings.Builder, n *html.Node, imageAlt bool) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	switch {
	case skippedElements[n.DataAtom]:
		return
	case n.DataAtom == atom.Img:
		if imageAlt {
			if alt := attr(n, "alt"); alt != "" {
				b.WriteString(" " + alt + " ")
			}
		}
		return
	case n.DataAtom == atom.Br:
		b.WriteString("\n")
		return
	}

	block := blockElements[n.DataAtom]
	if block {
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, imageAlt)
	}
	if block {
		b.WriteString("\n")
	} else if n.DataAtom == atom.Td || n.DataAtom == atom.Th {
		b.WriteString(" ")
	}
}

// collapseLines squeezes inline whitespace and drops blank lines
func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
