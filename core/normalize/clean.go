// ABOUTME: Boilerplate removal over a goquery tree, plus the regex fallback
// ABOUTME: Drops share/subscribe/comment blocks, svg, foreign iframes and empty wrappers

package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	urlutil "feedreader-api/pkg/utils/url"
)

var boilerplateSelector = strings.Join([]string{
	".social", ".share", ".sharing", ".social-share", ".share-buttons",
	`[class*="social"]`, `[class*="share"]`, `[id*="social"]`, `[id*="share"]`,
	".fb-like", ".facebook-like", `[class*="facebook"]`, `[id*="facebook"]`,
	".twitter", ".tweet", `[class*="twitter"]`, `[id*="twitter"]`,
	`[class*="linkedin"]`, `[class*="pinterest"]`, `[class*="instagram"]`,
	".newsletter", ".subscribe", ".subscription", `[class*="newsletter"]`, `[class*="subscribe"]`,
	".comments", "#comments", `[class*="comment-"]`, `[id*="comment-"]`,
	".related", ".read-more", ".more-articles", `[class*="related"]`, `[class*="more"]`,
	".ad", ".ads", ".advertisement", `[class*="ad-"]`, `[id*="ad-"]`,
	".author-bio", ".bio", `[class*="author-"]`,
	"footer", ".footer", "#footer",
}, ", ")

// removed with their content before sanitization
const forbiddenSelector = "script, style, noscript, template, form, input, button, select, textarea, svg"

var (
	embedHosts = []string{"youtube.com", "youtu.be", "vimeo.com", "player.vimeo.com", "dailymotion.com", "ted.com"}

	// trustedEmbedSrc mirrors allowedEmbed for the sanitizer, which also sees regex-cleaned markup
	trustedEmbedSrc = regexp.MustCompile(`(?i)^(https?:)?//([a-z0-9-]+\.)*(youtube\.com|youtu\.be|vimeo\.com|dailymotion\.com|ted\.com)(:\d+)?([/?#]|$)`)

	boilerplatePhrases = []string{
		"explore more", "read more", "related:", "follow us", "subscribe", "sign up for", "share this",
	}

	boilerplateParagraph = regexp.MustCompile(`(?is)<p\b[^>]*>\s*(?:share|follow|like|subscribe|read more|explore more|related:|sign up).*?</p>`)
	boilerplateDiv       = regexp.MustCompile(`(?is)<div\b[^>]*(?:social|share|comment|related|newsletter)[^>]*>.*?</div>`)
	svgElement           = regexp.MustCompile(`(?is)<svg\b.*?</svg>`)
)

// clean removes boilerplate from markup using a document tree
func clean(markup string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("build document: %v", r)
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	body := doc.Find("body")

	body.Find(forbiddenSelector).Remove()
	body.Find(boilerplateSelector).Remove()

	body.Find("iframe").Each(func(_ int, s *goquery.Selection) {
		if !allowedEmbed(s.AttrOr("src", "")) {
			s.Remove()
		}
	})

	body.Find("p").Each(func(_ int, s *goquery.Selection) {
		if isBoilerplateText(s.Text()) {
			s.Remove()
		}
	})

	removeEmpty(body)

	return body.Html()
}

// tidy drops wrappers that sanitization left empty
func tidy(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	body := doc.Find("body")
	removeEmpty(body)
	return body.Html()
}

// removeEmpty deletes p and div elements without text or media, innermost first
func removeEmpty(root *goquery.Selection) {
	nodes := root.Find("p, div")
	for i := nodes.Length() - 1; i >= 0; i-- {
		s := nodes.Eq(i)
		if strings.TrimSpace(s.Text()) != "" {
			continue
		}
		if s.Find("img, picture, iframe, video, audio").Length() > 0 {
			continue
		}
		s.Remove()
	}
}

// allowedEmbed accepts an http(s) or protocol-relative src whose host is a trusted domain or its subdomain
func allowedEmbed(src string) bool {
	return urlutil.HostWithin(strings.TrimSpace(src), embedHosts)
}

func isBoilerplateText(text string) bool {
	text = strings.ToLower(text)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// cleanWithRegex is the degraded path when no document tree can be built
func cleanWithRegex(markup string) string {
	markup = boilerplateParagraph.ReplaceAllString(markup, "")
	markup = boilerplateDiv.ReplaceAllString(markup, "")
	return svgElement.ReplaceAllString(markup, "")
}
