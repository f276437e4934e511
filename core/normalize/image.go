// ABOUTME: Lead image selection from sanitized markup with a fallback to the feed's media hint
// ABOUTME: Skips svg, tiny declared sizes and icon-like URLs

package normalize

import (
	neturl "net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"feedreader-api/core/domain"
	urlutil "feedreader-api/pkg/utils/url"
)

const minImageSide = 100

var (
	iconLike = []string{"icon", "logo", "avatar", "favicon"}

	imageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".avif": true,
	}

	imgSrc    = regexp.MustCompile(`(?i)<img\b[^>]*?\bsrc\s*=\s*["']([^"']+)["'][^>]*>`)
	leadDigit = regexp.MustCompile(`^\s*(\d+)`)
)

func leadImage(markup, base string) *string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return leadImageFromRegex(markup, base)
	}

	var lead *string
	doc.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := img.AttrOr("src", "")
		if !acceptableImage(src) || tooSmall(img.AttrOr("width", "")) || tooSmall(img.AttrOr("height", "")) {
			return true
		}
		if abs, ok := absoluteImage(src, base); ok {
			lead = &abs
			return false
		}
		return true
	})
	return lead
}

// leadImageFromRegex only looks at the first img tag
func leadImageFromRegex(markup, base string) *string {
	m := imgSrc.FindStringSubmatch(markup)
	if m == nil || !acceptableImage(m[1]) {
		return nil
	}
	if abs, ok := absoluteImage(m[1], base); ok {
		return &abs
	}
	return nil
}

// mediaImage uses the feed-declared hint when it is an image
func mediaImage(media *domain.MediaHint, base string) *string {
	if media == nil || media.URL == "" {
		return nil
	}
	if !media.IsImage() && !(media.Type == "" && hasImageExtension(media.URL)) {
		return nil
	}
	if !acceptableImage(media.URL) {
		return nil
	}
	if abs, ok := absoluteImage(media.URL, base); ok {
		return &abs
	}
	return nil
}

func acceptableImage(src string) bool {
	lower := strings.ToLower(strings.TrimSpace(src))
	if lower == "" || strings.Contains(lower, "data:image/svg+xml") {
		return false
	}
	if strings.HasSuffix(lower, ".svg") || strings.HasSuffix(urlPath(lower), ".svg") {
		return false
	}
	for _, word := range iconLike {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

// tooSmall reports a declared dimension under minImageSide; undeclared is fine
func tooSmall(value string) bool {
	m := leadDigit.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	return err == nil && n > 0 && n < minImageSide
}

func absoluteImage(src, base string) (string, bool) {
	resolved := urlutil.Resolve(base, src)
	u, err := neturl.Parse(resolved)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return resolved, true
}

func hasImageExtension(raw string) bool {
	return imageExtensions[strings.ToLower(path.Ext(urlPath(raw)))]
}

func urlPath(raw string) string {
	if u, err := neturl.Parse(raw); err == nil {
		return u.Path
	}
	return raw
}
