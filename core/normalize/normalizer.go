// ABOUTME: ContentNormalizer turns untrusted feed markup into sanitized HTML, text, snippet and lead image
// ABOUTME: Boilerplate removal runs on a goquery tree with a regex fallback; bluemonday sanitizes

package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"feedreader-api/core/domain"
	htmlutil "feedreader-api/pkg/utils/html"
)

// Options tune the normalizer
type Options struct {
	// RichMedia allows embeds, video, audio and figures through sanitization
	RichMedia bool

	// ImageAltText emits img alt text into the plain text
	ImageAltText bool
}

// Result is one normalized piece of content
type Result struct {
	HTML      string
	Text      string
	Snippet   string
	LeadImage *string
}

// Normalizer is safe for concurrent use
type Normalizer struct {
	policy *bluemonday.Policy
	opts   Options
}

// New creates a Normalizer
func New(opts Options) *Normalizer {
	return &Normalizer{
		policy: newPolicy(opts.RichMedia),
		opts:   opts,
	}
}

func newPolicy(richMedia bool) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("title", "loading", "srcset", "sizes").OnElements("img")

	if richMedia {
		p.AllowElements("figure", "figcaption", "video", "audio", "source", "track", "iframe")
		p.AllowAttrs("src").Matching(trustedEmbedSrc).OnElements("iframe")
		p.AllowAttrs("src").OnElements("video", "audio", "source", "track")
		p.AllowAttrs("width", "height").OnElements("iframe", "video")
		p.AllowAttrs("allowfullscreen", "frameborder", "title").OnElements("iframe")
		p.AllowAttrs("controls", "poster", "autoplay", "muted", "loop", "preload").OnElements("video", "audio")
		p.AllowAttrs("type").OnElements("source")
		p.AllowAttrs("kind", "srclang", "label").OnElements("track")
	}

	return p
}

// Normalize processes raw markup. media is the feed-declared image hint and
// base resolves relative image URLs; both may be empty.
func (n *Normalizer) Normalize(raw string, media *domain.MediaHint, base string) Result {
	decoded := decode(raw)

	cleaned, err := clean(decoded)
	fromTree := err == nil
	if !fromTree {
		cleaned = cleanWithRegex(decoded)
	}

	sanitized := n.policy.Sanitize(cleaned)
	if fromTree {
		if tidied, err := tidy(sanitized); err == nil {
			sanitized = tidied
		}
	}
	// escaped tags left without any real ones would be decoded on the next pass
	if htmlutil.IsEncodedMarkup(sanitized) {
		sanitized = "<p>" + strings.TrimSpace(sanitized) + "</p>"
	}

	text := plainText(cleaned, n.opts.ImageAltText)

	var lead *string
	if fromTree {
		lead = leadImage(sanitized, base)
	} else {
		lead = leadImageFromRegex(sanitized, base)
	}
	if lead == nil {
		lead = mediaImage(media, base)
	}

	return Result{
		HTML:      sanitized,
		Text:      text,
		Snippet:   Snippet(text),
		LeadImage: lead,
	}
}

// decode strips CDATA markers and, for double-encoded content, decodes the
// entities hiding the markup. Content with real tags is left to the HTML parser.
func decode(raw string) string {
	stripped := htmlutil.StripCDATA(raw)
	if htmlutil.IsEncodedMarkup(stripped) {
		return htmlutil.DecodeMarkup(stripped)
	}
	return stripped
}

// Snippet bounds text to domain.SnippetLength runes with angle brackets removed
func Snippet(text string) string {
	text = strings.NewReplacer("<", "", ">", "").Replace(text)
	if utf8.RuneCountInString(text) <= domain.SnippetLength {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(string([]rune(text)[:domain.SnippetLength]))
}
