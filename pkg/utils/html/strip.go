// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Used by the normalizer for markup decoding and by fallbacks that cannot build a DOM

package html

import (
	"regexp"
	"strings"
)

var (
	scriptBlock = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleBlock  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	anyTag      = regexp.MustCompile(`(?s)<[^>]*>`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// markupEntities are the entities feeds use to double-encode their markup.
// A single-pass replacer keeps "&amp;lt;" as the literal text "&lt;".
var markupEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&apos;", "'",
	"&#39;", "'",
	"&amp;", "&",
)

var cdataMarkers = strings.NewReplacer("<![CDATA[", "", "]]>", "")

// StripHTML removes HTML tags and decodes common entities from a string
func StripHTML(html string) string {
	text := scriptBlock.ReplaceAllString(html, " ")
	text = styleBlock.ReplaceAllString(text, " ")
	text = anyTag.ReplaceAllString(text, " ")
	text = DecodeEntities(text)
	return strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
}

// DecodeMarkup removes CDATA markers and decodes the entities that hide
// markup in double-encoded feed content.
func DecodeMarkup(text string) string {
	if text == "" {
		return ""
	}
	return markupEntities.Replace(cdataMarkers.Replace(text))
}

// StripCDATA removes CDATA section markers, keeping their content
func StripCDATA(text string) string {
	return cdataMarkers.Replace(text)
}

// IsEncodedMarkup reports whether text carries escaped tags but no real ones
func IsEncodedMarkup(text string) bool {
	return !anyTag.MatchString(text) && strings.Contains(text, "&lt;")
}

// DecodeEntities decodes common HTML entities
func DecodeEntities(text string) string {
	replacements := map[string]string{
		"&nbsp;":   " ",
		"&lt;":     "<",
		"&gt;":     ">",
		"&quot;":   "\"",
		"&#39;":    "'",
		"&apos;":   "'",
		"&#8230;":  "...",
		"&#8217;":  "'",
		"&#8220;":  "\"",
		"&#8221;":  "\"",
		"&ldquo;":  "\"",
		"&rdquo;":  "\"",
		"&lsquo;":  "'",
		"&rsquo;":  "'",
		"&mdash;":  "-",
		"&ndash;":  "-",
		"&hellip;": "...",
		"&copy;":   "(c)",
		"&reg;":    "(R)",
		"&trade;":  "(TM)",
	}

	result := text
	for entity, replacement := range replacements {
		result = strings.ReplaceAll(result, entity, replacement)
	}

	// last, so "&amp;lt;" stays literal
	return strings.ReplaceAll(result, "&amp;", "&")
}
