// ABOUTME: RawItem is the format-agnostic entry produced by every parse strategy
// ABOUTME: It is transient and only lives between parsing and article assembly

package domain

import (
	"strings"
	"time"
)

// MediaHint is an image candidate declared by the feed itself
type MediaHint struct {
	URL  string
	Type string
}

// IsImage reports whether the hint declares an image type
func (m *MediaHint) IsImage() bool {
	if m == nil || m.URL == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(m.Type), "image/")
}

// RawItem is an unnormalized feed entry
type RawItem struct {
	Title string
	Link  string

	// Published is the date string as found in the source
	Published string

	// PublishedAt is set when a parser already produced a parsed date
	PublishedAt *time.Time

	Author string

	// Content is the first non-empty entry of Contents
	Content string

	// Contents holds every candidate content field in preference order
	Contents []string

	Media *MediaHint
}

// WithContents sets Contents and picks the first non-empty candidate as Content
func (r RawItem) WithContents(candidates ...string) RawItem {
	r.Contents = candidates
	r.Content = ""
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			r.Content = c
			break
		}
	}
	return r
}
