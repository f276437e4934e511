// ABOUTME: Request DTOs for feed and article endpoints
// ABOUTME: Provides validation tags and normalization for incoming bodies

package requests

import "strings"

// AddFeedRequest subscribes the caller to a feed
type AddFeedRequest struct {
	// URL may omit the scheme, https is assumed
	URL string `json:"url" minLength:"1" maxLength:"2048" doc:"Feed or page URL"`

	Category string `json:"category,omitempty" maxLength:"100" doc:"Optional grouping label"`
}

// Normalize trims surrounding whitespace
func (r *AddFeedRequest) Normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.Category = strings.TrimSpace(r.Category)
}

// UpdateFeedRequest changes a feed's title or category; nil fields are left alone
type UpdateFeedRequest struct {
	Title    *string `json:"title,omitempty" maxLength:"300" doc:"New feed title"`
	Category *string `json:"category,omitempty" maxLength:"100" doc:"New grouping label"`
}
