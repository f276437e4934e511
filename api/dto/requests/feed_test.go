package requests

import (
	"testing"
)

func TestAddFeedRequest_Normalize(t *testing.T) {
	req := AddFeedRequest{URL: "  example.com/feed.xml\n", Category: " news "}
	req.Normalize()

	if req.URL != "example.com/feed.xml" {
		t.Errorf("URL = %q, want %q", req.URL, "example.com/feed.xml")
	}
	if req.Category != "news" {
		t.Errorf("Category = %q, want %q", req.Category, "news")
	}
}
