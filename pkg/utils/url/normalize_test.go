package url

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"example.com/feed.xml", "https://example.com/feed.xml", false},
		{"  https://example.com/rss  ", "https://example.com/rss", false},
		{"http://example.com/rss", "http://example.com/rss", false},
		{"HTTPS://example.com", "https://example.com", false},
		{"//cdn.example.com/feed", "https://cdn.example.com/feed", false},
		{"", "", true},
		{"ftp://example.com/feed", "", true},
		{"https://", "", true},
		{"not a url", "", true},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Normalize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	base := "https://example.com/blog/feed.xml"

	tests := []struct {
		ref  string
		want string
	}{
		{"/posts/1", "https://example.com/posts/1"},
		{"posts/2", "https://example.com/blog/posts/2"},
		{"https://other.org/x", "https://other.org/x"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Resolve(base, tt.ref); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}

	if got := Resolve("", "/relative"); got != "/relative" {
		t.Errorf("Resolve without base = %q, want unchanged", got)
	}
}

func TestHost(t *testing.T) {
	if got := Host("https://news.example.com:8443/feed"); got != "news.example.com" {
		t.Errorf("Host = %q", got)
	}
	if got := Host("garbage"); got != "garbage" {
		t.Errorf("Host(garbage) = %q", got)
	}
}

func TestHostWithin(t *testing.T) {
	domains := []string{"youtube.com", "vimeo.com"}

	tests := []struct {
		raw  string
		want bool
	}{
		{"https://www.youtube.com/embed/abc", true},
		{"https://youtube.com/embed/abc", true},
		{"//player.vimeo.com/video/1", true},
		{"http://WWW.YouTube.com:443/embed", true},
		{"https://evil.example/x?ref=youtube.com", false},
		{"https://youtube.com.evil.example/embed", false},
		{"https://notyoutube.com/embed", false},
		{"javascript://youtube.com/%0Aalert(1)", false},
		{"youtube.com/embed/abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HostWithin(tt.raw, domains); got != tt.want {
			t.Errorf("HostWithin(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestIsWeb(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://example.com/posts/1", true},
		{"HTTP://example.com", true},
		{"javascript:alert(1)", false},
		{"data:text/html,hi", false},
		{"mailto:someone@example.com", false},
		{"/posts/1", false},
		{"https://", false},
	}

	for _, tt := range tests {
		if got := IsWeb(tt.raw); got != tt.want {
			t.Errorf("IsWeb(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
