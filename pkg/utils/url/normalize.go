// ABOUTME: URL helpers for feed sources and article links
// ABOUTME: Adds a missing scheme, resolves relative links and checks hosts and schemes

package url

import (
	"errors"
	neturl "net/url"
	"strings"
)

// ErrInvalidURL is returned for input that cannot name a host
var ErrInvalidURL = errors.New("invalid URL")

// Normalize trims the input and prefixes https:// when no scheme is present.
// Only http and https sources are accepted.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + strings.TrimPrefix(raw, "//")
	}

	u, err := neturl.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidURL
	}
	if u.Host == "" || strings.ContainsAny(u.Host, " \t") {
		return "", ErrInvalidURL
	}

	return u.String(), nil
}

// Resolve returns ref as an absolute URL relative to base.
// ref is returned unchanged when either side cannot be parsed.
func Resolve(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	r, err := neturl.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return r.String()
	}

	b, err := neturl.Parse(base)
	if err != nil || !b.IsAbs() {
		return ref
	}

	return b.ResolveReference(r).String()
}

// Host returns the host part of raw, or raw itself when it has none
func Host(raw string) string {
	u, err := neturl.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Hostname()
}

// HostWithin reports whether raw is an http(s) or protocol-relative URL whose
// host equals one of domains or is a subdomain of one
func HostWithin(raw string, domains []string) bool {
	u, err := neturl.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "" && scheme != "http" && scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// IsWeb reports whether raw is an absolute http or https URL with a host
func IsWeb(raw string) bool {
	u, err := neturl.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
