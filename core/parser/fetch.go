// ABOUTME: HTTPFetcher downloads a source through the HTTP client and transcodes it to UTF-8
// ABOUTME: Bodies are size capped; non-2xx responses still return their payload

package parser

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"mime"
	"regexp"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

// DefaultMaxBodyBytes caps a fetched payload
const DefaultMaxBodyBytes int64 = 10 << 20

var (
	errNoFetcher     = stderrors.New("no fetcher configured")
	errNoRootElement = stderrors.New("document has no root element")
	errWebPage       = stderrors.New("document is a web page")

	xmlEncodingDecl = regexp.MustCompile(`^<\?xml[^>]*?encoding\s*=\s*["']([^"']+)["']`)
)

// Payload is a fetched source body decoded as UTF-8
type Payload struct {
	URL         string
	Body        string
	ContentType string
	StatusCode  int
}

// OK reports a 2xx status
func (p *Payload) OK() bool {
	return p.StatusCode >= 200 && p.StatusCode < 300
}

// HTTPFetcher implements Fetcher on top of interfaces.HTTPClient
type HTTPFetcher struct {
	client   interfaces.HTTPClient
	maxBytes int64
}

// NewHTTPFetcher creates a fetcher; maxBytes <= 0 uses DefaultMaxBodyBytes
func NewHTTPFetcher(client interfaces.HTTPClient, maxBytes int64) *HTTPFetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return &HTTPFetcher{client: client, maxBytes: maxBytes}
}

// Fetch implements Fetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Payload, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return nil, &errors.FetchError{URL: url, Err: err}
	}
	body := resp.Body()
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, f.maxBytes))
	if err != nil {
		return nil, &errors.FetchError{URL: url, Err: err}
	}

	contentType := resp.Header("Content-Type")
	payload := &Payload{
		URL:         url,
		Body:        decodeBody(raw, contentType),
		ContentType: contentType,
		StatusCode:  resp.StatusCode(),
	}

	if !payload.OK() {
		return payload, &errors.FetchError{URL: url, StatusCode: payload.StatusCode}
	}
	return payload, nil
}

// decodeBody transcodes raw to UTF-8 using, in order, the Content-Type charset,
// the XML declaration, UTF-8 validity, then HTML meta sniffing.
func decodeBody(raw []byte, contentType string) string {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if len(raw) == 0 {
		return ""
	}

	label := ""
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		label = params["charset"]
	}
	if label == "" {
		if m := xmlEncodingDecl.FindSubmatch(bytes.TrimSpace(raw)); m != nil {
			label = string(m[1])
		}
	}

	if label != "" {
		if enc, name := charset.Lookup(label); enc != nil && name != "utf-8" {
			if decoded, err := enc.NewDecoder().Bytes(raw); err == nil {
				return string(decoded)
			}
		} else if enc != nil {
			return string(raw)
		}
	}

	if utf8.Valid(raw) {
		return string(raw)
	}

	enc, _, _ := charset.DetermineEncoding(raw, contentType)
	if decoded, err := enc.NewDecoder().Bytes(raw); err == nil {
		return string(decoded)
	}
	return string(raw)
}
