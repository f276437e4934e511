// ABOUTME: Input carries the source URL and a payload fetched at most once
// ABOUTME: Fetcher abstracts how the payload is obtained

package parser

import (
	"context"
	"sync"

	"feedreader-api/core/errors"
)

// Fetcher obtains the raw payload of a URL.
// A non-2xx response returns both the payload and a *errors.FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Payload, error)
}

// Input is shared by every strategy of one chain run
type Input struct {
	URL string

	fetcher Fetcher
	once    sync.Once
	fetched bool
	payload *Payload
	err     error
}

// NewInput creates an input for url
func NewInput(url string, fetcher Fetcher) *Input {
	return &Input{URL: url, fetcher: fetcher}
}

// Payload fetches the source on first use and returns the same result afterwards
func (in *Input) Payload(ctx context.Context) (*Payload, error) {
	in.once.Do(func() {
		in.fetched = true
		if in.fetcher == nil {
			in.err = &errors.FetchError{URL: in.URL, Err: errNoFetcher}
			return
		}
		in.payload, in.err = in.fetcher.Fetch(ctx, in.URL)
	})
	return in.payload, in.err
}

// Unreachable returns the fetch error when a fetch was attempted and failed
// before any payload arrived. It never triggers a fetch.
func (in *Input) Unreachable() error {
	if !in.fetched || in.payload != nil {
		return nil
	}
	if errors.IsTransport(in.err) {
		return in.err
	}
	return nil
}
