// ABOUTME: Terminal strategy producing one placeholder article so callers always get output

package parser

import (
	"context"

	"feedreader-api/core/domain"
	urlutil "feedreader-api/pkg/utils/url"
)

// FallbackContent is the placeholder body of the terminal fallback article
const FallbackContent = "Could not parse content from this feed. Please check the URL."

type fallbackStrategy struct{}

func (fallbackStrategy) Name() string { return StrategyFallback }

func (fallbackStrategy) Parse(_ context.Context, in *Input) Result {
	item := domain.RawItem{
		Title: "Content from " + urlutil.Host(in.URL),
		Link:  in.URL,
	}
	return success("", "", []domain.RawItem{item.WithContents(FallbackContent)})
}
