// ABOUTME: FormatParserChain runs an ordered list of parse strategies until one succeeds
// ABOUTME: Strategies share one lazily fetched payload; the last strategy cannot fail

package parser

import (
	"context"
	"fmt"
	"time"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

// Strategy names, in default chain order
const (
	StrategyLibraryURL     = "library-url"
	StrategyLibraryPayload = "library-payload"
	StrategyAtom           = "atom"
	StrategyRSS            = "rss"
	StrategySniff          = "sniff"
	StrategyHTML           = "html"
	StrategyFallback       = "fallback"
)

// Strategy turns a source into raw items or reports why it could not
type Strategy interface {
	Name() string
	Parse(ctx context.Context, in *Input) Result
}

// Result is the tagged outcome of one strategy.
// Title and Description may be set on failure when the strategy got that far.
type Result struct {
	Title       string
	Description string
	Items       []domain.RawItem
	Err         error
}

func success(title, description string, items []domain.RawItem) Result {
	return Result{Title: title, Description: description, Items: items}
}

func failure(err error) Result {
	return Result{Err: err}
}

func empty(strategy, title, description string) Result {
	return Result{
		Title:       title,
		Description: description,
		Err:         &errors.EmptyResultError{Strategy: strategy},
	}
}

// Outcome is what the winning strategy produced
type Outcome struct {
	Title       string
	Description string
	Items       []domain.RawItem
	Strategy    string
}

// Chain evaluates strategies in order and stops at the first success
type Chain struct {
	strategies []Strategy
	fetcher    Fetcher
	logger     interfaces.Logger
}

// NewChain creates a chain; with no strategies given the default order is used
func NewChain(fetcher Fetcher, logger interfaces.Logger, strategies ...Strategy) *Chain {
	if len(strategies) == 0 {
		strategies = DefaultStrategies(DefaultFetchTimeout)
	}
	return &Chain{
		strategies: strategies,
		fetcher:    fetcher,
		logger:     logger,
	}
}

// DefaultStrategies returns library-url, library-payload, atom, rss, sniff, html, fallback.
// fetchTimeout bounds the request gofeed makes on its own.
func DefaultStrategies(fetchTimeout time.Duration) []Strategy {
	return []Strategy{
		NewLibraryURLStrategy(fetchTimeout),
		NewLibraryPayloadStrategy(),
		atomStrategy{},
		rssStrategy{},
		sniffStrategy{},
		htmlStrategy{},
		fallbackStrategy{},
	}
}

// Run parses url. The only error returned is a transport FetchError when no
// payload could be obtained at all.
func (c *Chain) Run(ctx context.Context, url string) (*Outcome, error) {
	in := NewInput(url, c.fetcher)

	var title, description string
	var lastErr error

	for _, strategy := range c.strategies {
		res := c.try(ctx, strategy, in)

		if res.Err == nil {
			if res.Title == "" {
				res.Title, res.Description = title, description
			}
			c.logger.Info("Feed parsed", map[string]interface{}{
				"url":      url,
				"strategy": strategy.Name(),
				"items":    len(res.Items),
			})
			return &Outcome{
				Title:       res.Title,
				Description: res.Description,
				Items:       res.Items,
				Strategy:    strategy.Name(),
			}, nil
		}

		c.logger.Debug("Parse strategy failed", map[string]interface{}{
			"url":      url,
			"strategy": strategy.Name(),
			"error":    res.Err.Error(),
		})

		if title == "" && res.Title != "" {
			title, description = res.Title, res.Description
		}
		lastErr = res.Err

		if err := in.Unreachable(); err != nil {
			c.logger.Warn("Feed source unreachable", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
			return nil, err
		}
	}

	return nil, lastErr
}

// try runs one strategy, turning a panic into a ParseError
func (c *Chain) try(ctx context.Context, strategy Strategy, in *Input) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(&errors.ParseError{Strategy: strategy.Name(), Err: fmt.Errorf("panic: %v", r)})
		}
	}()
	return strategy.Parse(ctx, in)
}
