// ABOUTME: Pipeline runs fetch, parse and normalization for one feed source URL
// ABOUTME: Implements interfaces.FeedPipeline on top of the parser chain and article assembler

package feed

import (
	"context"
	"time"

	"feedreader-api/core/assembler"
	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/normalize"
	"feedreader-api/core/parser"
	urlutil "feedreader-api/pkg/utils/url"
)

// Parser is satisfied by *parser.Chain
type Parser interface {
	Run(ctx context.Context, url string) (*parser.Outcome, error)
}

// Assembler is satisfied by *assembler.Assembler
type Assembler interface {
	Assemble(ctx context.Context, items []domain.RawItem, baseURL string) []domain.NormalizedArticle
}

// PipelineConfig configures NewDefaultPipeline
type PipelineConfig struct {
	// FetchTimeout bounds the request the library-url strategy makes itself
	FetchTimeout time.Duration
	MaxBodyBytes int64
	Concurrency  int
	Normalize    normalize.Options
}

// Pipeline implements interfaces.FeedPipeline
type Pipeline struct {
	parser    Parser
	assembler Assembler
	now       func() time.Time
}

// NewPipeline creates a pipeline from its stages
func NewPipeline(p Parser, a Assembler) *Pipeline {
	return &Pipeline{
		parser:    p,
		assembler: a,
		now:       time.Now,
	}
}

// NewDefaultPipeline wires the default strategy chain and normalizer around client
func NewDefaultPipeline(client interfaces.HTTPClient, logger interfaces.Logger, cfg PipelineConfig) *Pipeline {
	chain := parser.NewChain(parser.NewHTTPFetcher(client, cfg.MaxBodyBytes), logger, parser.DefaultStrategies(cfg.FetchTimeout)...)
	asm := assembler.New(normalize.New(cfg.Normalize), logger, cfg.Concurrency)
	return NewPipeline(chain, asm)
}

// Run parses rawURL into a feed descriptor and its articles.
// A URL without a scheme is fetched over https.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*domain.ParsedFeed, error) {
	feedURL, err := urlutil.Normalize(rawURL)
	if err != nil {
		return nil, &errors.ValidationError{Field: "url", Message: "must be an http or https URL"}
	}

	outcome, err := p.parser.Run(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	articles := p.assembler.Assemble(ctx, outcome.Items, feedURL)
	if articles == nil {
		articles = []domain.NormalizedArticle{}
	}

	return &domain.ParsedFeed{
		Feed:     domain.NewFeedDescriptor(feedURL, outcome.Title, outcome.Description, p.now()),
		Articles: articles,
		Strategy: outcome.Strategy,
	}, nil
}
