package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/wczarnecki/docgather"
)

// Ensure WebsiteAdapter implements docgather.Adapter at compile time.
var _ docgather.Adapter = (*WebsiteAdapter)(nil)

// WebsiteAdapter crawls an arbitrary website with no assumed structure.
// Unstructured sites risk a much larger branching factor than curated
// documentation trees, so termination rests on two independent bounds:
// the page cap and a hop-count depth bound. Scope is same-origin only.
type WebsiteAdapter struct {
	Fetcher     docgather.Fetcher
	Content     docgather.ContentExtractor
	Links       docgather.LinkExtractor
	RateLimiter docgather.DomainLimiter
	Retry       RetryPolicy
	Normalizer  *docgather.Normalizer
	Logger      *slog.Logger
}

// Run crawls the configured site breadth-first and returns one document
// per page with non-empty readable text.
func (a *WebsiteAdapter) Run(ctx context.Context, cfg docgather.SourceConfig) ([]*docgather.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	root, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "source %q: invalid URL %q: %v", cfg.Name, cfg.URL, err)
	}

	p := &pageCrawler{
		fetcher:    a.Fetcher,
		limiter:    a.RateLimiter,
		retry:      a.Retry,
		content:    a.Content,
		links:      a.Links,
		normalizer: a.Normalizer,
		logger:     a.Logger,
	}

	inScope := func(u *url.URL) bool {
		return u.Host == root.Host
	}

	docs := p.walk(ctx, root.String(), docgather.SourceWebsite, cfg.MaxPages, cfg.MaxDepth, inScope)
	return docs, nil
}
