package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/wczarnecki/docgather"
)

// Ensure ReadTheDocsAdapter implements docgather.Adapter at compile time.
var _ docgather.Adapter = (*ReadTheDocsAdapter)(nil)

// ReadTheDocsAdapter crawls a structured documentation site rooted at a
// start URL. It tries sitemap discovery first; when the site publishes no
// sitemap it falls back to breadth-first link-following scoped to the root
// URL's host and path prefix.
type ReadTheDocsAdapter struct {
	Fetcher     docgather.Fetcher
	Sitemaps    docgather.SitemapService // optional sitemap fast path
	Content     docgather.ContentExtractor
	Links       docgather.LinkExtractor
	RateLimiter docgather.DomainLimiter
	Retry       RetryPolicy
	Normalizer  *docgather.Normalizer
	Logger      *slog.Logger
}

// Run crawls the configured site and returns one document per page with
// non-empty extracted text. A single failed page never aborts the crawl.
func (a *ReadTheDocsAdapter) Run(ctx context.Context, cfg docgather.SourceConfig) ([]*docgather.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	root, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
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

	// Sitemap fast path. The URL list is capped before fetching so the
	// page bound holds on both paths.
	if a.Sitemaps != nil {
		urls, err := a.Sitemaps.DiscoverURLs(ctx, root.String())
		if err != nil {
			p.log().Warn("sitemap discovery failed, falling back to crawl", "source", cfg.Name, "err", err)
		} else if len(urls) > 0 {
			if len(urls) > cfg.MaxPages {
				urls = urls[:cfg.MaxPages]
			}
			return p.fetchList(ctx, urls, docgather.SourceReadTheDocs), nil
		}
	}

	// Scope is the root's host and path subtree. The prefix check respects
	// path boundaries, so a /guide root does not admit /guidelines.
	inScope := func(u *url.URL) bool {
		if u.Host != root.Host {
			return false
		}
		if root.Path == "" {
			return true
		}
		return u.Path == root.Path || strings.HasPrefix(u.Path, root.Path+"/")
	}

	docs := p.walk(ctx, root.String(), docgather.SourceReadTheDocs, cfg.MaxPages, -1, inScope)
	return docs, nil
}
