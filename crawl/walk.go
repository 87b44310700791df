package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/wczarnecki/docgather"
)

// Frontier sizing for adapter-local crawls.
const (
	// frontierExpectedURLs is the expected URL count for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for dedup.
	frontierFalsePositiveRate = 0.01
)

// pageCrawler holds the collaborators shared by the breadth-first crawl
// adapters. Each Run builds its own frontier, so crawls never share state.
type pageCrawler struct {
	fetcher    docgather.Fetcher
	limiter    docgather.DomainLimiter
	retry      RetryPolicy
	content    docgather.ContentExtractor
	links      docgather.LinkExtractor
	normalizer *docgather.Normalizer
	logger     *slog.Logger
}

func (p *pageCrawler) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

func (p *pageCrawler) normalize(raw *docgather.RawExtraction, kind docgather.Source, pageURL string) *docgather.Document {
	n := p.normalizer
	if n == nil {
		n = &docgather.Normalizer{}
	}
	return n.Normalize(raw, kind, pageURL)
}

// fetch applies the rate limit and retry policy for a single page.
func (p *pageCrawler) fetch(ctx context.Context, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", docgather.Errorf(docgather.EINVALID, "invalid URL %q: %v", pageURL, err)
	}
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return p.retry.Do(ctx, pageURL, p.fetcher.Fetch)
}

// walk runs a breadth-first crawl from seed. Visiting stops once maxPages
// fetch attempts have been made for new pages; links at depth maxDepth are
// not enqueued (maxDepth < 0 disables the hop bound). inScope decides
// which discovered links join the frontier. A failed page is logged and
// skipped; pages whose extracted text is empty are not emitted.
func (p *pageCrawler) walk(ctx context.Context, seed string, kind docgather.Source, maxPages, maxDepth int, inScope func(*url.URL) bool) []*docgather.Document {
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(docgather.Link{URL: seed, Depth: 0})

	var docs []*docgather.Document
	attempts := 0

	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if attempts >= maxPages {
			break
		}
		if ctx.Err() != nil {
			break
		}
		attempts++

		body, err := p.fetch(ctx, link.URL)
		if err != nil {
			p.log().Warn("page skipped", "source", kind, "url", link.URL, "err", err)
			continue
		}

		if links, err := p.links.ExtractLinks(body, link.URL); err == nil {
			for _, discovered := range links {
				if maxDepth >= 0 && link.Depth >= maxDepth {
					break
				}
				u, err := url.Parse(discovered)
				if err != nil || !inScope(u) {
					continue
				}
				frontier.Push(docgather.Link{URL: discovered, Depth: link.Depth + 1})
			}
		}

		raw, err := p.content.Extract(body)
		if err != nil {
			p.log().Warn("extraction failed", "source", kind, "url", link.URL, "err", err)
			continue
		}

		doc := p.normalize(raw, kind, link.URL)
		if doc.Content == "" {
			p.log().Debug("empty page skipped", "source", kind, "url", link.URL)
			continue
		}
		docs = append(docs, doc)
	}

	return docs
}

// fetchList fetches a fixed, pre-discovered URL list in order. Used for
// sitemap-based crawls where no link discovery is needed.
func (p *pageCrawler) fetchList(ctx context.Context, urls []string, kind docgather.Source) []*docgather.Document {
	var docs []*docgather.Document
	for _, pageURL := range urls {
		if ctx.Err() != nil {
			break
		}

		body, err := p.fetch(ctx, pageURL)
		if err != nil {
			p.log().Warn("page skipped", "source", kind, "url", pageURL, "err", err)
			continue
		}

		raw, err := p.content.Extract(body)
		if err != nil {
			p.log().Warn("extraction failed", "source", kind, "url", pageURL, "err", err)
			continue
		}

		doc := p.normalize(raw, kind, pageURL)
		if doc.Content == "" {
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}
