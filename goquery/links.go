// Package goquery provides CSS-selector based HTML extraction: same-host
// link discovery and structured documentation content extraction.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wczarnecki/docgather"
)

// Ensure LinkExtractor implements docgather.LinkExtractor at compile time.
var _ docgather.LinkExtractor = (*LinkExtractor)(nil)

// DefaultDocExcludes lists URL substrings of generated documentation pages
// (search indexes, general indexes, static assets) that are never worth a
// crawl budget slot.
var DefaultDocExcludes = []string{"search", "genindex", "_static"}

// LinkExtractor discovers same-host links from anchor tags.
type LinkExtractor struct {
	exclude []string
}

// LinkOption configures a LinkExtractor.
type LinkOption func(*LinkExtractor)

// WithExcludeSubstrings skips URLs containing any of the given substrings.
// Documentation sites use this to avoid generated pages such as search
// indexes (e.g. "search", "genindex", "_static" on Sphinx sites).
func WithExcludeSubstrings(subs ...string) LinkOption {
	return func(e *LinkExtractor) {
		e.exclude = append(e.exclude, subs...)
	}
}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor(opts ...LinkOption) *LinkExtractor {
	e := &LinkExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractLinks parses HTML and returns absolute same-host URLs in document
// order, fragments stripped, duplicates removed.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		// Exact host matching; subdomains are considered different hosts.
		if !isSameHost(base, resolved) {
			return
		}

		if e.excluded(resolved) {
			return
		}

		if !seen[resolved] {
			seen[resolved] = true
			links = append(links, resolved)
		}
	})

	return links, nil
}

func (e *LinkExtractor) excluded(link string) bool {
	for _, sub := range e.exclude {
		if strings.Contains(link, sub) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved
// URL is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
