package docgather

import "context"

// SitemapService discovers page URLs from a site's published sitemaps.
// Structured documentation sites usually ship one, which lets the crawler
// skip link discovery entirely.
type SitemapService interface {
	// DiscoverURLs finds all URLs from the site's sitemap. It checks
	// robots.txt for sitemap directives, falls back to /sitemap.xml, and
	// resolves sitemap indexes recursively. When baseURL has a non-root
	// path, only URLs under that path prefix are returned. An empty
	// result is not an error.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
