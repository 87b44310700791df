package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wczarnecki/docgather"
	dgq "github.com/wczarnecki/docgather/goquery"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/guide/intro">Intro</a>
			<a href="api.html">API</a>
		</body></html>`

		e := dgq.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://docs.example.com/guide/")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.example.com/guide/intro",
			"https://docs.example.com/guide/api.html",
		}, links)
	})

	t.Run("filters external hosts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="https://docs.example.com/a">Internal</a>
			<a href="https://other.com/b">External</a>
			<a href="https://sub.docs.example.com/c">Subdomain</a>
		</body></html>`

		e := dgq.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://docs.example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.example.com/a"}, links)
	})

	t.Run("strips fragments and deduplicates", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/page#intro">One</a>
			<a href="/page#usage">Two</a>
		</body></html>`

		e := dgq.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/page"}, links)
	})

	t.Run("skips non-HTTP schemes and self references", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="javascript:void(0)">JS</a>
			<a href="mailto:dev@example.com">Mail</a>
			<a href="#section">Anchor</a>
			<a href="/real">Real</a>
		</body></html>`

		e := dgq.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/real"}, links)
	})

	t.Run("exclude substrings filter generated pages", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/guide">Guide</a>
			<a href="/search.html">Search</a>
			<a href="/genindex.html">Index</a>
		</body></html>`

		e := dgq.NewLinkExtractor(dgq.WithExcludeSubstrings("search", "genindex", "_static"))
		links, err := e.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/guide"}, links)
	})

	t.Run("default doc excludes skip generated documentation pages", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/guide">Guide</a>
			<a href="/search.html">Search</a>
			<a href="/genindex.html">Index</a>
			<a href="/_static/theme.css">Theme</a>
		</body></html>`

		e := dgq.NewLinkExtractor(dgq.WithExcludeSubstrings(dgq.DefaultDocExcludes...))
		links, err := e.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/guide"}, links)
	})

	t.Run("invalid base URL returns EINVALID", func(t *testing.T) {
		t.Parallel()

		e := dgq.NewLinkExtractor()
		_, err := e.ExtractLinks("<html></html>", "://bad")
		assert.Equal(t, docgather.EINVALID, docgather.ErrorCode(err))
	})
}
