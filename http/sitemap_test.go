package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dghttp "github.com/wczarnecki/docgather/http"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("discovers urls from sitemap.xml fallback", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/docs/intro</loc></url>
  <url><loc>%[1]s/docs/api</loc></url>
</urlset>`, serverURL)
		})
		server := httptest.NewServer(mux)
		defer server.Close()
		serverURL = server.URL

		svc := dghttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/intro", server.URL + "/docs/api"}, urls)
	})

	t.Run("follows robots.txt sitemap directive and resolves indexes", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/sitemap_index.xml\n", serverURL)
		})
		mux.HandleFunc("/sitemap_index.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<sitemapindex><sitemap><loc>%s/pages.xml</loc></sitemap></sitemapindex>`, serverURL)
		})
		mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/page1</loc></url></urlset>`, serverURL)
		})
		server := httptest.NewServer(mux)
		defer server.Close()
		serverURL = server.URL

		svc := dghttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/page1"}, urls)
	})

	t.Run("scopes results to base path prefix", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset>
  <url><loc>%[1]s/docs/intro</loc></url>
  <url><loc>%[1]s/blog/post</loc></url>
  <url><loc>%[1]s/documentation/other</loc></url>
</urlset>`, serverURL)
		})
		server := httptest.NewServer(mux)
		defer server.Close()
		serverURL = server.URL

		svc := dghttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL+"/docs")
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/intro"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := dghttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.NotNil(t, urls)
	})

	t.Run("deduplicates urls across sitemaps", func(t *testing.T) {
		t.Parallel()

		var serverURL string
		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %[1]s/a.xml\nSitemap: %[1]s/b.xml\n", serverURL)
		})
		mux.HandleFunc("/a.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/page</loc></url></urlset>`, serverURL)
		})
		mux.HandleFunc("/b.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/page</loc></url></urlset>`, serverURL)
		})
		server := httptest.NewServer(mux)
		defer server.Close()
		serverURL = server.URL

		svc := dghttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/page"}, urls)
	})
}
