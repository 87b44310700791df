// Package http provides HTTP-based implementations of the docgather fetch
// and sitemap discovery interfaces.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/wczarnecki/docgather"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docgather.Fetcher at compile time.
var _ docgather.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves response bodies from URLs over plain HTTP GET.
// Failures are reported as coded errors so that retry policies can
// distinguish transient from permanent conditions.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	headers map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeader adds a static header sent with every request, such as an
// Authorization header for API fetchers.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.headers[key] = value
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", docgather.Errorf(docgather.EINVALID, "invalid URL %q: %v", url, err)
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		// Network errors and client-side timeouts are transient.
		return "", docgather.Errorf(docgather.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", docgather.Errorf(docgather.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. No-op for the plain HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}

// statusError maps a non-2xx status code to a coded error. Transient
// statuses (429, 5xx) map to EUNAVAILABLE so the retry policy picks them
// up; remaining client errors are permanent.
func statusError(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusTooManyRequests || status >= 500:
		return docgather.Errorf(docgather.EUNAVAILABLE, "HTTP %d for %s", status, url)
	case status == http.StatusNotFound:
		return docgather.Errorf(docgather.ENOTFOUND, "HTTP 404 for %s", url)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return docgather.Errorf(docgather.EUNAUTHORIZED, "HTTP %d for %s", status, url)
	default:
		return docgather.Errorf(docgather.EINVALID, "HTTP %d for %s", status, url)
	}
}
