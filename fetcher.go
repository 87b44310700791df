package docgather

import "context"

// Fetcher retrieves raw response bodies from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// Non-2xx statuses are reported as coded errors: EUNAVAILABLE for
	// transient failures (timeouts, 5xx, 429), ENOTFOUND for 404,
	// EUNAUTHORIZED for 401/403, EINVALID for remaining client errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting between requests.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
