package crawl

import (
	"context"
	"time"

	"github.com/wczarnecki/docgather"
)

// FetchFunc is the signature of a single fetch attempt.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryPolicy describes how failed fetches are retried: the backoff
// schedule (one entry per retry) and which errors are worth retrying.
// A policy is injected into adapters rather than hardcoded per call site.
type RetryPolicy struct {
	// Delays holds the waits between attempts. len(Delays)+1 is the
	// total attempt budget.
	Delays []time.Duration

	// Retryable reports whether an error is transient. When nil,
	// only EUNAVAILABLE errors (timeouts, 5xx, 429) are retried.
	Retryable func(error) bool

	// Logger, if set, is called once per retry attempt.
	Logger func(format string, args ...any)
}

// DefaultRetryPolicy returns the standard policy: exponential backoff of
// 1s, 2s, 4s (4 attempts total), retrying transient failures only.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Delays: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// Do fetches a URL under the policy. Permanent failures return
// immediately; transient ones are retried until the delay schedule is
// exhausted, after which the last error is returned.
func (p RetryPolicy) Do(ctx context.Context, url string, fetch FetchFunc) (string, error) {
	retryable := p.Retryable
	if retryable == nil {
		retryable = func(err error) bool {
			return docgather.ErrorCode(err) == docgather.EUNAVAILABLE
		}
	}

	maxAttempts := len(p.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if p.Logger != nil {
			p.Logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.Delays[attempt]):
		}
	}

	return "", lastErr
}
