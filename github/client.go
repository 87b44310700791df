// Package github provides the code-hosting REST client and the
// repository-docs source adapter.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wczarnecki/docgather"
	"github.com/wczarnecki/docgather/crawl"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// defaultRequestTimeout bounds individual API calls.
const defaultRequestTimeout = 10 * time.Second

// File is a repository file reachable through the contents API.
type File struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"` // "file" or "dir"
	HTMLURL     string `json:"html_url"`
	DownloadURL string `json:"download_url"`
}

// Client talks to the code-hosting REST API. A token, when supplied per
// call, raises rate limits; requests work without one.
type Client struct {
	client  *http.Client
	baseURL string
	retry   crawl.RetryPolicy
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRetryPolicy sets the retry policy for API calls and downloads.
func WithRetryPolicy(p crawl.RetryPolicy) ClientOption {
	return func(c *Client) {
		c.retry = p
	}
}

// NewClient creates a new API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		client:  &http.Client{Timeout: defaultRequestTimeout},
		baseURL: DefaultBaseURL,
		retry:   crawl.DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Readme fetches the repository README metadata.
func (c *Client) Readme(ctx context.Context, owner, repo, token string) (*File, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo), token)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "decoding readme response: %v", err)
	}
	return &f, nil
}

// ListContents lists one level of a repository path.
func (c *Client) ListContents(ctx context.Context, owner, repo, path, token string) ([]File, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, owner, repo, path), token)
	if err != nil {
		return nil, err
	}

	var files []File
	if err := json.Unmarshal([]byte(body), &files); err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "decoding contents of %q: %v", path, err)
	}
	return files, nil
}

// Download fetches a file's raw content from its download URL. Download
// URLs are pre-authorized, so no token is attached.
func (c *Client) Download(ctx context.Context, url string) (string, error) {
	return c.get(ctx, url, "")
}

// get performs an authenticated GET under the retry policy.
func (c *Client) get(ctx context.Context, url, token string) (string, error) {
	return c.retry.Do(ctx, url, func(ctx context.Context, url string) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", docgather.Errorf(docgather.EINVALID, "invalid URL %q: %v", url, err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		if token != "" {
			req.Header.Set("Authorization", "token "+token)
		}

		resp, err := c.client.Do(req)
		if err != nil {
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
	})
}

// statusError maps non-2xx API statuses to coded errors. Rate-limit and
// server errors are transient; the rest are permanent.
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
