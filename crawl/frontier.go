// Package crawl provides the crawling building blocks and the two
// crawl-based source adapters (structured documentation sites and
// arbitrary websites).
package crawl

import (
	"strings"
	"sync"

	"github.com/wczarnecki/docgather"
	"github.com/wczarnecki/docgather/bloom"
)

// Compile-time interface verification.
var _ docgather.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO frontier with Bloom filter deduplication.
// Insertion order is preserved, so a breadth-first crawl is deterministic
// for a fixed link structure. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []docgather.Link
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(link docgather.Link) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	link.URL = stripFragment(link.URL)
	if f.seen.Test(link.URL) {
		return false
	}
	f.seen.Add(link.URL)

	f.queue = append(f.queue, link)
	return true
}

// Pop returns the next link in insertion order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (docgather.Link, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return docgather.Link{}, false
	}
	link := f.queue[0]
	f.queue = f.queue[1:]
	return link, true
}

// Len returns the number of links in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
