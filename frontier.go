package docgather

// Link is a discovered URL pending a crawl visit. Depth counts hops from
// the crawl root; the seed link has depth zero.
type Link struct {
	URL   string
	Depth int
}

// URLFrontier manages a crawl queue with deduplication. A frontier is
// scoped to a single adapter invocation and discarded when it returns.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link Link) bool

	// Pop returns the next link in insertion order.
	// Returns false if the frontier is empty.
	Pop() (Link, bool)

	// Len returns the number of links in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}
