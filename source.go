package docgather

import "context"

// Default crawl bounds applied when a source config leaves them unset.
const (
	DefaultMaxPages = 50
	DefaultMaxDepth = 3
)

// SourceConfig describes one configured documentation source. It is
// constructed once before a run and read-only thereafter.
type SourceConfig struct {
	// Name is a human-readable label used in logs.
	Name string

	// Kind selects the adapter that handles this source.
	Kind Source

	// URL is the crawl root for readthedocs and website sources.
	URL string

	// Owner and Repo identify a repository for github sources.
	Owner string
	Repo  string

	// Token optionally authenticates code-hosting API requests to raise
	// rate limits. Absence is not an error.
	Token string

	// MaxPages caps the number of fetch attempts for new pages.
	MaxPages int

	// MaxDepth caps link-following hops from the root (website sources).
	MaxDepth int
}

// Validate returns an EINVALID error if required fields for the source
// kind are missing.
func (c *SourceConfig) Validate() error {
	if !c.Kind.Valid() {
		return Errorf(EINVALID, "source %q: unknown kind %q", c.Name, c.Kind)
	}
	switch c.Kind {
	case SourceGitHub:
		if c.Owner == "" || c.Repo == "" {
			return Errorf(EINVALID, "source %q: owner and repo required", c.Name)
		}
	default:
		if c.URL == "" {
			return Errorf(EINVALID, "source %q: URL required", c.Name)
		}
	}
	if c.MaxPages < 0 {
		return Errorf(EINVALID, "source %q: max pages must not be negative", c.Name)
	}
	return nil
}

// WithDefaults returns a copy of the config with unset bounds filled in.
func (c SourceConfig) WithDefaults() SourceConfig {
	if c.MaxPages == 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return c
}

// Adapter discovers and fetches content for one provenance kind.
// Run returns the documents it managed to collect; a page-level failure is
// skipped internally and never aborts the run. Returned documents may still
// contain empty content — the aggregator filters those.
type Adapter interface {
	Run(ctx context.Context, cfg SourceConfig) ([]*Document, error)
}
