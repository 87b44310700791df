package docgather

import (
	"context"
	"time"
)

// Source identifies the provenance kind of a document.
type Source string

// Supported source kinds.
const (
	SourceReadTheDocs Source = "readthedocs"
	SourceGitHub      Source = "github"
	SourceWebsite     Source = "website"
)

// Valid returns true if s is one of the known source kinds.
func (s Source) Valid() bool {
	switch s {
	case SourceReadTheDocs, SourceGitHub, SourceWebsite:
		return true
	}
	return false
}

// Metadata holds derived document metadata. ContentLength always equals the
// character count of the document content at normalization time.
type Metadata struct {
	ScrapedAt     time.Time `json:"scraped_at"`
	ContentLength int       `json:"content_length"`
}

// Document represents a single normalized documentation record. Documents
// are immutable once created; a rerun regenerates the whole collection.
//
// The JSON field names and nesting form the output contract — downstream
// consumers depend on this exact shape.
type Document struct {
	Source   Source   `json:"source"`
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if !d.Source.Valid() {
		return Errorf(EINVALID, "unknown document source %q", d.Source)
	}
	return nil
}

// CollectionWriter persists an ordered document collection as the run's
// output artifact, replacing any previous artifact.
type CollectionWriter interface {
	WriteCollection(ctx context.Context, docs []*Document) error
}
