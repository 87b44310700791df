// Package trafilatura provides readable-text extraction for arbitrary
// websites using go-trafilatura's boilerplate removal.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/wczarnecki/docgather"
)

// Ensure Extractor implements docgather.ContentExtractor at compile time.
var _ docgather.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull main text out of pages with no
// assumed structure. Extraction is best-effort: there is no guarantee that
// only "main content" survives, and consumers must tolerate noise.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the readable text and title.
func (e *Extractor) Extract(rawHTML string) (*docgather.RawExtraction, error) {
	if rawHTML == "" {
		return nil, docgather.Errorf(docgather.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "extracting content: %v", err)
	}

	return &docgather.RawExtraction{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
