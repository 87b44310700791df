package docgather

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// excessNewlines matches runs of three or more newlines, which get
// collapsed to a single blank line during normalization.
var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Normalizer converts raw extractions into canonical documents.
// It is a pure transform aside from reading the wall clock.
type Normalizer struct {
	// Now returns the current time. Defaults to time.Now; overridable
	// in tests.
	Now func() time.Time
}

// Normalize builds a Document from a raw extraction. It never fails: a
// page without usable content yields a document with empty content, which
// the aggregator filters out. ScrapedAt and ContentLength are computed
// here, at normalization time, so the timestamp reflects the actual fetch
// moment even when writing is batched later.
func (n *Normalizer) Normalize(raw *RawExtraction, kind Source, rawURL string) *Document {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	content := excessNewlines.ReplaceAllString(raw.Text, "\n\n")
	content = strings.TrimSpace(content)

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = titleFromURL(rawURL)
	}

	return &Document{
		Source:  kind,
		URL:     rawURL,
		Title:   title,
		Content: content,
		Metadata: Metadata{
			ScrapedAt:     now(),
			ContentLength: utf8.RuneCountInString(content),
		},
	}
}

// titleFromURL derives a fallback title from the last path segment of the
// URL, or the host when the path is empty.
func titleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return u.Host
	}
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}
