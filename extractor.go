package docgather

// RawExtraction holds content pulled from a fetched page before
// normalization.
type RawExtraction struct {
	// Title is the best-effort page heading; may be empty.
	Title string

	// Text is the extracted plain text. Boilerplate (nav, footer,
	// sidebar) has been removed on a best-effort basis; downstream
	// consumers must tolerate residual noise.
	Text string
}

// ContentExtractor extracts readable text and a title from raw HTML.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	// Extraction never discovers links; use a LinkExtractor for that.
	Extract(html string) (*RawExtraction, error)
}

// LinkExtractor discovers same-host links from raw HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns absolute URLs on the same
	// host as baseURL, with fragments stripped and duplicates removed.
	// The baseURL is used to resolve relative hrefs.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
