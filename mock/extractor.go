package mock

import "github.com/wczarnecki/docgather"

var _ docgather.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of docgather.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*docgather.RawExtraction, error)
}

func (e *ContentExtractor) Extract(html string) (*docgather.RawExtraction, error) {
	return e.ExtractFn(html)
}

var _ docgather.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docgather.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
