package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wczarnecki/docgather"
	"golang.org/x/net/html"
)

// Ensure ContentExtractor implements docgather.ContentExtractor.
var _ docgather.ContentExtractor = (*ContentExtractor)(nil)

// boilerplateSelector matches elements that never carry documentation
// content and are dropped before text extraction.
const boilerplateSelector = "nav, footer, header, aside, script, style, noscript"

// mainContentSelectors is tried in order to locate the main content area.
// The class-based entries cover the common documentation generators:
// Sphinx (.document, .body), MkDocs (.md-content), Docusaurus
// (.theme-doc-markdown) and generic content wrappers.
var mainContentSelectors = []string{
	"div[role=main]",
	"main",
	"article",
	".theme-doc-markdown",
	".md-content",
	"div.document",
	"div.body",
	"div.content",
	"div.main",
}

// ContentExtractor extracts title and readable text from structured
// documentation pages using CSS selectors.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract processes raw HTML and returns the page title and the text of
// its main content area. When no main content area can be identified the
// whole body is used.
func (e *ContentExtractor) Extract(rawHTML string) (*docgather.RawExtraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docgather.Errorf(docgather.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)

	doc.Find(boilerplateSelector).Remove()

	main := doc.Find("body")
	for _, selector := range mainContentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			main = sel
			break
		}
	}

	return &docgather.RawExtraction{
		Title: title,
		Text:  nodeText(main),
	}, nil
}

// extractTitle prefers the first h1 over the document title. Falling back
// to the URL happens later, in the normalizer.
func extractTitle(doc *goquery.Document) string {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		return strings.TrimSpace(h1.Text())
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// nodeText walks the selection's nodes and joins non-empty text nodes
// with newlines, so distinct elements never run together.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
