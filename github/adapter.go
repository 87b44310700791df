package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wczarnecki/docgather"
)

// DocsPath is the repository path searched for documentation files.
const DocsPath = "docs"

// textExtensions lists the file extensions treated as documentation text.
// Everything else (images, binaries, source code) is skipped.
var textExtensions = []string{".md", ".markdown", ".rst", ".txt"}

// Ensure Adapter implements docgather.Adapter at compile time.
var _ docgather.Adapter = (*Adapter)(nil)

// Adapter retrieves a repository's README and documentation-folder
// contents. Retrieval is partial-success: a missing docs folder is not an
// error, and the adapter emits whatever the README yielded on its own.
type Adapter struct {
	Client     *Client
	Normalizer *docgather.Normalizer
	Logger     *slog.Logger
}

// Run fetches the repository's documentation and returns one document per
// retrieved text file.
func (a *Adapter) Run(ctx context.Context, cfg docgather.SourceConfig) ([]*docgather.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var docs []*docgather.Document

	if readme := a.fetchReadme(ctx, cfg); readme != nil {
		docs = append(docs, readme)
	}

	docs = append(docs, a.fetchDocsDir(ctx, cfg, DocsPath)...)

	return docs, nil
}

// fetchReadme retrieves the repository README. Failure is recoverable:
// the docs folder is still attempted.
func (a *Adapter) fetchReadme(ctx context.Context, cfg docgather.SourceConfig) *docgather.Document {
	readme, err := a.Client.Readme(ctx, cfg.Owner, cfg.Repo, cfg.Token)
	if err != nil {
		a.log().Warn("readme skipped", "source", cfg.Name, "repo", cfg.Owner+"/"+cfg.Repo, "err", err)
		return nil
	}

	content, err := a.Client.Download(ctx, readme.DownloadURL)
	if err != nil {
		a.log().Warn("readme download failed", "source", cfg.Name, "url", readme.DownloadURL, "err", err)
		return nil
	}

	raw := &docgather.RawExtraction{
		Title: fmt.Sprintf("%s - README", cfg.Repo),
		Text:  content,
	}
	return a.normalize(raw, readme.HTMLURL)
}

// fetchDocsDir retrieves text files under path, recursing into
// subdirectories. A missing or malformed listing is logged and skipped.
func (a *Adapter) fetchDocsDir(ctx context.Context, cfg docgather.SourceConfig, path string) []*docgather.Document {
	entries, err := a.Client.ListContents(ctx, cfg.Owner, cfg.Repo, path, cfg.Token)
	if err != nil {
		if docgather.ErrorCode(err) == docgather.ENOTFOUND {
			a.log().Debug("no documentation folder", "source", cfg.Name, "path", path)
		} else {
			a.log().Warn("documentation folder skipped", "source", cfg.Name, "path", path, "err", err)
		}
		return nil
	}

	var docs []*docgather.Document
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		switch {
		case entry.Type == "dir":
			docs = append(docs, a.fetchDocsDir(ctx, cfg, entry.Path)...)
		case entry.Type == "file" && isTextFile(entry.Name):
			content, err := a.Client.Download(ctx, entry.DownloadURL)
			if err != nil {
				a.log().Warn("file skipped", "source", cfg.Name, "path", entry.Path, "err", err)
				continue
			}
			raw := &docgather.RawExtraction{Title: entry.Name, Text: content}
			docs = append(docs, a.normalize(raw, entry.HTMLURL))
		}
	}
	return docs
}

func (a *Adapter) normalize(raw *docgather.RawExtraction, url string) *docgather.Document {
	n := a.Normalizer
	if n == nil {
		n = &docgather.Normalizer{}
	}
	return n.Normalize(raw, docgather.SourceGitHub, url)
}

func (a *Adapter) log() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// isTextFile reports whether the file name carries a documentation text
// extension.
func isTextFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range textExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
