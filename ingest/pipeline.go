// Package ingest orchestrates a full ingestion run: it drives the
// configured source adapters in order, aggregates their documents, and
// writes the output collection.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/wczarnecki/docgather"
)

// Pipeline runs configured sources through their adapters and writes the
// deduplicated collection. Adapters execute strictly one after another;
// each owns its crawl state, so runs share no mutable state.
type Pipeline struct {
	// Adapters maps each source kind to its adapter.
	Adapters map[docgather.Source]docgather.Adapter

	// Writer persists the final collection.
	Writer docgather.CollectionWriter

	// Logger receives run progress. Defaults to slog.Default.
	Logger *slog.Logger

	// NewRunID generates the id tagging all log lines of a run.
	// Defaults to uuid.NewString.
	NewRunID func() string
}

// Result summarizes an ingestion run.
type Result struct {
	// Collected is the number of documents in the written collection.
	Collected int

	// Duplicates counts documents discarded because their URL was
	// already in the collection.
	Duplicates int

	// Dropped counts documents discarded for empty content.
	Dropped int

	// SourcesSkipped counts configured sources skipped due to invalid
	// configuration or adapter failure.
	SourcesSkipped int

	// BySource breaks Collected down by provenance kind.
	BySource map[docgather.Source]int
}

// Run executes the pipeline over the configured sources. The run always
// tries to produce output from whatever succeeded; it returns an error
// only when every source yielded zero documents.
func (p *Pipeline) Run(ctx context.Context, sources []docgather.SourceConfig) (*Result, error) {
	runID := uuid.NewString
	if p.NewRunID != nil {
		runID = p.NewRunID
	}
	logger := p.logger().With("run", runID())

	result := &Result{BySource: make(map[docgather.Source]int)}
	var collected []*docgather.Document

	for _, cfg := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := cfg.Validate(); err != nil {
			logger.Warn("source skipped: invalid config", "source", cfg.Name, "err", err)
			result.SourcesSkipped++
			continue
		}

		adapter, ok := p.Adapters[cfg.Kind]
		if !ok {
			logger.Warn("source skipped: no adapter", "source", cfg.Name, "kind", cfg.Kind)
			result.SourcesSkipped++
			continue
		}

		logger.Info("source started", "source", cfg.Name, "kind", cfg.Kind)
		docs, err := adapter.Run(ctx, cfg)
		if err != nil {
			logger.Warn("source skipped: adapter failed", "source", cfg.Name, "err", err)
			result.SourcesSkipped++
			continue
		}
		logger.Info("source finished", "source", cfg.Name, "documents", len(docs))
		collected = append(collected, docs...)
	}

	final := p.aggregate(collected, result, logger)

	if len(final) == 0 {
		return nil, docgather.Errorf(docgather.EINTERNAL, "no documents collected from any source")
	}

	if err := p.Writer.WriteCollection(ctx, final); err != nil {
		return nil, fmt.Errorf("writing collection: %w", err)
	}

	result.Collected = len(final)
	logger.Info("run finished",
		"documents", result.Collected,
		"duplicates", result.Duplicates,
		"dropped", result.Dropped,
		"sources_skipped", result.SourcesSkipped,
	)
	return result, nil
}

// aggregate drops empty documents and deduplicates by URL, first seen
// wins. Identical content under two distinct URLs is kept but flagged,
// since it usually means a source scope is too wide.
func (p *Pipeline) aggregate(docs []*docgather.Document, result *Result, logger *slog.Logger) []*docgather.Document {
	seenURL := make(map[string]bool)
	seenHash := make(map[uint64]string)
	var final []*docgather.Document

	for _, doc := range docs {
		if doc.Content == "" {
			result.Dropped++
			continue
		}
		if seenURL[doc.URL] {
			result.Duplicates++
			continue
		}
		seenURL[doc.URL] = true

		hash := xxhash.Sum64String(doc.Content)
		if prev, ok := seenHash[hash]; ok {
			logger.Warn("identical content under two URLs", "url", doc.URL, "previous", prev)
		} else {
			seenHash[hash] = doc.URL
		}

		final = append(final, doc)
		result.BySource[doc.Source]++
	}

	return final
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
