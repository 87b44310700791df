package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wczarnecki/docgather"
)

// Ensure LoggingAdapter implements docgather.Adapter.
var _ docgather.Adapter = (*LoggingAdapter)(nil)

// LoggingAdapter wraps an Adapter with per-source run logging.
type LoggingAdapter struct {
	next   docgather.Adapter
	logger *slog.Logger
}

// NewLoggingAdapter creates a new LoggingAdapter.
func NewLoggingAdapter(next docgather.Adapter, logger *slog.Logger) *LoggingAdapter {
	return &LoggingAdapter{next: next, logger: logger}
}

// Run delegates to the wrapped adapter and logs the outcome.
func (a *LoggingAdapter) Run(ctx context.Context, cfg docgather.SourceConfig) (docs []*docgather.Document, err error) {
	defer func(begin time.Time) {
		a.logger.Info("adapter run",
			"source", cfg.Name,
			"kind", cfg.Kind,
			"documents", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Run(ctx, cfg)
}
