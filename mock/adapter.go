package mock

import (
	"context"

	"github.com/wczarnecki/docgather"
)

var _ docgather.Adapter = (*Adapter)(nil)

// Adapter is a mock implementation of docgather.Adapter.
type Adapter struct {
	RunFn func(ctx context.Context, cfg docgather.SourceConfig) ([]*docgather.Document, error)
}

func (a *Adapter) Run(ctx context.Context, cfg docgather.SourceConfig) ([]*docgather.Document, error) {
	return a.RunFn(ctx, cfg)
}
