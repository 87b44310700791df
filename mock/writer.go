package mock

import (
	"context"

	"github.com/wczarnecki/docgather"
)

var _ docgather.CollectionWriter = (*CollectionWriter)(nil)

// CollectionWriter is a mock implementation of docgather.CollectionWriter.
type CollectionWriter struct {
	WriteCollectionFn func(ctx context.Context, docs []*docgather.Document) error
}

func (w *CollectionWriter) WriteCollection(ctx context.Context, docs []*docgather.Document) error {
	return w.WriteCollectionFn(ctx, docs)
}
