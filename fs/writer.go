// Package fs persists document collections to the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wczarnecki/docgather"
)

// Ensure Writer implements docgather.CollectionWriter at compile time.
var _ docgather.CollectionWriter = (*Writer)(nil)

// Writer implements docgather.CollectionWriter with atomic replace
// semantics. The collection is written to a temporary file next to the
// target, then moved into place, so readers never observe a partial file.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting path. An existing file at path is
// replaced on the next successful write.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteCollection serializes docs as an indented JSON array and replaces
// the target file.
func (w *Writer) WriteCollection(ctx context.Context, docs []*docgather.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if docs == nil {
		docs = []*docgather.Document{}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return docgather.Errorf(docgather.EINTERNAL, "encoding collection: %v", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return docgather.Errorf(docgather.EINTERNAL, "creating output directory %q: %v", dir, err)
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return docgather.Errorf(docgather.EINTERNAL, "writing %q: %v", tmp, err)
	}

	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return docgather.Errorf(docgather.EINTERNAL, "replacing %q: %v", w.path, err)
	}
	return nil
}
