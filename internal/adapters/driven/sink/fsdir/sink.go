// Package fsdir is a filesystem implementation of the DocumentSink port.
// Each collection is a directory under a configured root; each document is
// one JSON entry named by a slug of its title plus its ID. Entries are
// written to a temporary file and renamed into place so a partial write
// never corrupts sibling entries.
package fsdir

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.DocumentSink = (*Sink)(nil)

// Sink writes documents into per-collection directories under a root.
type Sink struct {
	root string
}

// New creates a sink rooted at the given directory. The root is an
// explicit constructor argument rather than ambient process state so the
// sink stays testable.
func New(root string) *Sink {
	return &Sink{root: root}
}

// Root returns the configured root directory.
func (s *Sink) Root() string {
	return s.root
}

// Persist writes one document into the collection, creating the
// collection directory on first use.
func (s *Sink) Persist(_ context.Context, collection string, doc domain.Document) error {
	dir := filepath.Join(s.root, collection)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create collection %s: %w", collection, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID, err)
	}

	name := entryName(doc)
	tmp := filepath.Join(dir, "."+name+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", doc.ID, err)
	}
	if err := os.Rename(tmp, filepath.Join(dir, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish document %s: %w", doc.ID, err)
	}
	return nil
}

// entryName names an entry by a slug of the title plus the document ID,
// avoiding collisions between same-titled documents.
func entryName(doc domain.Document) string {
	return fmt.Sprintf("%s-%s.json", slug.Make(doc.Title), doc.ID)
}
