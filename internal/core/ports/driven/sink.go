package driven

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// DocumentSink persists normalised documents into named collections.
// A collection is created on first use. Each document is one
// self-contained, atomically visible entry; a partial write of one
// document must not corrupt sibling entries.
type DocumentSink interface {
	// Persist writes one document into the collection.
	Persist(ctx context.Context, collection string, doc domain.Document) error
}
