// Package memory provides in-memory implementations of the persistence
// ports. Used in tests and for dry-run ingestions where nothing should
// touch the filesystem.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure DocumentSink implements the interface.
var _ driven.DocumentSink = (*DocumentSink)(nil)

// DocumentSink is an in-memory implementation of driven.DocumentSink.
type DocumentSink struct {
	mu          sync.RWMutex
	collections map[string][]domain.Document
}

// NewDocumentSink creates a new in-memory document sink.
func NewDocumentSink() *DocumentSink {
	return &DocumentSink{
		collections: make(map[string][]domain.Document),
	}
}

// Persist appends the document to the named collection.
func (s *DocumentSink) Persist(_ context.Context, collection string, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], doc)
	return nil
}

// Collection returns the documents persisted to a collection.
func (s *DocumentSink) Collection(name string) []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, len(s.collections[name]))
	copy(docs, s.collections[name])
	return docs
}

// Collections returns the names of all collections written so far.
func (s *DocumentSink) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names
}
