package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.Run
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Record appends one run entry.
func (s *RunStore) Record(_ context.Context, run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// List returns the most recent runs, newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.runs)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.Run, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.runs[i])
	}
	return out, nil
}
