package driven

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// RunStore records ingestion runs for audit and inspection.
// Ledger failures are logged by the caller, never surfaced as run failures.
type RunStore interface {
	// Record appends one run entry.
	Record(ctx context.Context, run domain.Run) error

	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.Run, error)
}
