package driving

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// IngestRequest carries the caller-supplied inputs for one ingestion run.
type IngestRequest struct {
	// URL is the raw user-supplied source locator.
	URL string

	// Credentials is kind-appropriate authentication material.
	Credentials domain.Credentials

	// Branch is the requested version for repository sources. Optional.
	Branch string
}

// Ingestor runs the ingestion pipeline for one source.
type Ingestor interface {
	// Ingest validates, fetches, normalises and persists one source.
	// All pipeline failures are converted into the result envelope;
	// no failure propagates as an error to the caller.
	Ingest(ctx context.Context, req IngestRequest) domain.IngestionResult
}

// RunLister exposes the ingestion run ledger.
type RunLister interface {
	// Runs returns the most recent ingestion runs, newest first.
	Runs(ctx context.Context, limit int) ([]domain.Run, error)
}
