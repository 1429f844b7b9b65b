package domain

import "time"

// IngestionResult is the envelope returned to the caller for every
// ingestion invocation. Exactly one of Reason (on failure) or Data
// (on success) is set.
type IngestionResult struct {
	// Success reports whether the whole source's collection is usable.
	Success bool `json:"success"`

	// Reason is a single human-readable failure description.
	// Empty on success.
	Reason string `json:"reason,omitempty"`

	// Data carries the run summary. Nil on failure.
	Data *IngestionData `json:"data,omitempty"`

	// Warnings surface best-effort fallbacks that did not fail the run,
	// such as a branch listing error that fell through to a guessed
	// default branch.
	Warnings []string `json:"warnings,omitempty"`
}

// IngestionData summarises a successful ingestion run.
type IngestionData struct {
	// SourceKey identifies the logical source (space key or owner/repo).
	SourceKey string `json:"sourceKey"`

	// Destination is the name of the collection the run wrote to.
	Destination string `json:"destination"`

	// Documents is the number of documents persisted.
	Documents int `json:"documents"`
}

// Failure builds a failed envelope with the given reason.
func Failure(reason string) IngestionResult {
	return IngestionResult{Success: false, Reason: reason}
}

// Run is one ledger entry recording an ingestion invocation,
// success or failure.
type Run struct {
	// ID is the unique run identifier.
	ID string

	// Kind is the classified source kind of the run's locator.
	// Empty when validation itself failed.
	Kind SourceKind

	// SourceKey identifies the logical source, when known.
	SourceKey string

	// Destination is the collection written, empty on failure.
	Destination string

	// Documents is the number of documents persisted.
	Documents int

	// Success mirrors the envelope's success flag.
	Success bool

	// Reason is the failure reason, empty on success.
	Reason string

	// StartedAt is when the invocation began.
	StartedAt time.Time

	// FinishedAt is when the invocation completed.
	FinishedAt time.Time
}
