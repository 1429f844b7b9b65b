package driven

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// Connector fetches raw records from one external source family.
// Each source family (confluence, github, ...) implements this interface;
// adding a new family means adding one implementation, not changing the
// orchestrator's control flow.
type Connector interface {
	// Type returns the connector type identifier (e.g. "confluence").
	Type() string

	// AcceptedShapes returns the human-readable locator shapes this
	// connector accepts, used to build validation failure messages.
	AcceptedShapes() []string

	// ParseLocator classifies a raw locator string against this
	// connector's shapes. Returns domain.ErrInvalidLocator when no
	// shape matches. Pure over its input.
	ParseLocator(raw string) (*domain.SourceLocator, error)

	// CheckCredentials verifies the required authentication material is
	// present. Called before any network call. Returns an error wrapping
	// domain.ErrCredentialsMissing when it is not.
	CheckCredentials(creds domain.Credentials) error

	// ResolveVersion resolves a requested version/branch to a valid one.
	// A listing failure is treated as an empty set and falls through to
	// the conventional default; it never fails the run, but is surfaced
	// through the returned warnings. Connectors without versions return
	// the zero VersionRef.
	ResolveVersion(ctx context.Context, loc domain.SourceLocator, requested string) (domain.VersionRef, []string)

	// Fetch retrieves raw records for a validated source.
	// Records are produced incrementally on the first channel; a fetch
	// failure is sent on the second. Both channels are closed when
	// production ends.
	Fetch(ctx context.Context, loc domain.SourceLocator, creds domain.Credentials, version domain.VersionRef) (<-chan domain.RawRecord, <-chan error)

	// Provenance derives the source identity documents are tagged with.
	Provenance(loc domain.SourceLocator, version domain.VersionRef) domain.Provenance
}
