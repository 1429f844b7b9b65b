package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

// Ensure IngestService implements the interfaces.
var (
	_ driving.Ingestor  = (*IngestService)(nil)
	_ driving.RunLister = (*IngestService)(nil)
)

// IngestService coordinates one ingestion run per invocation:
// VALIDATE -> RESOLVE_VERSION (repo-kind) -> CREDENTIAL_CHECK -> FETCH ->
// NORMALIZE+PERSIST per record -> result envelope, with any stage's
// failure short-circuiting to a failed envelope.
type IngestService struct {
	connectors []driven.Connector
	sink       driven.DocumentSink
	tokenizer  driven.Tokenizer
	runs       driven.RunStore
}

// NewIngestService creates a new ingest service. Connectors are tried in
// the given order during validation; the first one whose locator shape
// matches wins. The run store is optional; nil disables the ledger.
func NewIngestService(
	connectors []driven.Connector,
	sink driven.DocumentSink,
	tokenizer driven.Tokenizer,
	runs driven.RunStore,
) *IngestService {
	return &IngestService{
		connectors: connectors,
		sink:       sink,
		tokenizer:  tokenizer,
		runs:       runs,
	}
}

// Ingest runs the full pipeline for one source. All pipeline failures are
// converted into the result envelope; no failure propagates as an error.
func (s *IngestService) Ingest(ctx context.Context, req driving.IngestRequest) domain.IngestionResult {
	started := time.Now()
	run := domain.Run{
		ID:        uuid.NewString(),
		StartedAt: started,
	}

	result := s.ingest(ctx, req, &run)

	run.Success = result.Success
	run.Reason = result.Reason
	run.FinishedAt = time.Now()
	if result.Data != nil {
		run.Destination = result.Data.Destination
		run.Documents = result.Data.Documents
	}
	s.recordRun(ctx, run)

	return result
}

// Runs returns the most recent ingestion runs, newest first.
func (s *IngestService) Runs(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runs == nil {
		return nil, nil
	}
	return s.runs.List(ctx, limit)
}

// ingest is the linear pipeline. It fills the run's source identity as
// stages succeed so failed runs still carry what was known at the time.
func (s *IngestService) ingest(
	ctx context.Context, req driving.IngestRequest, run *domain.Run,
) domain.IngestionResult {
	// VALIDATE: first connector whose shape matches wins.
	var conn driven.Connector
	var loc *domain.SourceLocator
	for _, c := range s.connectors {
		if l, err := c.ParseLocator(req.URL); err == nil {
			conn, loc = c, l
			break
		}
	}
	if conn == nil {
		return domain.Failure(s.validationReason())
	}
	run.Kind = loc.Kind

	// RESOLVE_VERSION: repository sources only. Best effort: a listing
	// failure falls through to a default guess and surfaces as a warning.
	var version domain.VersionRef
	var warnings []string
	if loc.Kind.IsRepository() {
		version, warnings = conn.ResolveVersion(ctx, *loc, req.Branch)
	}

	// CREDENTIAL_CHECK: before any fetch network call.
	if err := conn.CheckCredentials(req.Credentials); err != nil {
		return domain.Failure(err.Error())
	}

	prov := conn.Provenance(*loc, version)
	run.SourceKey = prov.SourceKey
	collection := collectionName(prov)

	logger.Section(fmt.Sprintf("Ingesting %s into %s", prov.SourceKey, collection))

	// FETCH + NORMALIZE + PERSIST per record.
	records, errs := conn.Fetch(ctx, *loc, req.Credentials, version)

	persisted := 0
	writeFailures := 0
	for rec := range records {
		doc, ok := normalize(rec, prov, s.tokenizer, time.Now())
		if !ok {
			continue
		}
		// A failed write skips this document; the run continues and
		// fails only if nothing at all was persisted.
		if err := s.sink.Persist(ctx, collection, doc); err != nil {
			logger.Warn("persist %s: %v", doc.Title, err)
			writeFailures++
			continue
		}
		logger.Info("Saving %s to %s", doc.Title, collection)
		persisted++
	}

	if err := <-errs; err != nil {
		return withWarnings(domain.Failure(stripErrorFraming(err.Error())), warnings)
	}

	if persisted == 0 {
		if writeFailures > 0 {
			return withWarnings(domain.Failure(fmt.Sprintf(
				"all %d document writes failed", writeFailures)), warnings)
		}
		return withWarnings(domain.Failure("No content found for that source."), warnings)
	}

	return withWarnings(domain.IngestionResult{
		Success: true,
		Data: &domain.IngestionData{
			SourceKey:   prov.SourceKey,
			Destination: collection,
			Documents:   persisted,
		},
	}, warnings)
}

// validationReason enumerates every connector's accepted shapes.
func (s *IngestService) validationReason() string {
	var shapes []string
	for _, c := range s.connectors {
		shapes = append(shapes, c.AcceptedShapes()...)
	}
	return fmt.Sprintf("Source URL is not in the expected format of one of %s.",
		strings.Join(shapes, " or "))
}

// recordRun appends to the ledger. Ledger failures are logged, never
// surfaced as run failures.
func (s *IngestService) recordRun(ctx context.Context, run domain.Run) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Record(ctx, run); err != nil {
		logger.Warn("record run %s: %v", run.ID, err)
	}
}

// collectionName derives a collision-resistant destination collection
// name. The random suffix keeps concurrent runs of the same logical
// source from overwriting each other.
func collectionName(prov domain.Provenance) string {
	suffix := uuid.NewString()[:4]
	return slug.Make(fmt.Sprintf("%s-%s", prov.CollectionBase, suffix))
}

// stripErrorFraming removes a leading "Error:" framing prefix from fetch
// error messages when the underlying call wrapped it that way; other
// messages pass through unmodified.
func stripErrorFraming(msg string) string {
	if _, after, ok := strings.Cut(msg, "Error:"); ok {
		return strings.TrimSpace(after)
	}
	return msg
}

// withWarnings attaches resolver warnings to an envelope.
func withWarnings(res domain.IngestionResult, warnings []string) domain.IngestionResult {
	res.Warnings = warnings
	return res
}
