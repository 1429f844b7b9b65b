package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// timeLayout is RFC 3339 UTC with fixed nanosecond width. The constant
// width keeps lexicographic ORDER BY on the stored strings chronological;
// RFC3339Nano trims trailing fractional zeros and breaks that.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Record appends one run entry.
func (s *runStore) Record(ctx context.Context, run domain.Run) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, kind, source_key, destination, documents, success, reason, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		string(run.Kind),
		run.SourceKey,
		run.Destination,
		run.Documents,
		run.Success,
		run.Reason,
		run.StartedAt.UTC().Format(timeLayout),
		run.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, kind, source_key, destination, documents, success, reason, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var run domain.Run
		var kind, startedAt, finishedAt string
		if err := rows.Scan(
			&run.ID, &kind, &run.SourceKey, &run.Destination,
			&run.Documents, &run.Success, &run.Reason,
			&startedAt, &finishedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Kind = domain.SourceKind(kind)
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			run.StartedAt = t
		}
		if t, err := time.Parse(time.RFC3339Nano, finishedAt); err == nil {
			run.FinishedAt = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
