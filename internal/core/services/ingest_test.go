package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ingest-cli/internal/tokenizer"
)

// mockConnector is a scriptable Connector for orchestration tests.
type mockConnector struct {
	kind       domain.SourceKind
	shapes     []string
	parseErr   error
	credsErr   error
	version    domain.VersionRef
	warnings   []string
	records    []domain.RawRecord
	fetchErr   error
	fetchCalls int
}

func (m *mockConnector) Type() string             { return "mock" }
func (m *mockConnector) AcceptedShapes() []string { return m.shapes }

func (m *mockConnector) ParseLocator(raw string) (*domain.SourceLocator, error) {
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return &domain.SourceLocator{Kind: m.kind, BaseURL: raw}, nil
}

func (m *mockConnector) CheckCredentials(domain.Credentials) error {
	return m.credsErr
}

func (m *mockConnector) ResolveVersion(
	context.Context, domain.SourceLocator, string,
) (domain.VersionRef, []string) {
	return m.version, m.warnings
}

func (m *mockConnector) Fetch(
	_ context.Context, _ domain.SourceLocator, _ domain.Credentials, _ domain.VersionRef,
) (<-chan domain.RawRecord, <-chan error) {
	m.fetchCalls++

	records := make(chan domain.RawRecord)
	errs := make(chan error, 1)
	go func() {
		defer close(records)
		defer close(errs)
		for _, rec := range m.records {
			records <- rec
		}
		if m.fetchErr != nil {
			errs <- m.fetchErr
		}
	}()
	return records, errs
}

func (m *mockConnector) Provenance(domain.SourceLocator, domain.VersionRef) domain.Provenance {
	return domain.Provenance{
		Author:         "acme",
		SourceLabel:    "ACME Wiki",
		Scheme:         "confluence",
		SourceKey:      "ENG",
		CollectionBase: "acme-confluence",
	}
}

// failingSink rejects every write.
type failingSink struct{}

func (failingSink) Persist(context.Context, string, domain.Document) error {
	return errors.New("disk full")
}

func TestIngest_Success(t *testing.T) {
	conn := &mockConnector{
		kind:   domain.KindHostedWiki,
		shapes: []string{"https://<subdomain>.atlassian.net/wiki/spaces/<space>"},
		records: []domain.RawRecord{
			{Title: "Page One", URL: "https://acme.atlassian.net/p/1", Content: "alpha beta"},
			{Title: "Page Two", URL: "https://acme.atlassian.net/p/2", Content: "gamma"},
			{Title: "Empty", URL: "https://acme.atlassian.net/p/3", Content: "   "},
		},
	}
	sink := memory.NewDocumentSink()
	runs := memory.NewRunStore()
	svc := NewIngestService([]driven.Connector{conn}, sink, tokenizer.New(), runs)

	result := svc.Ingest(context.Background(), driving.IngestRequest{
		URL:         "https://acme.atlassian.net/wiki/spaces/ENG",
		Credentials: domain.Credentials{Principal: "me@acme.io", Secret: "tok"},
	})

	require.True(t, result.Success)
	assert.Empty(t, result.Reason)
	require.NotNil(t, result.Data)
	assert.Equal(t, "ENG", result.Data.SourceKey)
	assert.Equal(t, 2, result.Data.Documents)
	assert.True(t, strings.HasPrefix(result.Data.Destination, "acme-confluence-"),
		"destination %q should carry the collection base", result.Data.Destination)

	docs := sink.Collection(result.Data.Destination)
	require.Len(t, docs, 2)
	assert.Equal(t, "Page One", docs[0].Title)
	assert.Equal(t, "acme", docs[0].DocAuthor)

	// The ledger records the successful run.
	recorded, err := runs.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.True(t, recorded[0].Success)
	assert.Equal(t, "ENG", recorded[0].SourceKey)
	assert.Equal(t, 2, recorded[0].Documents)
	assert.Equal(t, result.Data.Destination, recorded[0].Destination)
}

func TestIngest_InvalidURL(t *testing.T) {
	conn := &mockConnector{
		parseErr: domain.ErrInvalidLocator,
		shapes: []string{
			"https://<subdomain>.atlassian.net/wiki/spaces/<space>",
			"https://github.com/<owner>/<repo>",
		},
	}
	svc := NewIngestService([]driven.Connector{conn}, memory.NewDocumentSink(), tokenizer.New(), nil)

	result := svc.Ingest(context.Background(), driving.IngestRequest{URL: "ftp://nope"})

	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Equal(t,
		"Source URL is not in the expected format of one of "+
			"https://<subdomain>.atlassian.net/wiki/spaces/<space> or "+
			"https://github.com/<owner>/<repo>.",
		result.Reason)
	assert.Equal(t, 0, conn.fetchCalls)
}

func TestIngest_MissingCredentials(t *testing.T) {
	conn := &mockConnector{
		kind:     domain.KindHostedWiki,
		shapes:   []string{"https://<subdomain>.atlassian.net/wiki/spaces/<space>"},
		credsErr: errors.New("you need a personal access token"),
	}
	svc := NewIngestService([]driven.Connector{conn}, memory.NewDocumentSink(), tokenizer.New(), nil)

	result := svc.Ingest(context.Background(), driving.IngestRequest{
		URL: "https://acme.atlassian.net/wiki/spaces/ENG",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "you need a personal access token", result.Reason)
	assert.Equal(t, 0, conn.fetchCalls, "failed credential check must not reach fetch")
}

func TestIngest_FetchErrorStripsFraming(t *testing.T) {
	conn := &mockConnector{
		kind:     domain.KindHostedWiki,
		shapes:   []string{"shape"},
		fetchErr: errors.New("Error: space not found"),
	}
	svc := NewIngestService([]driven.Connector{conn}, memory.NewDocumentSink(), tokenizer.New(), nil)

	result := svc.Ingest(context.Background(), driving.IngestRequest{URL: "whatever"})

	assert.False(t, result.Success)
	assert.Equal(t, "space not found", result.Reason)
}

func TestIngest_NoContent(t *testing.T) {
	conn := &mockConnector{
		kind:   domain.KindHostedWiki,
		shapes: []string{"shape"},
		records: []domain.RawRecord{
			{Title: "Blank", Content: "\n\t"},
		},
	}
	svc := NewIngestService([]driven.Connector{conn}, memory.NewDocumentSink(), tokenizer.New(), nil)

	result := svc.Ingest(context.Background(), driving.IngestRequest{URL: "whatever"})

	assert.False(t, result.Success)
	assert.Equal(t, "No content found for that source.", result.Reason)
}

func TestIngest_AllWritesFailed(t *testing.T) {
	conn := &mockConnector{
		kind:   domain.KindHostedWiki,
		shapes: []string{"shape"},
		records: []domain.RawRecord{
			{Title: "One", Content: "alpha"},
			{Title: "Two", Content: "beta"},
		},
	}
	svc := NewIngestService([]driven.Connector{conn}, failingSink{}, tokenizer.New(), nil)

	result := svc.Ingest(context.Background(), driving.IngestRequest{URL: "whatever"})

	assert.False(t, result.Success)
	assert.Equal(t, "all 2 document writes failed", result.Reason)
}

func TestIngest_VersionWarningsSurface(t *testing.T) {
	conn := &mockConnector{
		kind:     domain.KindCodeRepository,
		shapes:   []string{"https://github.com/<owner>/<repo>"},
		version:  "master",
		warnings: []string{"branch listing failed; falling back to a default branch guess"},
		records: []domain.RawRecord{
			{Title: "README.md", Content: "hello"},
		},
	}
	svc := NewIngestService([]driven.Connector{conn}, memory.NewDocumentSink(), tokenizer.New(), nil)

	result := svc.Ingest(context.Background(), driving.IngestRequest{
		URL:    "https://github.com/acme/widget",
		Branch: "feature-x",
	})

	require.True(t, result.Success)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "branch listing failed")
}

func TestIngest_RerunsGetDistinctCollections(t *testing.T) {
	conn := &mockConnector{
		kind:   domain.KindHostedWiki,
		shapes: []string{"shape"},
		records: []domain.RawRecord{
			{Title: "Page", Content: "body"},
		},
	}
	sink := memory.NewDocumentSink()
	svc := NewIngestService([]driven.Connector{conn}, sink, tokenizer.New(), nil)

	first := svc.Ingest(context.Background(), driving.IngestRequest{URL: "whatever"})
	second := svc.Ingest(context.Background(), driving.IngestRequest{URL: "whatever"})

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.NotEqual(t, first.Data.Destination, second.Data.Destination)
	assert.Len(t, sink.Collections(), 2)
}

func TestIngest_RecordsFailedRuns(t *testing.T) {
	conn := &mockConnector{
		kind:     domain.KindHostedWiki,
		shapes:   []string{"shape"},
		fetchErr: errors.New("unreachable"),
	}
	runs := memory.NewRunStore()
	svc := NewIngestService([]driven.Connector{conn}, memory.NewDocumentSink(), tokenizer.New(), runs)

	result := svc.Ingest(context.Background(), driving.IngestRequest{URL: "whatever"})
	require.False(t, result.Success)

	recorded, err := runs.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.False(t, recorded[0].Success)
	assert.Equal(t, "unreachable", recorded[0].Reason)
	assert.Equal(t, domain.KindHostedWiki, recorded[0].Kind)
	assert.False(t, recorded[0].StartedAt.IsZero())
	assert.False(t, recorded[0].FinishedAt.Before(recorded[0].StartedAt))
}

func TestStripErrorFraming(t *testing.T) {
	assert.Equal(t, "space not found", stripErrorFraming("Error: space not found"))
	assert.Equal(t, "plain message", stripErrorFraming("plain message"))
	assert.Equal(t, "wrapped", stripErrorFraming("fetch failed with Error: wrapped"))
}
