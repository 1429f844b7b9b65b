package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driving"
)

// fakeIngestor records the last request and replies with a canned result.
type fakeIngestor struct {
	lastReq driving.IngestRequest
	result  domain.IngestionResult
}

func (f *fakeIngestor) Ingest(_ context.Context, req driving.IngestRequest) domain.IngestionResult {
	f.lastReq = req
	return f.result
}

type fakeRunLister struct {
	runs []domain.Run
}

func (f *fakeRunLister) Runs(context.Context, int) ([]domain.Run, error) {
	return f.runs, nil
}

// execute runs the command tree against captured output buffers.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		ingestUsername, ingestToken, ingestBranch, ingestJSON = "", "", "", false
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ingest-cli version 1.2.3\n", out)
}

func TestIngestConfluence_Success(t *testing.T) {
	fake := &fakeIngestor{result: domain.IngestionResult{
		Success: true,
		Data: &domain.IngestionData{
			SourceKey:   "ENG",
			Destination: "acme-confluence-ab12",
			Documents:   4,
		},
	}}
	SetIngestor(fake)

	out, _, err := execute(t, "ingest", "confluence",
		"https://acme.atlassian.net/wiki/spaces/ENG",
		"--username", "me@acme.io", "--token", "tok")
	require.NoError(t, err)

	assert.Equal(t, "https://acme.atlassian.net/wiki/spaces/ENG", fake.lastReq.URL)
	assert.Equal(t, "me@acme.io", fake.lastReq.Credentials.Principal)
	assert.Equal(t, "tok", fake.lastReq.Credentials.Secret)
	assert.Contains(t, out, "Ingested 4 documents from ENG into acme-confluence-ab12")
}

func TestIngestGithub_PassesBranch(t *testing.T) {
	fake := &fakeIngestor{result: domain.IngestionResult{
		Success: true,
		Data:    &domain.IngestionData{SourceKey: "acme/widget", Destination: "d", Documents: 1},
	}}
	SetIngestor(fake)

	_, _, err := execute(t, "ingest", "github",
		"https://github.com/acme/widget", "--branch", "develop")
	require.NoError(t, err)
	assert.Equal(t, "develop", fake.lastReq.Branch)
}

func TestIngest_FailureReturnsError(t *testing.T) {
	fake := &fakeIngestor{result: domain.Failure("No content found for that source.")}
	SetIngestor(fake)

	_, _, err := execute(t, "ingest", "github", "https://github.com/acme/widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No content found for that source.")
}

func TestIngest_JSONOutput(t *testing.T) {
	fake := &fakeIngestor{result: domain.IngestionResult{
		Success: true,
		Data: &domain.IngestionData{
			SourceKey:   "acme/widget",
			Destination: "acme-widget-main-github-ab12",
			Documents:   2,
		},
		Warnings: []string{"branch listing failed"},
	}}
	SetIngestor(fake)

	out, _, err := execute(t, "ingest", "github",
		"https://github.com/acme/widget", "--json")
	require.NoError(t, err)

	var envelope domain.IngestionResult
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Data)
	assert.Equal(t, 2, envelope.Data.Documents)
	assert.Equal(t, []string{"branch listing failed"}, envelope.Warnings)
}

func TestIngest_WarningsPrintedToStderr(t *testing.T) {
	fake := &fakeIngestor{result: domain.IngestionResult{
		Success:  true,
		Data:     &domain.IngestionData{SourceKey: "s", Destination: "d", Documents: 1},
		Warnings: []string{"branch listing failed; guessed master"},
	}}
	SetIngestor(fake)

	_, errOut, err := execute(t, "ingest", "github", "https://github.com/acme/widget")
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning: branch listing failed; guessed master")
}

func TestRunsCommand(t *testing.T) {
	SetRunLister(&fakeRunLister{runs: []domain.Run{
		{
			ID:          "run-1",
			SourceKey:   "ENG",
			Destination: "acme-confluence-ab12",
			Documents:   3,
			Success:     true,
		},
		{
			ID:        "run-2",
			SourceKey: "acme/widget",
			Success:   false,
			Reason:    "repository not found",
		},
	}})

	out, _, err := execute(t, "runs")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "3 documents -> acme-confluence-ab12")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "repository not found")
}

func TestRunsCommand_Empty(t *testing.T) {
	SetRunLister(&fakeRunLister{})

	out, _, err := execute(t, "runs")
	require.NoError(t, err)
	assert.Contains(t, out, "No ingestion runs recorded.")
}
