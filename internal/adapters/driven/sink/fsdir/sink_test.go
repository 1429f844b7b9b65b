package fsdir

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

func testDocument(id, title string) domain.Document {
	return domain.Document{
		ID:                 id,
		URL:                "https://acme.atlassian.net/wiki/spaces/ENG/pages/42.page",
		Title:              title,
		Description:        title,
		DocAuthor:          "acme",
		DocSource:          "ACME Confluence",
		ChunkSource:        "confluence://https://acme.atlassian.net/wiki/spaces/ENG/pages/42",
		Published:          "3/9/2026, 2:05:07 PM",
		WordCount:          2,
		PageContent:        "hello world",
		TokenCountEstimate: 3,
	}
}

func TestSink_Persist(t *testing.T) {
	root := t.TempDir()
	sink := New(root)

	doc := testDocument("doc-1", "Release Checklist")
	require.NoError(t, sink.Persist(context.Background(), "acme-confluence-ab12", doc))

	path := filepath.Join(root, "acme-confluence-ab12", "release-checklist-doc-1.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.Document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, doc, got)

	// The JSON keys follow the ingestion document schema.
	assert.Contains(t, string(data), `"token_count_estimate"`)
	assert.Contains(t, string(data), `"docAuthor"`)
	assert.Contains(t, string(data), `"pageContent"`)
}

func TestSink_Persist_NoTempLeftovers(t *testing.T) {
	root := t.TempDir()
	sink := New(root)

	require.NoError(t, sink.Persist(context.Background(), "col", testDocument("a", "One")))
	require.NoError(t, sink.Persist(context.Background(), "col", testDocument("b", "Two")))

	entries, err := os.ReadDir(filepath.Join(root, "col"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "leftover temp file %s", entry.Name())
	}
}

func TestSink_Persist_SameTitleDistinctEntries(t *testing.T) {
	root := t.TempDir()
	sink := New(root)

	require.NoError(t, sink.Persist(context.Background(), "col", testDocument("a", "Page")))
	require.NoError(t, sink.Persist(context.Background(), "col", testDocument("b", "Page")))

	entries, err := os.ReadDir(filepath.Join(root, "col"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEntryName(t *testing.T) {
	name := entryName(testDocument("123", "Hello, World!"))
	assert.Equal(t, "hello-world-123.json", name)
}
