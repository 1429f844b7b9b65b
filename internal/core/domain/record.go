package domain

// RawRecord is a connector's representation of one fetched content unit,
// prior to normalisation. Ephemeral: produced and consumed within a single
// ingestion run.
type RawRecord struct {
	// Title is the source-reported title. May be empty; the normaliser
	// falls back to the URL.
	Title string

	// URL is the canonical locator of the original content.
	URL string

	// Content is the text body. Records with empty or whitespace-only
	// content are skipped by the normaliser.
	Content string

	// Metadata contains connector-specific key-value pairs
	// (e.g. branch, path for repository files).
	Metadata map[string]string
}
