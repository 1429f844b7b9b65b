package domain

// Document represents the canonical ingested unit written to a destination
// collection. It is created once, at normalisation, and is immutable
// thereafter.
//
// The JSON field names are part of the on-disk contract consumed by the
// downstream retrieval subsystems and must not change.
type Document struct {
	// ID is the globally unique identifier, generated at normalisation time.
	ID string `json:"id"`

	// URL is the canonical locator of the original content, kind-tagged
	// (e.g. suffixed with ".page" for wiki pages).
	URL string `json:"url"`

	// Title is the human-readable title, falling back to URL when the
	// source provides none.
	Title string `json:"title"`

	// Description is secondary human-readable metadata.
	Description string `json:"description"`

	// DocAuthor is the provenance owner (wiki subdomain or repo owner).
	DocAuthor string `json:"docAuthor"`

	// DocSource is the human-readable source label.
	DocSource string `json:"docSource"`

	// ChunkSource is a scheme-qualified URI (<kind>://<originalUrl>)
	// tracing the document back to origin for later re-fetch/re-chunk.
	ChunkSource string `json:"chunkSource"`

	// Published is the ingestion timestamp as a locale-formatted string.
	Published string `json:"published"`

	// WordCount is the whitespace-delimited token count of PageContent.
	WordCount int `json:"wordCount"`

	// PageContent is the full normalised text body. Never empty: records
	// with empty content are dropped before normalisation.
	PageContent string `json:"pageContent"`

	// TokenCountEstimate is the external tokenizer's estimate for
	// PageContent.
	TokenCountEstimate int `json:"token_count_estimate"`
}
