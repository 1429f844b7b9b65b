package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// publishedFormat renders the ingestion timestamp as a locale-style string.
const publishedFormat = "1/2/2006, 3:04:05 PM"

// normalize maps one raw record into the canonical Document, computing the
// derived fields. Records with empty or whitespace-only content are
// skipped: the second return is false and no Document is produced.
// Pure aside from ID and timestamp generation.
func normalize(
	raw domain.RawRecord, prov domain.Provenance, tok driven.Tokenizer, now time.Time,
) (domain.Document, bool) {
	if strings.TrimSpace(raw.Content) == "" {
		return domain.Document{}, false
	}

	title := raw.Title
	if title == "" {
		title = raw.URL
	}

	return domain.Document{
		ID:                 uuid.NewString(),
		URL:                raw.URL + prov.URLSuffix,
		Title:              title,
		Description:        title,
		DocAuthor:          prov.Author,
		DocSource:          prov.SourceLabel,
		ChunkSource:        prov.Scheme + "://" + raw.URL,
		Published:          now.Format(publishedFormat),
		WordCount:          len(strings.Fields(raw.Content)),
		PageContent:        raw.Content,
		TokenCountEstimate: tok.CountTokens(raw.Content),
	}, true
}
