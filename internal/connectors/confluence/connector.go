package confluence

import (
	"context"
	"fmt"
	"net/http"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector implements the Connector port for Confluence wiki spaces.
type Connector struct {
	httpClient *http.Client
}

// Option configures the connector.
type Option func(*Connector)

// WithHTTPClient overrides the HTTP client. Used in tests.
func WithHTTPClient(c *http.Client) Option {
	return func(conn *Connector) {
		conn.httpClient = c
	}
}

// New creates a new Confluence connector.
func New(opts ...Option) *Connector {
	c := &Connector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "confluence"
}

// AcceptedShapes returns the locator shapes this connector accepts.
func (c *Connector) AcceptedShapes() []string {
	shapes := make([]string, len(acceptedShapes))
	copy(shapes, acceptedShapes)
	return shapes
}

// ParseLocator classifies a Confluence space URL.
func (c *Connector) ParseLocator(raw string) (*domain.SourceLocator, error) {
	return ParseSpaceURL(raw)
}

// CheckCredentials verifies a secret is present. Confluence accepts either
// username plus API token (basic auth) or a bare personal access token.
func (c *Connector) CheckCredentials(creds domain.Credentials) error {
	if creds.Secret == "" {
		return fmt.Errorf("%w: you need either a username and access token, "+
			"or a personal access token (PAT), to use the Confluence connector",
			domain.ErrCredentialsMissing)
	}
	return nil
}

// ResolveVersion is a no-op: wiki spaces are not versioned.
func (c *Connector) ResolveVersion(_ context.Context, _ domain.SourceLocator, _ string) (domain.VersionRef, []string) {
	return "", nil
}

// Fetch enumerates every page in the space and yields one raw record per
// page, with the storage-format HTML body converted to markdown text.
// The page set is collected in full before records are produced.
func (c *Connector) Fetch(
	ctx context.Context, loc domain.SourceLocator, creds domain.Credentials, _ domain.VersionRef,
) (<-chan domain.RawRecord, <-chan error) {
	records := make(chan domain.RawRecord)
	errs := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errs)

		// Credential check precedes any network call.
		if err := c.CheckCredentials(creds); err != nil {
			errs <- err
			return
		}

		client := NewClient(loc.BaseURL, creds, c.httpClient)
		logger.Info("Working Confluence %s", loc.BaseURL)

		pages, err := client.ListSpacePages(ctx, loc.Field("spaceKey"))
		if err != nil {
			errs <- err
			return
		}

		for _, page := range pages {
			select {
			case <-ctx.Done():
				return
			case records <- domain.RawRecord{
				Title:   page.Title,
				URL:     page.URL,
				Content: pageText(page.BodyHTML),
			}:
			}
		}
	}()

	return records, errs
}

// Provenance derives the source identity for a wiki locator.
func (c *Connector) Provenance(loc domain.SourceLocator, _ domain.VersionRef) domain.Provenance {
	author := spaceAuthor(loc)
	return domain.Provenance{
		Author:         author,
		SourceLabel:    fmt.Sprintf("%s Confluence", author),
		Scheme:         "confluence",
		SourceKey:      loc.Field("spaceKey"),
		CollectionBase: fmt.Sprintf("%s-confluence", author),
		URLSuffix:      ".page",
	}
}

// pageText converts storage-format HTML to markdown text.
// Falls back to the raw body when conversion fails; the normaliser still
// gets usable text either way.
func pageText(bodyHTML string) string {
	md, err := htmltomarkdown.ConvertString(bodyHTML)
	if err != nil {
		logger.Warn("html conversion failed, keeping raw body: %v", err)
		return bodyHTML
	}
	return md
}
