package github

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

const (
	// FetchConcurrency bounds the number of outstanding blob fetches.
	FetchConcurrency = 5

	// MaxFileSize is the largest blob fetched (1 MiB).
	MaxFileSize = 1024 * 1024
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector implements the Connector port for GitHub repositories.
type Connector struct {
	// apiBaseURL overrides the GitHub API root. Used in tests.
	apiBaseURL string
}

// Option configures the connector.
type Option func(*Connector)

// WithAPIBaseURL points the connector at a different API root.
func WithAPIBaseURL(base string) Option {
	return func(c *Connector) {
		c.apiBaseURL = base
	}
}

// New creates a new GitHub connector.
func New(opts ...Option) *Connector {
	c := &Connector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "github"
}

// AcceptedShapes returns the locator shapes this connector accepts.
func (c *Connector) AcceptedShapes() []string {
	shapes := make([]string, len(acceptedShapes))
	copy(shapes, acceptedShapes)
	return shapes
}

// ParseLocator classifies a GitHub repository URL.
func (c *Connector) ParseLocator(raw string) (*domain.SourceLocator, error) {
	return ParseRepoURL(raw)
}

// CheckCredentials always passes: public repositories are fetchable
// without a token. A missing token only lowers the rate limit; private
// repositories surface a not-found error at fetch time.
func (c *Connector) CheckCredentials(_ domain.Credentials) error {
	return nil
}

// ResolveVersion resolves the requested branch via the branch listing API.
func (c *Connector) ResolveVersion(
	ctx context.Context, loc domain.SourceLocator, requested string,
) (domain.VersionRef, []string) {
	client := c.newClient(ctx, "")
	return ResolveBranch(ctx, client, loc.Field("owner"), loc.Field("repo"), requested)
}

// Fetch retrieves the top level of one branch's file tree and yields one
// raw record per readable text file. Blob fetches fan out with at most
// FetchConcurrency outstanding at once; unreadable or unrecognised files
// are skipped rather than failing the run.
func (c *Connector) Fetch(
	ctx context.Context, loc domain.SourceLocator, creds domain.Credentials, version domain.VersionRef,
) (<-chan domain.RawRecord, <-chan error) {
	records := make(chan domain.RawRecord)
	errs := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errs)

		owner, repo := loc.Field("owner"), loc.Field("repo")
		client := c.newClient(ctx, creds.Secret)

		tree, err := client.GetTree(ctx, owner, repo, string(version))
		if err != nil {
			errs <- err
			return
		}

		sem := make(chan struct{}, FetchConcurrency)
		var wg sync.WaitGroup

		for _, entry := range tree.Entries {
			if entry.GetType() != "blob" {
				continue
			}
			path := entry.GetPath()
			if isBinaryExtension(path) || entry.GetSize() > MaxFileSize {
				continue
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(entry *gh.TreeEntry) {
				defer wg.Done()
				defer func() { <-sem }()

				content, err := client.GetBlobContent(ctx, owner, repo, entry.GetSHA())
				if err != nil {
					logger.Warn("skipping %s: %v", entry.GetPath(), err)
					return
				}
				if !utf8.Valid(content) {
					return
				}

				select {
				case <-ctx.Done():
				case records <- domain.RawRecord{
					Title:   entry.GetPath(),
					URL:     blobURL(owner, repo, string(version), entry.GetPath()),
					Content: string(content),
					Metadata: map[string]string{
						"branch": string(version),
						"path":   entry.GetPath(),
						"sha":    entry.GetSHA(),
					},
				}:
				}
			}(entry)
		}

		wg.Wait()
	}()

	return records, errs
}

// Provenance derives the source identity for a repository locator.
func (c *Connector) Provenance(loc domain.SourceLocator, version domain.VersionRef) domain.Provenance {
	owner, repo := loc.Field("owner"), loc.Field("repo")
	return domain.Provenance{
		Author:         owner,
		SourceLabel:    fmt.Sprintf("%s/%s GitHub", owner, repo),
		Scheme:         "github",
		SourceKey:      fmt.Sprintf("%s/%s", owner, repo),
		CollectionBase: fmt.Sprintf("%s-%s-%s-github", owner, repo, version),
	}
}

// newClient builds an API client, honouring the test base URL override.
func (c *Connector) newClient(ctx context.Context, token string) *Client {
	client := NewClient(ctx, token)
	if c.apiBaseURL != "" {
		if err := client.SetBaseURL(c.apiBaseURL); err != nil {
			logger.Warn("invalid API base URL override %q: %v", c.apiBaseURL, err)
		}
	}
	return client
}

// blobURL builds the canonical web URL of a file at a branch.
func blobURL(owner, repo, branch, path string) string {
	return fmt.Sprintf("https://github.com/%s/%s/blob/%s/%s", owner, repo, branch, path)
}

// isBinaryExtension checks if a file extension indicates a binary file.
func isBinaryExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	binaryExts := map[string]bool{
		".exe": true, ".dll": true, ".so": true, ".dylib": true,
		".zip": true, ".tar": true, ".gz": true, ".bz2": true, ".7z": true,
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true, ".webp": true,
		".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
		".mp3": true, ".mp4": true, ".avi": true, ".mov": true,
		".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
		".bin": true, ".dat": true, ".db": true, ".sqlite": true,
		".pyc": true, ".pyo": true, ".class": true, ".o": true, ".a": true,
	}
	return binaryExts[ext]
}
