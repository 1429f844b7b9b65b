package domain

// SourceKind classifies the shape of an external source locator.
type SourceKind string

const (
	// KindHostedWiki is a Confluence space on the hosted *.atlassian.net domain.
	KindHostedWiki SourceKind = "hosted-wiki"

	// KindCustomWiki is a Confluence space on a customer-owned domain
	// using the canonical /wiki/spaces/ path.
	KindCustomWiki SourceKind = "custom-wiki"

	// KindHumanReadableWiki is a Confluence space on a customer-owned domain
	// using the legacy human-readable /display/ path.
	KindHumanReadableWiki SourceKind = "human-readable-wiki"

	// KindCodeRepository is a GitHub repository.
	KindCodeRepository SourceKind = "code-repository"
)

// IsWiki reports whether the kind is one of the Confluence space shapes.
func (k SourceKind) IsWiki() bool {
	return k == KindHostedWiki || k == KindCustomWiki || k == KindHumanReadableWiki
}

// IsRepository reports whether the kind is a code repository.
func (k SourceKind) IsRepository() bool {
	return k == KindCodeRepository
}

// SourceLocator is a validated, classified reference to an external source.
// It is only constructed by a connector's locator parser after a successful
// shape match; no partially-valid instance exists.
type SourceLocator struct {
	// Kind classifies which locator shape matched.
	Kind SourceKind

	// Fields holds the kind-specific captured parameters
	// (e.g. "subdomain", "domain", "tld", "spaceKey" or "owner", "repo").
	Fields map[string]string

	// BaseURL is the resolved base address computed from the captured fields.
	BaseURL string
}

// Field returns a captured parameter, or "" if absent.
func (l SourceLocator) Field(name string) string {
	return l.Fields[name]
}

// Credentials is opaque, kind-specific authentication material.
// It is never persisted; its lifetime is one ingestion invocation.
type Credentials struct {
	// Principal is the account identifier (e.g. Confluence username/email).
	// Empty for personal-access-token style authentication.
	Principal string

	// Secret is the API token or personal access token.
	Secret string
}

// IsZero reports whether no authentication material is present.
func (c Credentials) IsZero() bool {
	return c.Principal == "" && c.Secret == ""
}

// VersionRef is a resolved branch or tag name for repository sources.
// It is always drawn from the source's branch listing, or from the
// conventional default fallback when the listing is empty.
type VersionRef string

// Provenance carries the source identity a normalised Document is tagged
// with. It is derived from a SourceLocator by the owning connector.
type Provenance struct {
	// Author is the provenance owner (wiki subdomain or repository owner).
	Author string

	// SourceLabel is the human-readable source label (e.g. "acme Confluence").
	SourceLabel string

	// Scheme qualifies chunkSource URIs (e.g. "confluence", "github").
	Scheme string

	// SourceKey identifies the logical source (space key or owner/repo).
	SourceKey string

	// CollectionBase is the slug base for the destination collection name.
	// A short random suffix is appended per run to keep runs isolated.
	CollectionBase string

	// URLSuffix is appended to each document URL to tag its content type
	// (e.g. ".page" for wiki pages). Empty when the URL is already typed.
	URLSuffix string
}
