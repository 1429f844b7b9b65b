package confluence

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// Locator shapes, most specific first. Patterns are shape-based: scheme,
// host segments, fixed path segments and free-form capture groups for the
// identifiers. The first matching shape wins.
var (
	// https://<subdomain>.atlassian.net/wiki/spaces/<spaceKey>/...
	hostedPattern = regexp.MustCompile(
		`^https://([^./]+)\.atlassian\.net/wiki/spaces/([^/?#]+)`)

	// https://[<subdomain>.]<domain>.<tld>/wiki/spaces/<spaceKey>/...
	customPattern = regexp.MustCompile(
		`^https://(?:([^./]+)\.)?([^./]+)\.([^./]+)/wiki/spaces/([^/?#]+)`)

	// https://[<subdomain>.]<domain>.<tld>/display/<spaceKey>/...
	displayPattern = regexp.MustCompile(
		`^https://(?:([^./]+)\.)?([^./]+)\.([^./]+)/display/([^/?#]+)`)
)

// acceptedShapes describes the locator shapes for validation messages.
var acceptedShapes = []string{
	"https://<subdomain>.atlassian.net/wiki/spaces/<spaceKey>/*",
	"https://<customDomain>/wiki/spaces/<spaceKey>/*",
	"https://<customDomain>/display/<spaceKey>/*",
}

// ParseSpaceURL classifies a Confluence space URL against the accepted
// shapes and extracts the structured fields. Returns an error wrapping
// domain.ErrInvalidLocator when no shape matches. Pure over its input.
func ParseSpaceURL(raw string) (*domain.SourceLocator, error) {
	if m := hostedPattern.FindStringSubmatch(raw); m != nil {
		subdomain, spaceKey := m[1], m[2]
		return &domain.SourceLocator{
			Kind: domain.KindHostedWiki,
			Fields: map[string]string{
				"subdomain": subdomain,
				"spaceKey":  spaceKey,
			},
			BaseURL: fmt.Sprintf("https://%s.atlassian.net/wiki", subdomain),
		}, nil
	}

	if m := customPattern.FindStringSubmatch(raw); m != nil {
		subdomain, dom, tld, spaceKey := m[1], m[2], m[3], m[4]
		return &domain.SourceLocator{
			Kind: domain.KindCustomWiki,
			Fields: map[string]string{
				"subdomain": subdomain,
				"domain":    dom,
				"tld":       tld,
				"spaceKey":  spaceKey,
			},
			BaseURL: fmt.Sprintf("https://%s/wiki", customDomain(subdomain, dom, tld)),
		}, nil
	}

	if m := displayPattern.FindStringSubmatch(raw); m != nil {
		subdomain, dom, tld, spaceKey := m[1], m[2], m[3], m[4]
		return &domain.SourceLocator{
			Kind: domain.KindHumanReadableWiki,
			Fields: map[string]string{
				"subdomain": subdomain,
				"domain":    dom,
				"tld":       tld,
				"spaceKey":  spaceKey,
			},
			// The /display/ form serves the REST API from the domain root.
			BaseURL: fmt.Sprintf("https://%s", customDomain(subdomain, dom, tld)),
		}, nil
	}

	return nil, fmt.Errorf("%w: not a Confluence space URL", domain.ErrInvalidLocator)
}

// customDomain composes the full host from its captured parts.
// The subdomain part is optional.
func customDomain(subdomain, dom, tld string) string {
	host := fmt.Sprintf("%s.%s", dom, tld)
	if subdomain != "" {
		host = subdomain + "." + host
	}
	return host
}

// spaceAuthor returns the provenance owner for a wiki locator: the
// subdomain when present, else the bare domain.
func spaceAuthor(loc domain.SourceLocator) string {
	if sub := loc.Field("subdomain"); sub != "" {
		return sub
	}
	return loc.Field("domain")
}
