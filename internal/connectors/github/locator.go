package github

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// repoPattern matches https://github.com/<owner>/<repo> with an optional
// trailing path. Shape-based: the owner and repo segments are free-form.
var repoPattern = regexp.MustCompile(`^https://github\.com/([^/?#]+)/([^/?#]+?)(?:\.git)?(?:[/?#]|$)`)

// acceptedShapes describes the locator shapes for validation messages.
var acceptedShapes = []string{
	"https://github.com/<owner>/<repo>",
}

// ParseRepoURL classifies a GitHub repository URL and extracts the owner
// and repository name. Returns an error wrapping domain.ErrInvalidLocator
// when the shape does not match. Pure over its input.
func ParseRepoURL(raw string) (*domain.SourceLocator, error) {
	m := repoPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("%w: not a GitHub repository URL", domain.ErrInvalidLocator)
	}

	owner, repo := m[1], m[2]
	return &domain.SourceLocator{
		Kind: domain.KindCodeRepository,
		Fields: map[string]string{
			"owner": owner,
			"repo":  repo,
		},
		BaseURL: fmt.Sprintf("https://github.com/%s/%s", owner, repo),
	}, nil
}
