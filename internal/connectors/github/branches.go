package github

import (
	"context"
	"fmt"
	"slices"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

// ResolveBranch resolves a requested branch against the repository's
// branch listing. A listing failure is treated as an empty set and falls
// through to the conventional default rather than aborting; the failure
// is reported through the returned warnings. The guessed default is not
// guaranteed to exist; an invalid guess surfaces at fetch time.
func ResolveBranch(
	ctx context.Context, client *Client, owner, repo, requested string,
) (domain.VersionRef, []string) {
	var warnings []string

	branches, err := client.ListBranches(ctx, owner, repo)
	if err != nil {
		logger.Warn("branch listing for %s/%s failed: %v", owner, repo, err)
		warnings = append(warnings, fmt.Sprintf(
			"branch listing failed (%v); falling back to a default branch guess", err))
		branches = nil
	}

	if requested != "" && slices.Contains(branches, requested) {
		return domain.VersionRef(requested), warnings
	}

	logger.Info("Branch not set, auto-assigning a default branch for %s/%s", owner, repo)
	if slices.Contains(branches, "main") {
		return domain.VersionRef("main"), warnings
	}
	return domain.VersionRef("master"), warnings
}
