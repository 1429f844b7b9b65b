package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client wraps the go-github client with rate limiting and helpers
// scoped to what the ingestion pipeline needs.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub API client. An empty token yields an
// unauthenticated client; public repositories still work, at a lower
// rate limit.
func NewClient(ctx context.Context, token string) *Client {
	httpClient := &http.Client{Timeout: DefaultTimeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = DefaultTimeout
	}
	return &Client{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// SetBaseURL points the client at a different API root. Used in tests.
func (c *Client) SetBaseURL(base string) error {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	c.gh.BaseURL = u
	return nil
}

// ListBranches returns all branch names for a repository.
func (c *Client) ListBranches(ctx context.Context, owner, repo string) ([]string, error) {
	var names []string

	opts := &gh.BranchListOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	for {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		branches, resp, err := c.gh.Repositories.ListBranches(ctx, owner, repo, opts)
		if err != nil {
			return nil, c.wrapError(err, "list branches")
		}
		c.updateRateLimitFromResponse(resp)

		for _, b := range branches {
			names = append(names, b.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}

// GetTree fetches the tree for a repository at a given ref.
// The traversal is shallow: only the top level of the branch's tree.
func (c *Client) GetTree(ctx context.Context, owner, repo, ref string) (*gh.Tree, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	tree, resp, err := c.gh.Git.GetTree(ctx, owner, repo, ref, false)
	if err != nil {
		return nil, c.wrapError(err, "get tree")
	}
	c.updateRateLimitFromResponse(resp)
	return tree, nil
}

// GetBlobContent fetches a blob by SHA and decodes its content.
func (c *Client) GetBlobContent(ctx context.Context, owner, repo, sha string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	blob, resp, err := c.gh.Git.GetBlob(ctx, owner, repo, sha)
	if err != nil {
		return nil, c.wrapError(err, "get blob")
	}
	c.updateRateLimitFromResponse(resp)

	if blob.GetEncoding() == "base64" {
		content := strings.ReplaceAll(blob.GetContent(), "\n", "")
		return base64.StdEncoding.DecodeString(content)
	}
	return []byte(blob.GetContent()), nil
}

// updateRateLimitFromResponse feeds response headers to the rate limiter.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp != nil {
		c.rateLimiter.UpdateFromResponse(resp.Response)
	}
}

// wrapError converts go-github errors into connector errors.
func (c *Client) wrapError(err error, op string) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, ErrRepoNotFound)
		case http.StatusForbidden, http.StatusTooManyRequests:
			return &RateLimitError{ResetAt: time.Now().Add(time.Minute)}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
