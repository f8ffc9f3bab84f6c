package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v66/github"
)

// DefaultBaseURL is the public GitHub REST API
const DefaultBaseURL = "https://api.github.com"

// Client handles GitHub API interactions
type Client struct {
	api *gogithub.Client
}

// NewClient creates a new GitHub API client with the given transport timeout
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient creates a client on top of an existing http.Client.
// baseURL defaults to DefaultBaseURL when empty.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// go-github resolves relative paths, so the base must end with a slash
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub base URL: %w", err)
	}

	api := gogithub.NewClient(httpClient)
	api.BaseURL = parsed

	return &Client{api: api}, nil
}

// Repository represents a GitHub repository from the API
type Repository struct {
	Name       string
	OwnerLogin string
	Fork       bool
}

// Branch represents a GitHub branch from the API
type Branch struct {
	Name      string
	CommitSHA string
}

// ListUserRepositories fetches the public repositories of a user.
// Errors are returned as produced by go-github so callers can inspect the status.
func (c *Client) ListUserRepositories(ctx context.Context, username string) ([]Repository, error) {
	repos, _, err := c.api.Repositories.ListByUser(ctx, url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}

	// nil entries are kept so that validation downstream rejects them.
	// Validation runs before fork filtering, so a malformed fork fails the listing too.
	result := make([]Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, Repository{
			Name:       r.GetName(),
			OwnerLogin: r.GetOwner().GetLogin(),
			Fork:       r.GetFork(),
		})
	}

	return result, nil
}

// ListBranches fetches the branches of a repository
func (c *Client) ListBranches(ctx context.Context, owner, repository string) ([]Branch, error) {
	branches, _, err := c.api.Repositories.ListBranches(ctx, url.PathEscape(owner), url.PathEscape(repository), nil)
	if err != nil {
		return nil, err
	}

	result := make([]Branch, 0, len(branches))
	for _, b := range branches {
		result = append(result, Branch{
			Name:      b.GetName(),
			CommitSHA: b.GetCommit().GetSHA(),
		})
	}

	return result, nil
}

// IsNotFound reports whether err is a GitHub 404 response
func IsNotFound(err error) bool {
	var errResp *gogithub.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode == http.StatusNotFound
	}
	return false
}
