package repo

import (
	"context"
)

// GitHubService is a domain service interface for reading from GitHub
// Implementation will be in infrastructure layer
type GitHubService interface {
	// FetchUserRepositories lists the repositories of a user.
	// Fails with ErrUserNotFound if GitHub reports the user does not exist,
	// with ErrRemoteAPIFailure otherwise.
	FetchUserRepositories(ctx context.Context, username string) ([]Repository, error)

	// FetchRepositoryBranches lists the branches of a repository.
	// Every failure, including a not-found response, is ErrRemoteAPIFailure.
	FetchRepositoryBranches(ctx context.Context, ownerLogin, repositoryName string) ([]Branch, error)
}
