package github

import (
	"context"
	"fmt"

	"github-repos-proxy/internal/domain/repo"
	"github-repos-proxy/internal/github"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client) repo.GitHubService {
	return &GitHubServiceImpl{client: client}
}

// FetchUserRepositories fetches all repositories for a user from GitHub.
// A 404 here, and only here, means the user does not exist.
func (g *GitHubServiceImpl) FetchUserRepositories(ctx context.Context, username string) ([]repo.Repository, error) {
	githubRepos, err := g.client.ListUserRepositories(ctx, username)
	if err != nil {
		if github.IsNotFound(err) {
			return nil, repo.ErrUserNotFound(username)
		}
		return nil, repo.ErrRemoteAPIFailure(fmt.Sprintf("list repositories of %s", username), err)
	}

	domainRepos := make([]repo.Repository, len(githubRepos))
	for i, ghRepo := range githubRepos {
		domainRepo, err := repo.NewRepository(ghRepo.Name, ghRepo.OwnerLogin, ghRepo.Fork)
		if err != nil {
			return nil, repo.ErrRemoteAPIFailure(fmt.Sprintf("decode repositories of %s", username), err)
		}
		domainRepos[i] = domainRepo
	}

	return domainRepos, nil
}

// FetchRepositoryBranches fetches all branches of a repository from GitHub
func (g *GitHubServiceImpl) FetchRepositoryBranches(ctx context.Context, ownerLogin, repositoryName string) ([]repo.Branch, error) {
	operation := fmt.Sprintf("list branches of %s/%s", ownerLogin, repositoryName)

	githubBranches, err := g.client.ListBranches(ctx, ownerLogin, repositoryName)
	if err != nil {
		return nil, repo.ErrRemoteAPIFailure(operation, err)
	}

	domainBranches := make([]repo.Branch, len(githubBranches))
	for i, ghBranch := range githubBranches {
		branch, err := repo.NewBranch(ghBranch.Name, ghBranch.CommitSHA)
		if err != nil {
			return nil, repo.ErrRemoteAPIFailure(operation, err)
		}
		domainBranches[i] = branch
	}

	return domainBranches, nil
}
