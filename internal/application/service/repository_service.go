package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github-repos-proxy/internal/application/dto"
	"github-repos-proxy/internal/domain/repo"
)

// DefaultMaxConcurrency caps simultaneous branch fetches when none is configured
const DefaultMaxConcurrency = 16

// RepositoryService aggregates a user's non-fork repositories with their branches
type RepositoryService struct {
	githubService  repo.GitHubService
	maxConcurrency int
	logger         logrus.FieldLogger
}

// NewRepositoryService creates a new repository service.
// maxConcurrency <= 0 lets every repository be fetched at once.
func NewRepositoryService(githubService repo.GitHubService, maxConcurrency int, logger logrus.FieldLogger) *RepositoryService {
	return &RepositoryService{
		githubService:  githubService,
		maxConcurrency: maxConcurrency,
		logger:         logger,
	}
}

// ListUserRepositories aggregates and renders the repositories of a user
// in the shape of the requested API version
func (s *RepositoryService) ListUserRepositories(ctx context.Context, username string, version dto.APIVersion) (interface{}, error) {
	views, err := s.GetUserRepositoriesWithBranches(ctx, username)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RepositoryResponse, len(views))
	for i, view := range views {
		responses[i] = toDTO(view)
	}

	return dto.ShapeRepositories(version, responses), nil
}

// GetUserRepositoriesWithBranches lists the non-fork repositories of a user
// and fetches the branches of each one concurrently. Either every branch
// fetch succeeds or the whole call fails; results keep the listing order.
func (s *RepositoryService) GetUserRepositoriesWithBranches(ctx context.Context, username string) ([]repo.RepositoryView, error) {
	repositories, err := s.githubService.FetchUserRepositories(ctx, username)
	if err != nil {
		if ctx.Err() != nil {
			return nil, repo.ErrAggregationInterrupted(username, ctx.Err())
		}
		return nil, err
	}

	nonForks := make([]repo.Repository, 0, len(repositories))
	for _, repository := range repositories {
		if !repository.IsFork() {
			nonForks = append(nonForks, repository)
		}
	}

	if len(nonForks) == 0 {
		return []repo.RepositoryView{}, nil
	}

	limit := s.concurrencyLimit(len(nonForks))
	s.logger.WithFields(logrus.Fields{
		"username":     username,
		"repositories": len(nonForks),
		"concurrency":  limit,
	}).Debug("fetching branches")

	// each task writes only its own slot
	views := make([]repo.RepositoryView, len(nonForks))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	stoppedEarly := false
	for i, repository := range nonForks {
		// stop issuing fetches once a sibling failed or the caller gave up
		if groupCtx.Err() != nil {
			stoppedEarly = true
			break
		}

		i, repository := i, repository
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			branches, err := s.githubService.FetchRepositoryBranches(
				groupCtx,
				repository.OwnerLogin().String(),
				repository.Name().String(),
			)
			if err != nil {
				return err
			}

			view, err := repo.NewRepositoryView(repository, branches)
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, repo.ErrAggregationInterrupted(username, ctx.Err())
		}
		return nil, err
	}

	// slots past the break were never filled
	if stoppedEarly {
		return nil, repo.ErrAggregationInterrupted(username, ctx.Err())
	}

	return views, nil
}

func (s *RepositoryService) concurrencyLimit(tasks int) int {
	if s.maxConcurrency <= 0 || s.maxConcurrency > tasks {
		return tasks
	}
	return s.maxConcurrency
}

// toDTO converts a domain repository view to DTO
func toDTO(view repo.RepositoryView) dto.RepositoryResponse {
	branches := view.Branches()
	branchResponses := make([]dto.BranchResponse, len(branches))
	for i, branch := range branches {
		branchResponses[i] = dto.BranchResponse{
			Name:          branch.Name().String(),
			LastCommitSha: branch.LastCommitSHA().String(),
		}
	}

	return dto.RepositoryResponse{
		RepositoryName: view.RepositoryName().String(),
		OwnerLogin:     view.OwnerLogin().String(),
		Branches:       branchResponses,
	}
}
