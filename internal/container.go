package internal

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github-repos-proxy/internal/application/service"
	"github-repos-proxy/internal/config"
	"github-repos-proxy/internal/domain/repo"
	"github-repos-proxy/internal/github"
	infraGitHub "github-repos-proxy/internal/infrastructure/github"
	"github-repos-proxy/internal/logging"
	"github-repos-proxy/internal/presentation"
	"github-repos-proxy/internal/presentation/handlers"
)

// RegisterProviders registers the application graph with the DIG container.
// cfg is supplied by the caller so CLI overrides apply before anything is built.
func RegisterProviders(container *dig.Container, cfg *config.Config) error {
	providers := []interface{}{
		func() *config.Config { return cfg },
		func(cfg *config.Config) *logrus.Logger { return logging.New(cfg.Log) },
		func(logger *logrus.Logger) logrus.FieldLogger { return logger },

		// infrastructure
		func(cfg *config.Config) (*github.Client, error) {
			return github.NewClient(cfg.GitHub.BaseURL, cfg.GitHubHTTPTimeout())
		},
		func(client *github.Client) repo.GitHubService { return infraGitHub.NewGitHubService(client) },

		// application
		func(githubService repo.GitHubService, cfg *config.Config, logger logrus.FieldLogger) *service.RepositoryService {
			return service.NewRepositoryService(githubService, cfg.Aggregation.MaxConcurrency, logger)
		},

		// presentation
		func(cfg *config.Config) *handlers.HealthHandler { return handlers.NewHealthHandler(cfg.GitHub.BaseURL) },
		func(svc *service.RepositoryService, logger logrus.FieldLogger) *handlers.RepositoryHandler {
			return handlers.NewRepositoryHandler(svc, logger)
		},
		presentation.NewRouter,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("failed to register provider: %w", err)
		}
	}

	return nil
}

// BuildRouter resolves the HTTP router and logger from a fresh container
func BuildRouter(cfg *config.Config) (*gin.Engine, *logrus.Logger, error) {
	container := dig.New()
	if err := RegisterProviders(container, cfg); err != nil {
		return nil, nil, err
	}

	var (
		router *gin.Engine
		logger *logrus.Logger
	)
	if err := container.Invoke(func(r *gin.Engine, l *logrus.Logger) {
		router = r
		logger = l
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to build application: %w", err)
	}

	return router, logger, nil
}
