package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github-repos-proxy/internal"
	"github-repos-proxy/internal/config"
)

// @title GitHub Repositories Proxy API
// @version 1.0
// @description Lists the non-fork repositories of a GitHub user together with their branches

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "github-repos-proxy",
		Short: "Read-only proxy listing GitHub repositories with their branches",
		Long: `Serves GET /users/{username}/repositories: the non-fork repositories
of a GitHub user, each with its branches and their last commit SHA.

Configuration is read from the environment (and an optional .env file);
flags override the corresponding variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, _ []string) error {
			cfg, err := loadConfig(command)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	cmd.Flags().String("host", "", "Listen host (overrides SERVER_HOST)")
	cmd.Flags().StringP("port", "p", "", "Listen port (overrides SERVER_PORT)")
	cmd.Flags().String("github-api-url", "", "GitHub API base URL (overrides GITHUB_API_BASE_URL)")
	cmd.Flags().String("log-level", "", "Log level (overrides LOG_LEVEL)")

	return cmd
}

// loadConfig reads the environment, applies flag overrides and only then validates
func loadConfig(command *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(command, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func applyFlags(command *cobra.Command, cfg *config.Config) {
	if host, _ := command.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := command.Flags().GetString("port"); port != "" {
		cfg.Server.Port = port
	}
	if baseURL, _ := command.Flags().GetString("github-api-url"); baseURL != "" {
		cfg.GitHub.BaseURL = baseURL
	}
	if level, _ := command.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
}

func serve(cfg *config.Config) error {
	router, logger, err := internal.BuildRouter(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"address":    cfg.GetServerAddress(),
			"github_api": cfg.GitHub.BaseURL,
		}).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		logrus.Fatalf("Error executing 'github-repos-proxy': %s", err)
	}
}
