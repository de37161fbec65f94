// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/gh-activity/internal/domain"
	"github.com/runoshun/gh-activity/internal/infra/config"
	"github.com/runoshun/gh-activity/internal/infra/githubapi"
	"github.com/runoshun/gh-activity/internal/infra/logging"
	"github.com/runoshun/gh-activity/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Fetcher domain.ActivityFetcher
	Logger  *slog.Logger
	Config  *config.Config

	closeLog func() error
}

// New creates a new Container from the user configuration and environment.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	fetcher, err := githubapi.New(ctx, githubapi.Options{
		Token:   cfg.Token,
		BaseURL: cfg.APIBaseURL,
	}, logger)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("init github client: %w", err)
	}

	return &Container{
		Fetcher:  fetcher,
		Logger:   logger,
		Config:   cfg,
		closeLog: closeLog,
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// ShowActivityUseCase creates a ShowActivity use case.
func (c *Container) ShowActivityUseCase() *usecase.ShowActivity {
	return usecase.NewShowActivity(c.Fetcher, c.Logger)
}
