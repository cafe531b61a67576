// Package bootstrap wires configuration, storage and services into the
// HTTP router shared by the server binary and the serverless entrypoint.
package bootstrap

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/go-job-board/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-job-board/pkg/adapters/repository/resilient"
	"github.com/wadjakorntonsri/go-job-board/pkg/adapters/repository/sqlstore"
	"github.com/wadjakorntonsri/go-job-board/pkg/config"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/services"
	"github.com/wadjakorntonsri/go-job-board/pkg/logging"
)

type App struct {
	Handler http.Handler
	Close   func() error
}

// New validates cfg, opens the store, seeds it when asked to and builds the router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}

	store, err := sqlstore.NewSQLRepository(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	repo := resilient.New(store, resilient.Settings{
		ConsecutiveFailures: cfg.BreakerFailures,
		OpenTimeout:         cfg.BreakerTimeout,
	})

	jobService := services.NewJobService(repo)
	appService := services.NewApplicationService(repo)

	if cfg.SeedSampleData {
		n, err := jobService.SeedSampleJobs(ctx)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		if n > 0 {
			logging.Logger().Infof("Seeded %d sample jobs", n)
		}
	}

	return &App{
		Handler: handler.NewRouter(cfg, jobService, appService, nil),
		Close:   store.Close,
	}, nil
}
