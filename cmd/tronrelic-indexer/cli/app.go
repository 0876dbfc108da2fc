package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/cache"
	"github.com/tronrelic/tronrelic-indexer/internal/clients/tronclient"
	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db"
	dbmodel "github.com/tronrelic/tronrelic-indexer/internal/db/model"
	"github.com/tronrelic/tronrelic-indexer/internal/fetcher"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/logging"
	"github.com/tronrelic/tronrelic-indexer/internal/queue"
	"github.com/tronrelic/tronrelic-indexer/internal/reliability"
	"github.com/tronrelic/tronrelic-indexer/internal/services"
)

const shutdownTimeout = 30 * time.Second

// app holds the wired dependencies shared by every command
type app struct {
	cfg     *config.Config
	db      *db.Database
	cache   *cache.RedisCache
	queue   *queue.QueueManager
	service *services.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}
	logging.Setup(cfg.Logging)

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return nil, fmt.Errorf("error while setting up db model: %w", err)
	}

	a := &app{cfg: cfg}
	a.db, err = db.New(ctx, cfg.Db)
	if err != nil {
		return nil, fmt.Errorf("error while creating db client: %w", err)
	}
	dbClient := db.NewDbWithMetrics(a.db)

	a.cache, err = cache.New(ctx, &cfg.Redis)
	if err != nil {
		a.close(ctx)
		return nil, fmt.Errorf("error while creating redis cache: %w", err)
	}

	a.queue, err = queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		a.close(ctx)
		return nil, fmt.Errorf("error while creating queue manager: %w", err)
	}

	a.service = services.NewService(
		cfg,
		dbClient,
		tronclient.NewClient(&cfg.Tron),
		fetcher.NewConfigRegistry(cfg.Markets, &cfg.Fetcher),
		reliability.NewTracker(dbClient),
		a.cache,
		a.queue,
	)
	return a, nil
}

func (a *app) close(ctx context.Context) {
	if a.queue != nil {
		a.queue.Shutdown()
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("failed to close redis client")
		}
	}
	if a.db != nil {
		if err := a.db.Close(ctx); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("failed to disconnect from mongo")
		}
	}
}
