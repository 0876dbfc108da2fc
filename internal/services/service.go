package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/cache"
	"github.com/tronrelic/tronrelic-indexer/internal/clients/tronclient"
	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db"
	"github.com/tronrelic/tronrelic-indexer/internal/fetcher"
	"github.com/tronrelic/tronrelic-indexer/internal/observer"
	"github.com/tronrelic/tronrelic-indexer/internal/queue"
	"github.com/tronrelic/tronrelic-indexer/internal/reliability"
)

type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	tron         tronclient.TronInterface
	fetchers     *fetcher.Registry
	tracker      reliability.Recorder
	cache        cache.MarketCache
	queueManager queue.QueueInterface
	observers    *observer.Manager
	chainParams  *chainParamsCache
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	tron tronclient.TronInterface,
	fetchers *fetcher.Registry,
	tracker reliability.Recorder,
	cache cache.MarketCache,
	qm queue.QueueInterface,
) *Service {
	s := &Service{
		cfg:          cfg,
		db:           db,
		tron:         tron,
		fetchers:     fetchers,
		tracker:      tracker,
		cache:        cache,
		queueManager: qm,
		chainParams:  &chainParamsCache{},
		now:          func() time.Time { return time.Now().UTC() },
	}
	s.observers = s.buildObservers()
	return s
}

// StartServer runs every background process of the indexer until ctx is done
func (s *Service) StartServer(ctx context.Context) {
	// chain parameters first so the first aggregation can compute apy
	if err := s.RefreshChainParameters(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("initial chain parameters refresh failed, using persisted values")
	}
	s.StartChainParamsPoller(ctx)
	s.StartObservers(ctx)
	s.StartMarketPoller(ctx)
}
