package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/db"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
	"github.com/tronrelic/tronrelic-indexer/internal/utils/poller"
)

type chainParamsCache struct {
	mu     sync.RWMutex
	params *model.ChainParameters
}

func (c *chainParamsCache) get() *model.ChainParameters {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.params == nil {
		return nil
	}
	params := *c.params
	return &params
}

func (c *chainParamsCache) set(params *model.ChainParameters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = params
}

func (s *Service) StartChainParamsPoller(ctx context.Context) {
	chainParamsPoller := poller.NewPoller(
		"chain-params",
		s.cfg.Poller.ChainParamsPollingInterval,
		metrics.RecordPollerDuration("refresh_chain_params", s.RefreshChainParameters),
	)
	go chainParamsPoller.Start(ctx, false)
}

// ChainParameters returns a copy of the cached values, loading the persisted
// ones on a cold cache. Nil means they were never synced.
func (s *Service) ChainParameters(ctx context.Context) *model.ChainParameters {
	if params := s.chainParams.get(); params != nil {
		return params
	}

	params, err := s.db.GetChainParameters(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			log.Ctx(ctx).Error().Err(err).Msg("failed to load chain parameters")
		}
		return nil
	}
	s.chainParams.set(params)
	return s.chainParams.get()
}

func (s *Service) RefreshChainParameters(ctx context.Context) error {
	params, err := s.tron.GetChainParameters(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch chain parameters: %w", err)
	}
	if err := s.db.UpsertChainParameters(ctx, params); err != nil {
		return fmt.Errorf("failed to save chain parameters: %w", err)
	}

	s.chainParams.set(params)
	metrics.RecordEnergyFee(params.EnergyFee)

	log.Ctx(ctx).Debug().
		Int64("energy_fee", params.EnergyFee).
		Int64("total_energy_limit", params.TotalEnergyLimit).
		Int64("total_energy_weight", params.TotalEnergyWeight).
		Msg("chain parameters refreshed")
	return nil
}
