package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/observer"
)

const consumerRestartDelay = 5 * time.Second

func (s *Service) buildObservers() *observer.Manager {
	cfg := s.cfg.Observers
	m := observer.NewManager()

	largeTransfers := observer.NewLargeTransferObserver(
		cfg.TransactionQueueCapacity, cfg.LargeTransferThresholdTrx, s.db, s.queueManager,
	)
	m.SubscribeTransactions(largeTransfers.Observer, observer.TypeTransfer)

	delegations := observer.NewResourceDelegationObserver(cfg.BatchQueueCapacity, s.db)
	m.SubscribeBatches(delegations.Observer, observer.ResourceDelegationTypes...)

	blocks := observer.NewBlockStatsObserver(cfg.BlockQueueCapacity, s.db)
	m.SubscribeBlocks(blocks.Observer)

	return m
}

func (s *Service) Observers() *observer.Manager {
	return s.observers
}

// StartObservers starts the observer drain loops and feeds them from the
// decoder queue until ctx is done
func (s *Service) StartObservers(ctx context.Context) {
	s.observers.Start(ctx)
	go s.consumeTransactions(ctx)
}

func (s *Service) StopObservers(ctx context.Context) error {
	for _, stats := range s.observers.Stats() {
		log.Ctx(ctx).Info().
			Str("observer", stats.Name).
			Uint64("processed", stats.TotalProcessed).
			Uint64("errors", stats.TotalErrors).
			Uint64("dropped", stats.TotalDropped).
			Int("queued", stats.QueueDepth).
			Msg("stopping observer")
	}
	return s.observers.Stop(ctx)
}

func (s *Service) consumeTransactions(ctx context.Context) {
	for {
		err := s.queueManager.ConsumeTransactions(ctx, s.observers)
		if ctx.Err() != nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Dur("restart_in", consumerRestartDelay).Msg("transaction consumer stopped")

		select {
		case <-ctx.Done():
			return
		case <-time.After(consumerRestartDelay):
		}
	}
}
