package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/cache"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

// GetRankedMarkets serves the ranked list from the cache and falls back to
// the database when the cache is cold or unavailable
func (s *Service) GetRankedMarkets(ctx context.Context) ([]*model.MarketDocument, error) {
	docs, err := s.cache.GetRankedMarkets(ctx)
	if err == nil {
		return docs, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Ctx(ctx).Warn().Err(err).Msg("ranked markets cache unavailable, reading from database")
	}

	docs, err = s.db.FindRankedMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ranked markets: %w", err)
	}
	return docs, nil
}
