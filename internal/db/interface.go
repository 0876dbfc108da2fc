package db

import (
	"context"
	"time"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error

	// GetMarket returns NotFoundError when no document exists for guid
	GetMarket(ctx context.Context, guid string) (*model.MarketDocument, error)
	UpsertMarket(ctx context.Context, doc *model.MarketDocument) error
	FindActiveMarkets(ctx context.Context) ([]*model.MarketDocument, error)
	// FindRankedMarkets returns active markets ordered by rank
	FindRankedMarkets(ctx context.Context) ([]*model.MarketDocument, error)
	UpdateMarketRankings(ctx context.Context, rankings []model.MarketRanking) error
	// ClearInactiveBestDeals resets isBestDeal on every inactive document
	ClearInactiveBestDeals(ctx context.Context) (int64, error)
	SavePriceHistory(ctx context.Context, points []*model.PriceHistory) error
	FindPriceHistory(ctx context.Context, guid string, since time.Time) ([]*model.PriceHistory, error)

	ReliabilityStore

	GetChainParameters(ctx context.Context) (*model.ChainParameters, error)
	UpsertChainParameters(ctx context.Context, params *model.ChainParameters) error

	SaveLargeTransfer(ctx context.Context, transfer *model.LargeTransfer) error
	IncrementResourceDelegationStats(ctx context.Context, stats *model.ResourceDelegationStats) error
	UpsertBlockStats(ctx context.Context, stats *model.BlockStats) error
}

// ReliabilityStore is the persistence needed by the reliability tracker
type ReliabilityStore interface {
	// GetReliability returns NotFoundError when guid was never recorded
	GetReliability(ctx context.Context, guid string) (*model.ReliabilityRecord, error)
	// InsertReliability returns DuplicateKeyError when a concurrent writer created the record first
	InsertReliability(ctx context.Context, record *model.ReliabilityRecord) error
	// UpdateReliability replaces the record if it is still at expectedVersion,
	// otherwise it returns VersionConflictError
	UpdateReliability(ctx context.Context, record *model.ReliabilityRecord, expectedVersion int64) error
	SaveReliabilityHistory(ctx context.Context, entry *model.ReliabilityHistory) error
	FindReliabilityHistory(ctx context.Context, guid string, limit int64) ([]*model.ReliabilityHistory, error)
}
