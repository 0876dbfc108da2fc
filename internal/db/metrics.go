package db

import (
	"context"
	"time"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetMarket(ctx context.Context, guid string) (result *model.MarketDocument, err error) {
	//nolint:errcheck
	d.run("GetMarket", func() error {
		result, err = d.db.GetMarket(ctx, guid)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertMarket(ctx context.Context, doc *model.MarketDocument) error {
	return d.run("UpsertMarket", func() error {
		return d.db.UpsertMarket(ctx, doc)
	})
}

func (d *DbWithMetrics) FindActiveMarkets(ctx context.Context) (result []*model.MarketDocument, err error) {
	//nolint:errcheck
	d.run("FindActiveMarkets", func() error {
		result, err = d.db.FindActiveMarkets(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) FindRankedMarkets(ctx context.Context) (result []*model.MarketDocument, err error) {
	//nolint:errcheck
	d.run("FindRankedMarkets", func() error {
		result, err = d.db.FindRankedMarkets(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateMarketRankings(ctx context.Context, rankings []model.MarketRanking) error {
	return d.run("UpdateMarketRankings", func() error {
		return d.db.UpdateMarketRankings(ctx, rankings)
	})
}

func (d *DbWithMetrics) ClearInactiveBestDeals(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	d.run("ClearInactiveBestDeals", func() error {
		result, err = d.db.ClearInactiveBestDeals(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SavePriceHistory(ctx context.Context, points []*model.PriceHistory) error {
	return d.run("SavePriceHistory", func() error {
		return d.db.SavePriceHistory(ctx, points)
	})
}

func (d *DbWithMetrics) FindPriceHistory(ctx context.Context, guid string, since time.Time) (result []*model.PriceHistory, err error) {
	//nolint:errcheck
	d.run("FindPriceHistory", func() error {
		result, err = d.db.FindPriceHistory(ctx, guid, since)
		return err
	})
	return
}

func (d *DbWithMetrics) GetReliability(ctx context.Context, guid string) (result *model.ReliabilityRecord, err error) {
	//nolint:errcheck
	d.run("GetReliability", func() error {
		result, err = d.db.GetReliability(ctx, guid)
		return err
	})
	return
}

func (d *DbWithMetrics) InsertReliability(ctx context.Context, record *model.ReliabilityRecord) error {
	return d.run("InsertReliability", func() error {
		return d.db.InsertReliability(ctx, record)
	})
}

func (d *DbWithMetrics) UpdateReliability(ctx context.Context, record *model.ReliabilityRecord, expectedVersion int64) error {
	return d.run("UpdateReliability", func() error {
		return d.db.UpdateReliability(ctx, record, expectedVersion)
	})
}

func (d *DbWithMetrics) SaveReliabilityHistory(ctx context.Context, entry *model.ReliabilityHistory) error {
	return d.run("SaveReliabilityHistory", func() error {
		return d.db.SaveReliabilityHistory(ctx, entry)
	})
}

func (d *DbWithMetrics) FindReliabilityHistory(ctx context.Context, guid string, limit int64) (result []*model.ReliabilityHistory, err error) {
	//nolint:errcheck
	d.run("FindReliabilityHistory", func() error {
		result, err = d.db.FindReliabilityHistory(ctx, guid, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) GetChainParameters(ctx context.Context) (result *model.ChainParameters, err error) {
	//nolint:errcheck
	d.run("GetChainParameters", func() error {
		result, err = d.db.GetChainParameters(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertChainParameters(ctx context.Context, params *model.ChainParameters) error {
	return d.run("UpsertChainParameters", func() error {
		return d.db.UpsertChainParameters(ctx, params)
	})
}

func (d *DbWithMetrics) SaveLargeTransfer(ctx context.Context, transfer *model.LargeTransfer) error {
	return d.run("SaveLargeTransfer", func() error {
		return d.db.SaveLargeTransfer(ctx, transfer)
	})
}

func (d *DbWithMetrics) IncrementResourceDelegationStats(ctx context.Context, stats *model.ResourceDelegationStats) error {
	return d.run("IncrementResourceDelegationStats", func() error {
		return d.db.IncrementResourceDelegationStats(ctx, stats)
	})
}

func (d *DbWithMetrics) UpsertBlockStats(ctx context.Context, stats *model.BlockStats) error {
	return d.run("UpsertBlockStats", func() error {
		return d.db.UpsertBlockStats(ctx, stats)
	})
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and failure status in case lambda returned an error
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	// not found and conflict errors are part of normal control flow
	failure := err != nil && !IsNotFoundError(err) && !IsConflictError(err)
	metrics.RecordDbLatency(duration, method, failure)

	return err
}
