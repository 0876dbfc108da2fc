package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

// GenerateFeeSnapshot returns an active snapshot priced by a single hourly fee tier of sun per energy
func GenerateFeeSnapshot(guid string, sun float64) *model.MarketSnapshot {
	total := int64(gofakeit.Number(1_000_000, 5_000_000))
	return &model.MarketSnapshot{
		Guid:     guid,
		Name:     gofakeit.Company(),
		Priority: gofakeit.Number(1, 20),
		SiteURL:  gofakeit.URL(),
		Energy: model.EnergyInfo{
			Total:     total,
			Available: total / 2,
		},
		Fees:     []model.Fee{{Minutes: 60, Sun: sun}},
		IsActive: true,
	}
}

// GenerateMarketDocument returns a persisted document with a single sample at effectivePrice
func GenerateMarketDocument(guid string, effectivePrice float64, active bool) *model.MarketDocument {
	snapshot := GenerateFeeSnapshot(guid, effectivePrice)
	snapshot.IsActive = active
	now := time.Now().UTC().Truncate(time.Millisecond)

	return &model.MarketDocument{
		MarketSnapshot: *snapshot,
		Pricing: &model.PricingSummary{
			Unit:           "TRX",
			EffectivePrice: effectivePrice,
			BestPrice:      effectivePrice,
			MedianPrice:    effectivePrice,
			AveragePrice:   effectivePrice,
			WorstPrice:     effectivePrice,
			SampleSize:     1,
		},
		Reliability:         gofakeit.Float64Range(0.5, 1),
		AvailabilityPercent: 50,
		FetchDurationMs:     int64(gofakeit.Number(10, 2000)),
		LastUpdated:         now,
	}
}
