package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func tierPoint(energy int64, price float64) model.PricePoint {
	return model.PricePoint{Source: model.PriceSourceFee, EnergyAmount: energy, NormalizedPrice: price}
}

func TestDetectBulkDiscounts(t *testing.T) {
	t.Run("three tiers", func(t *testing.T) {
		result := DetectBulkDiscounts([]model.PricePoint{
			tierPoint(320_000, 6),
			tierPoint(32_000, 10),
			tierPoint(100_000, 8),
			// a more expensive duplicate tier is ignored
			tierPoint(100_000, 9.5),
		})

		require.True(t, result.HasDiscount)
		assert.Equal(t, []model.BulkDiscountTier{
			{MinEnergy: 100_000, Price: 8, DiscountPercent: 20},
			{MinEnergy: 320_000, Price: 6, DiscountPercent: 40},
		}, result.Tiers)
		assert.Equal(t, 40.0, result.MaxDiscount)
		assert.Contains(t, result.Summary, "100000")
		assert.Contains(t, result.Summary, "40%")
	})

	t.Run("single tier", func(t *testing.T) {
		result := DetectBulkDiscounts([]model.PricePoint{tierPoint(32_000, 10), tierPoint(32_000, 8)})
		assert.Equal(t, model.BulkDiscount{HasDiscount: false}, result)
	})

	t.Run("discount too small", func(t *testing.T) {
		result := DetectBulkDiscounts([]model.PricePoint{tierPoint(32_000, 10), tierPoint(64_000, 9.95)})
		assert.False(t, result.HasDiscount)
		assert.Empty(t, result.Tiers)
	})

	t.Run("bigger tiers more expensive", func(t *testing.T) {
		result := DetectBulkDiscounts([]model.PricePoint{tierPoint(32_000, 10), tierPoint(64_000, 12)})
		assert.False(t, result.HasDiscount)
	})

	t.Run("no points", func(t *testing.T) {
		assert.False(t, DetectBulkDiscounts(nil).HasDiscount)
	})
}
