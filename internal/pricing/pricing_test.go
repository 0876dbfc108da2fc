package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildPricePoints(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("orders fees and spot price", func(t *testing.T) {
		snapshot := &model.MarketSnapshot{
			Guid: "alpha",
			Orders: []model.Order{
				// 130k energy for 2 hours at 10 TRX is 2.5 TRX per reference unit
				{Energy: 130_000, Payment: 10_000_000, Minutes: 120},
				// invalid entries are dropped
				{Energy: 0, Payment: 10_000_000, Minutes: 60},
				{Energy: 65_000, Payment: 0, Minutes: 60},
				{Energy: 65_000, Payment: 1_000_000, Minutes: math.NaN()},
			},
			Fees: []model.Fee{
				// 60 SUN per energy for one hour at the reference amount
				{Minutes: 60, Sun: 60},
				// 90 SUN per energy for 3 days on 1M energy tier
				{Minutes: 3 * 24 * 60, Sun: 90, Energy: 1_000_000},
				{Minutes: 0, Sun: 30},
			},
			Energy: model.EnergyInfo{
				Price:    ptr(50.0),
				MinOrder: ptr(int64(32_000)),
			},
		}

		points := BuildPricePoints(snapshot, now)
		require.Len(t, points, 4)

		order := points[0]
		assert.Equal(t, model.PriceSourceOrder, order.Source)
		assert.InDelta(t, 2.5, order.NormalizedPrice, 1e-9)
		assert.InDelta(t, 10.0, order.RawPrice, 1e-9)
		assert.True(t, order.IncludesFees)
		assert.Equal(t, now, order.Timestamp)

		fee := points[1]
		assert.Equal(t, model.PriceSourceFee, fee.Source)
		assert.Equal(t, ReferenceEnergy, fee.EnergyAmount)
		assert.InDelta(t, 3.9, fee.NormalizedPrice, 1e-9)

		tier := points[2]
		assert.EqualValues(t, 1_000_000, tier.EnergyAmount)
		// 90 TRX for 1M energy over 72h scaled to 65k for 1h
		assert.InDelta(t, 90*0.065/72, tier.NormalizedPrice, 1e-6)

		spot := points[3]
		assert.Equal(t, model.PriceSourceManual, spot.Source)
		assert.EqualValues(t, 32_000, spot.EnergyAmount)
		assert.InDelta(t, 3.25, spot.NormalizedPrice, 1e-9)
	})

	t.Run("nothing priced", func(t *testing.T) {
		assert.Empty(t, BuildPricePoints(&model.MarketSnapshot{Guid: "empty"}, now))
		assert.Nil(t, BuildPricePoints(nil, now))
	})
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 1.0, Normalize(1, ReferenceEnergy, ReferenceMinutes), 1e-12)
	assert.InDelta(t, 0.5, Normalize(1, 2*ReferenceEnergy, ReferenceMinutes), 1e-12)
	assert.True(t, math.IsNaN(Normalize(1, 0, 60)))
	assert.True(t, math.IsNaN(Normalize(1, ReferenceEnergy, math.Inf(1))))
	assert.True(t, math.IsNaN(Normalize(1, ReferenceEnergy, -5)))
}

func TestSummarize(t *testing.T) {
	assert.Nil(t, Summarize(nil))

	points := func(prices ...float64) []model.PricePoint {
		out := make([]model.PricePoint, len(prices))
		for i, p := range prices {
			out[i] = model.PricePoint{NormalizedPrice: p}
		}
		return out
	}

	t.Run("odd count", func(t *testing.T) {
		s := Summarize(points(5, 1, 3))
		require.NotNil(t, s)
		assert.Equal(t, Unit, s.Unit)
		assert.Equal(t, 1.0, s.EffectivePrice)
		assert.Equal(t, 1.0, s.BestPrice)
		assert.Equal(t, 3.0, s.MedianPrice)
		assert.Equal(t, 3.0, s.AveragePrice)
		assert.Equal(t, 5.0, s.WorstPrice)
		assert.Equal(t, 3, s.SampleSize)
		assert.Equal(t, 1.0, s.Sources[0].NormalizedPrice)
	})

	t.Run("even count averages the middle points", func(t *testing.T) {
		s := Summarize(points(4, 1, 2, 10))
		assert.Equal(t, 3.0, s.MedianPrice)
		assert.Equal(t, 4.25, s.AveragePrice)
	})

	t.Run("best <= median <= worst", func(t *testing.T) {
		for _, set := range [][]float64{{1}, {2, 2}, {9, 1, 5, 7}, {0.3, 0.1, 0.2}} {
			s := Summarize(points(set...))
			assert.LessOrEqual(t, s.BestPrice, s.MedianPrice)
			assert.LessOrEqual(t, s.MedianPrice, s.WorstPrice)
		}
	})

	t.Run("input is not reordered", func(t *testing.T) {
		in := points(3, 1)
		Summarize(in)
		assert.Equal(t, 3.0, in[0].NormalizedPrice)
	})
}

func TestAvailabilityPercent(t *testing.T) {
	assert.Equal(t, 25.0, AvailabilityPercent(model.EnergyInfo{Total: 400, Available: 100}))
	assert.Equal(t, 100.0, AvailabilityPercent(model.EnergyInfo{Total: 100, Available: 500}))
	assert.Equal(t, 0.0, AvailabilityPercent(model.EnergyInfo{Total: 0, Available: 10}))
}
