package change

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func marketDoc(price float64) *model.MarketDocument {
	d := &model.MarketDocument{
		MarketSnapshot: model.MarketSnapshot{
			Guid:     "alpha",
			IsActive: true,
			Stats:    map[string]any{"orders": 4},
		},
		Reliability:         0.9,
		AvailabilityPercent: 40,
	}
	if price > 0 {
		d.Pricing = &model.PricingSummary{EffectivePrice: price}
	}
	return d
}

func TestEvaluate(t *testing.T) {
	t.Run("first observation", func(t *testing.T) {
		res := Evaluate(nil, marketDoc(100))
		assert.True(t, res.HasChanged)
		assert.Contains(t, res.Diff, FieldFirstObservation)
	})

	t.Run("price moved 0.6%", func(t *testing.T) {
		res := Evaluate(marketDoc(100), marketDoc(100.6))
		require.True(t, res.HasChanged)
		require.Contains(t, res.Diff, FieldEffectivePrice)
		assert.Equal(t, Delta{Previous: 100.0, Current: 100.6}, res.Diff[FieldEffectivePrice])
	})

	t.Run("price moved 0.4%", func(t *testing.T) {
		res := Evaluate(marketDoc(100), marketDoc(100.4))
		assert.False(t, res.HasChanged)
		assert.NotContains(t, res.Diff, FieldEffectivePrice)
	})

	t.Run("small price move with another trigger", func(t *testing.T) {
		curr := marketDoc(100.4)
		curr.Reliability = 0.8
		res := Evaluate(marketDoc(100), curr)
		require.True(t, res.HasChanged)
		assert.Contains(t, res.Diff, FieldReliability)
		assert.NotContains(t, res.Diff, FieldEffectivePrice)
	})

	t.Run("pricing disappeared", func(t *testing.T) {
		res := Evaluate(marketDoc(100), marketDoc(0))
		require.True(t, res.HasChanged)
		assert.Equal(t, Delta{Previous: 100.0, Current: nil}, res.Diff[FieldEffectivePrice])
	})

	t.Run("availability", func(t *testing.T) {
		curr := marketDoc(100)
		curr.AvailabilityPercent = 45
		assert.True(t, Evaluate(marketDoc(100), curr).HasChanged)

		curr.AvailabilityPercent = 44.9
		assert.False(t, Evaluate(marketDoc(100), curr).HasChanged)
	})

	t.Run("active flag flip", func(t *testing.T) {
		curr := marketDoc(100)
		curr.IsActive = false
		res := Evaluate(marketDoc(100), curr)
		require.True(t, res.HasChanged)
		assert.Equal(t, Delta{Previous: true, Current: false}, res.Diff[FieldIsActive])
	})

	t.Run("reliability on the threshold", func(t *testing.T) {
		curr := marketDoc(100)
		curr.Reliability = 0.85
		assert.True(t, Evaluate(marketDoc(100), curr).HasChanged)

		curr.Reliability = 0.87
		assert.False(t, Evaluate(marketDoc(100), curr).HasChanged)
	})

	t.Run("stats fallback", func(t *testing.T) {
		curr := marketDoc(100)
		curr.Stats = map[string]any{"orders": 5}
		res := Evaluate(marketDoc(100), curr)
		require.True(t, res.HasChanged)
		assert.Contains(t, res.Diff, FieldStats)
	})

	t.Run("stats ignored when a numeric trigger fired", func(t *testing.T) {
		curr := marketDoc(120)
		curr.Stats = map[string]any{"orders": 5}
		res := Evaluate(marketDoc(100), curr)
		assert.NotContains(t, res.Diff, FieldStats)
	})

	t.Run("stats decoded from mongo compare equal", func(t *testing.T) {
		prev := marketDoc(100)
		prev.Stats = map[string]any{
			"orders": int32(4),
			"depth":  primitive.D{{Key: "b", Value: 2.0}, {Key: "a", Value: int64(1)}},
			"tags":   primitive.A{"x", "y"},
		}
		curr := marketDoc(100)
		curr.Stats = map[string]any{
			"tags":   []any{"x", "y"},
			"depth":  map[string]any{"a": 1, "b": 2},
			"orders": 4,
		}
		assert.False(t, Evaluate(prev, curr).HasChanged)
	})

	t.Run("unchanged", func(t *testing.T) {
		res := Evaluate(marketDoc(100), marketDoc(100))
		assert.False(t, res.HasChanged)
		assert.Empty(t, res.Diff)
	})
}
