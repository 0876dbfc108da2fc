package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func doc(guid string, price float64, orders, priority int) *model.MarketDocument {
	d := &model.MarketDocument{
		MarketSnapshot: model.MarketSnapshot{
			Guid:     guid,
			Priority: priority,
			Orders:   make([]model.Order, orders),
			IsActive: true,
		},
	}
	if price > 0 {
		d.Pricing = &model.PricingSummary{EffectivePrice: price}
	}
	return d
}

func TestRank(t *testing.T) {
	t.Run("equal price ties broken by order count", func(t *testing.T) {
		docs := []*model.MarketDocument{doc("three", 2.5, 3, 1), doc("seven", 2.5, 7, 9)}
		Rank(docs)

		assert.Equal(t, "seven", docs[0].Guid)
		assert.Equal(t, 1, docs[0].Rank)
		assert.True(t, docs[0].IsBestDeal)
		assert.Equal(t, 2, docs[1].Rank)
		assert.False(t, docs[1].IsBestDeal)
	})

	t.Run("exactly one best deal", func(t *testing.T) {
		docs := []*model.MarketDocument{
			doc("unpriced", 0, 20, 1),
			doc("cheap", 1.1, 0, 5),
			doc("pricey", 4, 2, 1),
			doc("same-orders-b", 2, 2, 3),
			doc("same-orders-a", 2, 2, 2),
		}
		docs[1].IsBestDeal = true
		docs[2].IsBestDeal = true

		Rank(docs)

		var guids []string
		best := 0
		for i, d := range docs {
			guids = append(guids, d.Guid)
			assert.Equal(t, i+1, d.Rank)
			if d.IsBestDeal {
				best++
			}
		}
		assert.Equal(t, 1, best)
		assert.Equal(t, []string{"cheap", "same-orders-a", "same-orders-b", "pricey", "unpriced"}, guids)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.NotPanics(t, func() { Rank(nil) })
	})
}

func TestReferenceCost(t *testing.T) {
	assert.Equal(t, 3.0, ReferenceCost(doc("a", 3, 0, 0)))
	assert.True(t, math.IsInf(ReferenceCost(doc("b", 0, 0, 0)), 1))
}
