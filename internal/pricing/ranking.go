package pricing

import (
	"math"
	"sort"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

// ReferenceCost is the ranking key of a document, unpriced documents sort last
func ReferenceCost(doc *model.MarketDocument) float64 {
	if doc.Pricing == nil || !isPositive(doc.Pricing.EffectivePrice) {
		return math.Inf(1)
	}
	return doc.Pricing.EffectivePrice
}

// Rank orders docs in place by reference cost ascending, then live order
// count descending, then priority ascending and guid. It assigns 1-based
// ranks and marks only the first document as best deal.
func Rank(docs []*model.MarketDocument) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		costA, costB := ReferenceCost(a), ReferenceCost(b)
		if costA != costB {
			return costA < costB
		}
		if a.OrderCount() != b.OrderCount() {
			return a.OrderCount() > b.OrderCount()
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Guid < b.Guid
	})

	for i, doc := range docs {
		doc.Rank = i + 1
		doc.IsBestDeal = i == 0
	}
}
