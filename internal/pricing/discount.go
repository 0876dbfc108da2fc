package pricing

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const minDiscountPercent = 1.0

// DetectBulkDiscounts compares the cheapest normalized price of every
// distinct energy tier against the smallest tier
func DetectBulkDiscounts(points []model.PricePoint) model.BulkDiscount {
	cheapest := make(map[int64]float64)
	for _, p := range points {
		if p.EnergyAmount <= 0 || !isPositive(p.NormalizedPrice) {
			continue
		}
		if current, ok := cheapest[p.EnergyAmount]; !ok || p.NormalizedPrice < current {
			cheapest[p.EnergyAmount] = p.NormalizedPrice
		}
	}

	if len(cheapest) < 2 {
		return model.BulkDiscount{HasDiscount: false}
	}

	energies := make([]int64, 0, len(cheapest))
	for energy := range cheapest {
		energies = append(energies, energy)
	}
	sort.Slice(energies, func(i, j int) bool { return energies[i] < energies[j] })

	baseline := cheapest[energies[0]]
	var tiers []model.BulkDiscountTier
	var maxDiscount float64
	for _, energy := range energies[1:] {
		price := cheapest[energy]
		discount := round((baseline-price)/baseline*100, 2)
		if discount <= minDiscountPercent {
			continue
		}
		tiers = append(tiers, model.BulkDiscountTier{
			MinEnergy:       energy,
			Price:           price,
			DiscountPercent: discount,
		})
		if discount > maxDiscount {
			maxDiscount = discount
		}
	}

	if len(tiers) == 0 {
		return model.BulkDiscount{HasDiscount: false}
	}

	// the summary advertises the lowest energy at which discounts begin
	threshold := tiers[0].MinEnergy
	return model.BulkDiscount{
		HasDiscount: true,
		MaxDiscount: maxDiscount,
		Tiers:       tiers,
		Summary: fmt.Sprintf("Up to %s%% off for orders of %d+ energy",
			strconv.FormatFloat(maxDiscount, 'f', -1, 64), threshold),
	}
}
