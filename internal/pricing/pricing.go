// Package pricing normalizes heterogeneous energy rental quotes into the cost
// of one reference transaction and derives statistics from them. Every
// function here is pure.
package pricing

import (
	"math"
	"sort"
	"time"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const (
	// ReferenceEnergy is the energy burned by one USDT transfer
	ReferenceEnergy int64 = 65_000
	ReferenceMinutes      = 60.0
	Unit                  = "TRX"

	sunPerTrx = 1_000_000.0
)

// BuildPricePoints converts orders, fee tiers and the advertised spot price
// of a snapshot into comparable points, dropping anything that does not
// normalize to a finite positive price
func BuildPricePoints(snapshot *model.MarketSnapshot, now time.Time) []model.PricePoint {
	if snapshot == nil {
		return nil
	}

	var points []model.PricePoint
	add := func(source model.PriceSource, energy int64, minutes, rawTrx float64, includesFees bool) {
		normalized := Normalize(rawTrx, energy, minutes)
		if !isPositive(normalized) || !isPositive(rawTrx) {
			return
		}
		points = append(points, model.PricePoint{
			Source:          source,
			DurationMinutes: minutes,
			EnergyAmount:    energy,
			NormalizedPrice: round(normalized, 6),
			RawPrice:        round(rawTrx, 6),
			IncludesFees:    includesFees,
			Timestamp:       now,
		})
	}

	for _, order := range snapshot.Orders {
		add(model.PriceSourceOrder, order.Energy, order.Minutes, float64(order.Payment)/sunPerTrx, true)
	}

	for _, fee := range snapshot.Fees {
		energy := fee.Energy
		if energy <= 0 {
			energy = ReferenceEnergy
		}
		add(model.PriceSourceFee, energy, float64(fee.Minutes), fee.Sun*float64(energy)/sunPerTrx, false)
	}

	if price := snapshot.Energy.Price; price != nil {
		energy := ReferenceEnergy
		if snapshot.Energy.MinOrder != nil && *snapshot.Energy.MinOrder > 0 {
			energy = *snapshot.Energy.MinOrder
		}
		// spot prices are quoted in SUN per energy unit per hour
		add(model.PriceSourceManual, energy, ReferenceMinutes, *price*float64(energy)/sunPerTrx, false)
	}

	return points
}

// Normalize scales a raw TRX cost for energy over minutes to the reference
// energy and duration. Invalid quotes yield NaN.
func Normalize(rawTrx float64, energy int64, minutes float64) float64 {
	if energy <= 0 || !isPositive(minutes) {
		return math.NaN()
	}
	return rawTrx * (float64(ReferenceEnergy) / float64(energy)) * (ReferenceMinutes / minutes)
}

// Summarize returns nil for an empty set, a source without samples carries no pricing
func Summarize(points []model.PricePoint) *model.PricingSummary {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]model.PricePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NormalizedPrice < sorted[j].NormalizedPrice
	})

	n := len(sorted)
	var sum float64
	for _, p := range sorted {
		sum += p.NormalizedPrice
	}

	var median float64
	if n%2 == 1 {
		median = sorted[n/2].NormalizedPrice
	} else {
		median = (sorted[n/2-1].NormalizedPrice + sorted[n/2].NormalizedPrice) / 2
	}

	best := sorted[0].NormalizedPrice
	return &model.PricingSummary{
		Unit:           Unit,
		EffectivePrice: best,
		BestPrice:      best,
		MedianPrice:    round(median, 6),
		AveragePrice:   round(sum/float64(n), 6),
		WorstPrice:     sorted[n-1].NormalizedPrice,
		SampleSize:     n,
		Sources:        sorted,
	}
}

// AvailabilityPercent is available/total as a percentage in [0,100]
func AvailabilityPercent(energy model.EnergyInfo) float64 {
	if energy.Total <= 0 {
		return 0
	}
	return round(clamp(float64(energy.Available)/float64(energy.Total), 0, 1)*100, 2)
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
