// Package change decides whether a freshly aggregated market document differs
// materially from the persisted one.
package change

import (
	"bytes"
	"encoding/json"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const (
	PriceThreshold        = 0.005 // relative
	AvailabilityThreshold = 5.0   // percentage points
	ReliabilityThreshold  = 0.05

	// float noise tolerance so deltas landing exactly on a threshold still fire
	epsilon = 1e-9
)

// diff keys
const (
	FieldFirstObservation = "firstObservation"
	FieldEffectivePrice   = "effectivePrice"
	FieldAvailability     = "availabilityPercent"
	FieldIsActive         = "isActive"
	FieldReliability      = "reliability"
	FieldStats            = "stats"
)

type Delta struct {
	Previous any `json:"previous"`
	Current  any `json:"current"`
}

type Result struct {
	HasChanged bool             `json:"hasChanged"`
	Diff       map[string]Delta `json:"diff,omitempty"`
}

// Evaluate compares prev and curr of the same source. A nil prev is always a change.
func Evaluate(prev, curr *model.MarketDocument) Result {
	if curr == nil {
		return Result{}
	}
	if prev == nil {
		return Result{
			HasChanged: true,
			Diff:       map[string]Delta{FieldFirstObservation: {Previous: nil, Current: curr.Guid}},
		}
	}

	diff := make(map[string]Delta)

	prevPrice, prevPriced := effectivePrice(prev)
	currPrice, currPriced := effectivePrice(curr)
	switch {
	case prevPriced && currPriced:
		if math.Abs(currPrice-prevPrice)/prevPrice >= PriceThreshold-epsilon {
			diff[FieldEffectivePrice] = Delta{Previous: prevPrice, Current: currPrice}
		}
	case prevPriced != currPriced:
		diff[FieldEffectivePrice] = Delta{Previous: priceOrNil(prevPrice, prevPriced), Current: priceOrNil(currPrice, currPriced)}
	}

	if math.Abs(curr.AvailabilityPercent-prev.AvailabilityPercent) >= AvailabilityThreshold-epsilon {
		diff[FieldAvailability] = Delta{Previous: prev.AvailabilityPercent, Current: curr.AvailabilityPercent}
	}

	if curr.IsActive != prev.IsActive {
		diff[FieldIsActive] = Delta{Previous: prev.IsActive, Current: curr.IsActive}
	}

	if math.Abs(curr.Reliability-prev.Reliability) >= ReliabilityThreshold-epsilon {
		diff[FieldReliability] = Delta{Previous: prev.Reliability, Current: curr.Reliability}
	}

	if len(diff) == 0 && !sameStats(prev.Stats, curr.Stats) {
		diff[FieldStats] = Delta{Previous: prev.Stats, Current: curr.Stats}
	}

	if len(diff) == 0 {
		return Result{HasChanged: false}
	}
	return Result{HasChanged: true, Diff: diff}
}

func effectivePrice(doc *model.MarketDocument) (float64, bool) {
	if doc.Pricing == nil || doc.Pricing.EffectivePrice <= 0 {
		return 0, false
	}
	return doc.Pricing.EffectivePrice, true
}

func priceOrNil(price float64, ok bool) any {
	if !ok {
		return nil
	}
	return price
}

// sameStats compares canonical JSON, encoding/json sorts map keys
func sameStats(a, b map[string]any) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}

	left, errA := json.Marshal(canonical(a))
	right, errB := json.Marshal(canonical(b))
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(left, right)
}

// canonical unifies the shapes the mongo driver decodes nested documents into
// with the plain maps and slices produced by fetchers
func canonical(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = canonical(item)
		}
		return out
	case primitive.M:
		return canonical(map[string]any(val))
	case primitive.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = canonical(e.Value)
		}
		return out
	case primitive.A:
		return canonical([]any(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = canonical(item)
		}
		return out
	default:
		return v
	}
}
