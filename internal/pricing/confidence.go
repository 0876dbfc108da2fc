package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const successRateStatsKey = "successRate"

type ConfidenceInput struct {
	Reliability float64
	Available   int64
	Total       int64
	SampleSize  int
	// SuccessRate is an optional provider reported fill ratio in [0,1]
	SuccessRate *float64
}

// AvailabilityConfidence blends reliability, free capacity, sample count and
// the provider success rate into a score in [0,1] rounded to 3 decimals
func AvailabilityConfidence(in ConfidenceInput) float64 {
	var availability float64
	if in.Total > 0 {
		availability = clamp(float64(in.Available)/float64(in.Total), 0, 1)
	}

	score := 0.5*clamp(in.Reliability, 0, 1) +
		0.3*availability +
		0.1*math.Min(float64(in.SampleSize)/5, 1)

	if in.SuccessRate != nil {
		score += 0.1 * clamp(*in.SuccessRate, 0, 1)
	}
	if in.SampleSize == 0 {
		score -= 0.05
	}

	return round(clamp(score, 0, 1), 3)
}

// SuccessRateFromStats reads the provider success rate from free form stats.
// Values above 1 are treated as percentages.
func SuccessRateFromStats(stats map[string]any) *float64 {
	raw, ok := stats[successRateStatsKey]
	if !ok || raw == nil {
		return nil
	}

	var rate float64
	switch v := raw.(type) {
	case float64:
		rate = v
	case float32:
		rate = float64(v)
	case int:
		rate = float64(v)
	case int32:
		rate = float64(v)
	case int64:
		rate = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		rate = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
		if err != nil {
			return nil
		}
		rate = f
	default:
		return nil
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return nil
	}
	if rate > 1 {
		rate /= 100
	}
	rate = clamp(rate, 0, 1)
	return &rate
}
