package fetcher

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const (
	spotUnitHourly = "sun/energy/hour"
	spotUnitDaily  = "sun/energy/day"
)

var hoursPerDay = decimal.NewFromInt(24)

type spotResponse struct {
	Price           *decimal.Decimal `json:"price"`
	Unit            string           `json:"unit"`
	TotalEnergy     int64            `json:"totalEnergy"`
	AvailableEnergy int64            `json:"availableEnergy"`
	MinOrder        *int64           `json:"minOrder"`
	MaxOrder        *int64           `json:"maxOrder"`
}

// SpotPuller reads a single advertised price. Daily quotes are converted to hourly.
type SpotPuller struct {
	source *source
}

func NewSpotPuller(market config.MarketConfig, cfg *config.FetcherConfig) *SpotPuller {
	return &SpotPuller{source: newSource(market, cfg)}
}

func (p *SpotPuller) Pull(ctx context.Context, _ *model.ChainParameters) (*RawMarket, error) {
	resp, err := getJSON[spotResponse](ctx, p.source)
	if err != nil {
		return nil, err
	}

	raw := &RawMarket{
		TotalEnergy:     resp.TotalEnergy,
		AvailableEnergy: resp.AvailableEnergy,
		MinOrder:        resp.MinOrder,
		MaxOrder:        resp.MaxOrder,
	}
	if resp.Price == nil {
		return raw, nil
	}

	switch resp.Unit {
	case "", spotUnitHourly:
		price := *resp.Price
		raw.SpotPriceSun = &price
	case spotUnitDaily:
		price := resp.Price.Div(hoursPerDay)
		raw.SpotPriceSun = &price
	default:
		return nil, fmt.Errorf("unsupported spot price unit %q", resp.Unit)
	}
	return raw, nil
}
