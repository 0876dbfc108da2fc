package fetcher

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

type feeScheduleResponse struct {
	TotalEnergy     int64  `json:"totalEnergy"`
	AvailableEnergy int64  `json:"availableEnergy"`
	MinOrder        *int64 `json:"minOrder"`
	MaxOrder        *int64 `json:"maxOrder"`
	Fees            []struct {
		Minutes   int64           `json:"minutes"`
		Sun       decimal.Decimal `json:"sun"`
		MinEnergy int64           `json:"minEnergy"`
	} `json:"fees"`
}

// FeeSchedulePuller reads a fixed price list with one SUN per energy price per duration tier
type FeeSchedulePuller struct {
	source *source
}

func NewFeeSchedulePuller(market config.MarketConfig, cfg *config.FetcherConfig) *FeeSchedulePuller {
	return &FeeSchedulePuller{source: newSource(market, cfg)}
}

func (p *FeeSchedulePuller) Pull(ctx context.Context, _ *model.ChainParameters) (*RawMarket, error) {
	resp, err := getJSON[feeScheduleResponse](ctx, p.source)
	if err != nil {
		return nil, err
	}

	raw := &RawMarket{
		TotalEnergy:     resp.TotalEnergy,
		AvailableEnergy: resp.AvailableEnergy,
		MinOrder:        resp.MinOrder,
		MaxOrder:        resp.MaxOrder,
	}
	for _, fee := range resp.Fees {
		raw.Fees = append(raw.Fees, RawFee{
			Minutes:   fee.Minutes,
			Sun:       fee.Sun,
			MinEnergy: fee.MinEnergy,
		})
	}
	return raw, nil
}
