package fetcher

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

var secondsPerMinute = decimal.NewFromInt(60)

type orderBookResponse struct {
	Energy struct {
		Total     int64 `json:"total"`
		Available int64 `json:"available"`
	} `json:"energy"`
	Orders []struct {
		Energy      int64           `json:"energy"`
		Payment     decimal.Decimal `json:"payment"`
		Payout      decimal.Decimal `json:"payout"`
		DurationSec decimal.Decimal `json:"durationSec"`
	} `json:"orders"`
	Stats map[string]any `json:"stats"`
}

// OrderBookPuller reads a live order book, each order quotes its own payment and duration
type OrderBookPuller struct {
	source *source
}

func NewOrderBookPuller(market config.MarketConfig, cfg *config.FetcherConfig) *OrderBookPuller {
	return &OrderBookPuller{source: newSource(market, cfg)}
}

func (p *OrderBookPuller) Pull(ctx context.Context, _ *model.ChainParameters) (*RawMarket, error) {
	resp, err := getJSON[orderBookResponse](ctx, p.source)
	if err != nil {
		return nil, err
	}

	raw := &RawMarket{
		TotalEnergy:     resp.Energy.Total,
		AvailableEnergy: resp.Energy.Available,
		Stats:           resp.Stats,
	}
	for _, o := range resp.Orders {
		raw.Orders = append(raw.Orders, RawOrder{
			Energy:     o.Energy,
			PaymentSun: o.Payment,
			PayoutSun:  o.Payout,
			Minutes:    o.DurationSec.Div(secondsPerMinute),
		})
	}
	return raw, nil
}
