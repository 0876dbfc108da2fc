// Package fetcher pulls energy rental offers from external sources and
// normalizes them into market snapshots.
package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
	"github.com/tronrelic/tronrelic-indexer/internal/pricing"
)

const DefaultSchedule = "*/10 * * * *"

//go:generate mockery --name=Fetcher --output=../../tests/mocks --outpkg=mocks --filename=mock_fetcher.go

// Fetcher produces one snapshot per call. A nil snapshot with a nil error is
// a soft failure, the source had nothing usable this cycle.
type Fetcher interface {
	Guid() string
	Name() string
	// Schedule is informational, the aggregator polls every fetcher on its own interval
	Schedule() string
	Fetch(ctx context.Context, chain *model.ChainParameters) (*model.MarketSnapshot, error)
}

// Puller talks to one provider API and returns its payload in raw form
type Puller interface {
	Pull(ctx context.Context, chain *model.ChainParameters) (*RawMarket, error)
}

type RawOrder struct {
	Energy     int64
	PaymentSun decimal.Decimal
	PayoutSun  decimal.Decimal
	Minutes    decimal.Decimal
}

type RawFee struct {
	Minutes   int64
	Sun       decimal.Decimal
	MinEnergy int64
}

type RawMarket struct {
	TotalEnergy     int64
	AvailableEnergy int64
	// SpotPriceSun is quoted per energy unit per hour
	SpotPriceSun *decimal.Decimal
	MinOrder     *int64
	MaxOrder     *int64
	Fees         []RawFee
	Orders       []RawOrder
	Stats        map[string]any
}

func (r *RawMarket) IsEmpty() bool {
	return r == nil ||
		(r.TotalEnergy == 0 && r.AvailableEnergy == 0 && r.SpotPriceSun == nil &&
			len(r.Fees) == 0 && len(r.Orders) == 0)
}

func (r *RawMarket) Validate() error {
	if r.TotalEnergy < 0 || r.AvailableEnergy < 0 {
		return errors.New("negative energy amounts")
	}
	if r.TotalEnergy > 0 && r.AvailableEnergy > r.TotalEnergy {
		return fmt.Errorf("available energy %d exceeds total %d", r.AvailableEnergy, r.TotalEnergy)
	}
	if r.SpotPriceSun != nil && r.SpotPriceSun.IsNegative() {
		return errors.New("negative spot price")
	}
	if r.MinOrder != nil && r.MaxOrder != nil && *r.MinOrder > *r.MaxOrder {
		return fmt.Errorf("min order %d exceeds max order %d", *r.MinOrder, *r.MaxOrder)
	}
	for i, fee := range r.Fees {
		if fee.Minutes <= 0 {
			return fmt.Errorf("fee #%d: duration must be positive", i)
		}
		if fee.Sun.IsNegative() {
			return fmt.Errorf("fee #%d: negative price", i)
		}
		if fee.MinEnergy < 0 {
			return fmt.Errorf("fee #%d: negative energy threshold", i)
		}
	}
	for i, order := range r.Orders {
		if order.Energy <= 0 {
			return fmt.Errorf("order #%d: energy must be positive", i)
		}
		if order.PaymentSun.IsNegative() || order.PayoutSun.IsNegative() {
			return fmt.Errorf("order #%d: negative payment", i)
		}
		if !order.Minutes.IsPositive() {
			return fmt.Errorf("order #%d: duration must be positive", i)
		}
	}
	return nil
}

// Base turns a Puller into a Fetcher
type Base struct {
	market config.MarketConfig
	puller Puller
}

func NewBase(market config.MarketConfig, puller Puller) *Base {
	return &Base{market: market, puller: puller}
}

func (b *Base) Guid() string {
	return b.market.Guid
}

func (b *Base) Name() string {
	return b.market.Name
}

func (b *Base) Schedule() string {
	if b.market.Schedule == "" {
		return DefaultSchedule
	}
	return b.market.Schedule
}

// Fetch returns a synthetic inactive snapshot when the source is permanently
// unreachable. Transient errors are returned as is.
func (b *Base) Fetch(ctx context.Context, chain *model.ChainParameters) (*model.MarketSnapshot, error) {
	logger := log.Ctx(ctx).With().Str("guid", b.market.Guid).Logger()

	raw, err := b.puller.Pull(ctx, chain)
	if err != nil {
		if IsPermanent(err) {
			logger.Warn().Err(err).Msg("source is permanently unreachable, marking it inactive")
			return b.inactiveSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to pull %s: %w", b.market.Guid, err)
	}

	if raw.IsEmpty() {
		logger.Debug().Msg("source returned no data")
		return nil, nil
	}

	if err := raw.Validate(); err != nil {
		logger.Warn().Err(err).Msg("discarding invalid source payload")
		return nil, nil
	}

	return b.transform(raw, chain), nil
}

func (b *Base) transform(raw *RawMarket, chain *model.ChainParameters) *model.MarketSnapshot {
	snapshot := b.skeleton()
	snapshot.IsActive = true
	snapshot.Energy = model.EnergyInfo{
		Total:     raw.TotalEnergy,
		Available: raw.AvailableEnergy,
		MinOrder:  raw.MinOrder,
		MaxOrder:  raw.MaxOrder,
	}
	if raw.SpotPriceSun != nil {
		price := raw.SpotPriceSun.InexactFloat64()
		snapshot.Energy.Price = &price
	}

	for _, fee := range raw.Fees {
		snapshot.Fees = append(snapshot.Fees, model.Fee{
			Minutes: fee.Minutes,
			Sun:     fee.Sun.InexactFloat64(),
			Energy:  fee.MinEnergy,
		})
	}

	for _, o := range raw.Orders {
		order := model.Order{
			Energy:  o.Energy,
			Payment: o.PaymentSun.Round(0).IntPart(),
			Payout:  o.PayoutSun.Round(0).IntPart(),
			Minutes: o.Minutes.InexactFloat64(),
		}
		pricing.OrderAPYs(&order, chain)
		snapshot.Orders = append(snapshot.Orders, order)
	}

	if len(raw.Stats) > 0 {
		snapshot.Stats = raw.Stats
	}
	return snapshot
}

func (b *Base) inactiveSnapshot() *model.MarketSnapshot {
	snapshot := b.skeleton()
	snapshot.Priority = model.InactivePriority
	snapshot.IsActive = false
	return snapshot
}

func (b *Base) skeleton() *model.MarketSnapshot {
	snapshot := &model.MarketSnapshot{
		Guid:        b.market.Guid,
		Name:        b.market.Name,
		Priority:    b.market.Priority,
		SiteURL:     b.market.SiteURL,
		Description: b.market.Description,
	}
	if b.market.Affiliate != "" {
		snapshot.Affiliate = &model.Affiliate{
			Link:       b.market.Affiliate,
			Commission: b.market.Commission,
		}
	}
	return snapshot
}
