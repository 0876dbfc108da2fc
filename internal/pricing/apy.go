package pricing

import (
	"math"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const minutesPerYear = 365 * 24 * 60

// CalculateAPY annualizes the TRX earned by renting out energy for minutes
// against the TRX that has to be staked to produce that energy per day.
// It returns nil for any input that cannot produce a meaningful rate.
func CalculateAPY(energy, paymentSun int64, minutes float64, chain *model.ChainParameters) *float64 {
	if energy <= 0 || paymentSun <= 0 || !isPositive(minutes) {
		return nil
	}

	energyPerTrx := chain.EnergyPerTrx()
	if !isPositive(energyPerTrx) {
		return nil
	}

	stakedTrx := float64(energy) / energyPerTrx
	earnedTrx := float64(paymentSun) / sunPerTrx
	apy := earnedTrx / stakedTrx * (minutesPerYear / minutes) * 100

	if math.IsNaN(apy) || math.IsInf(apy, 0) {
		return nil
	}
	apy = round(apy, 2)
	return &apy
}

// OrderAPYs fills buyer and seller APY of an order, the seller side uses the
// payout after platform fees when the source reports it
func OrderAPYs(order *model.Order, chain *model.ChainParameters) {
	order.BuyerAPY = CalculateAPY(order.Energy, order.Payment, order.Minutes, chain)

	payout := order.Payout
	if payout <= 0 {
		payout = order.Payment
	}
	order.SellerAPY = CalculateAPY(order.Energy, payout, order.Minutes, chain)
}
