package model

import "time"

// ChainParameters holds the TRON network values needed to price energy
type ChainParameters struct {
	EnergyFee         int64     `bson:"energy_fee" json:"energyFee"` // SUN burned per energy unit
	TotalEnergyLimit  int64     `bson:"total_energy_limit" json:"totalEnergyLimit"`
	TotalEnergyWeight int64     `bson:"total_energy_weight" json:"totalEnergyWeight"` // TRX staked for energy network-wide
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// EnergyPerTrx returns how much daily energy one staked TRX yields, or 0 when unknown
func (p *ChainParameters) EnergyPerTrx() float64 {
	if p == nil || p.TotalEnergyWeight <= 0 || p.TotalEnergyLimit <= 0 {
		return 0
	}
	return float64(p.TotalEnergyLimit) / float64(p.TotalEnergyWeight)
}
