package model

import "time"

type PriceSource string

const (
	PriceSourceOrder  PriceSource = "order"
	PriceSourceFee    PriceSource = "fee"
	PriceSourceManual PriceSource = "manual"
)

// InactivePriority is assigned to synthetic snapshots of sources that are permanently unreachable
const InactivePriority = 9999

type EnergyInfo struct {
	Total     int64    `bson:"total" json:"total"`
	Available int64    `bson:"available" json:"available"`
	Price     *float64 `bson:"price,omitempty" json:"price,omitempty"` // SUN per energy unit per hour
	MinOrder  *int64   `bson:"min_order,omitempty" json:"minOrder,omitempty"`
	MaxOrder  *int64   `bson:"max_order,omitempty" json:"maxOrder,omitempty"`
}

// Fee is one duration tier of a fixed fee schedule
type Fee struct {
	Minutes int64   `bson:"minutes" json:"minutes"`
	Sun     float64 `bson:"sun" json:"sun"`                           // price per energy unit
	Energy  int64   `bson:"energy,omitempty" json:"energy,omitempty"` // tier threshold, 0 means any amount
}

// Order is a live order-book entry
type Order struct {
	Energy    int64    `bson:"energy" json:"energy"`
	Payment   int64    `bson:"payment" json:"payment"`                   // SUN paid by the buyer
	Payout    int64    `bson:"payout,omitempty" json:"payout,omitempty"` // SUN received by the seller
	Minutes   float64  `bson:"minutes" json:"minutes"`
	BuyerAPY  *float64 `bson:"buyer_apy,omitempty" json:"buyerApy,omitempty"`
	SellerAPY *float64 `bson:"seller_apy,omitempty" json:"sellerApy,omitempty"`
}

type Affiliate struct {
	Link         string  `bson:"link" json:"link"`
	Commission   float64 `bson:"commission,omitempty" json:"commission,omitempty"`
	TrackingCode string  `bson:"tracking_code,omitempty" json:"trackingCode,omitempty"`
}

// MarketSnapshot is one fetcher's normalized view of a source. It is always
// replaced, never mutated once produced.
type MarketSnapshot struct {
	Guid        string         `bson:"_id" json:"guid"`
	Name        string         `bson:"name" json:"name"`
	Priority    int            `bson:"priority" json:"priority"`
	SiteURL     string         `bson:"site_url,omitempty" json:"siteUrl,omitempty"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Energy      EnergyInfo     `bson:"energy" json:"energy"`
	Fees        []Fee          `bson:"fees,omitempty" json:"fees,omitempty"`
	Orders      []Order        `bson:"orders,omitempty" json:"orders,omitempty"`
	Affiliate   *Affiliate     `bson:"affiliate,omitempty" json:"affiliate,omitempty"`
	Stats       map[string]any `bson:"stats,omitempty" json:"stats,omitempty"`
	IsActive    bool           `bson:"is_active" json:"isActive"`
}

type PricePoint struct {
	Source          PriceSource `bson:"source" json:"source"`
	DurationMinutes float64     `bson:"duration_minutes" json:"durationMinutes"`
	EnergyAmount    int64       `bson:"energy_amount" json:"energyAmount"`
	NormalizedPrice float64     `bson:"normalized_price" json:"normalizedPrice"`
	RawPrice        float64     `bson:"raw_price" json:"rawPrice"`
	IncludesFees    bool        `bson:"includes_fees" json:"includesFees"`
	Timestamp       time.Time   `bson:"timestamp" json:"timestamp"`
}

type PricingSummary struct {
	Unit           string       `bson:"unit" json:"unit"`
	EffectivePrice float64      `bson:"effective_price" json:"effectivePrice"`
	BestPrice      float64      `bson:"best_price" json:"bestPrice"`
	MedianPrice    float64      `bson:"median_price" json:"medianPrice"`
	AveragePrice   float64      `bson:"average_price" json:"averagePrice"`
	WorstPrice     float64      `bson:"worst_price" json:"worstPrice"`
	SampleSize     int          `bson:"sample_size" json:"sampleSize"`
	Sources        []PricePoint `bson:"sources" json:"sources"`
}

type BulkDiscountTier struct {
	MinEnergy       int64   `bson:"min_energy" json:"minEnergy"`
	Price           float64 `bson:"price" json:"price"`
	DiscountPercent float64 `bson:"discount_percent" json:"discountPercent"`
}

type BulkDiscount struct {
	HasDiscount bool               `bson:"has_discount" json:"hasDiscount"`
	MaxDiscount float64            `bson:"max_discount,omitempty" json:"maxDiscount,omitempty"`
	Tiers       []BulkDiscountTier `bson:"tiers,omitempty" json:"tiers,omitempty"`
	Summary     string             `bson:"summary,omitempty" json:"summary,omitempty"`
}

// MarketDocument is the persisted state of one source, keyed by guid
type MarketDocument struct {
	MarketSnapshot         `bson:",inline"`
	Pricing                *PricingSummary `bson:"pricing,omitempty" json:"pricing,omitempty"`
	BulkDiscount           *BulkDiscount   `bson:"bulk_discount,omitempty" json:"bulkDiscount,omitempty"`
	Reliability            float64         `bson:"reliability" json:"reliability"`
	AvailabilityPercent    float64         `bson:"availability_percent" json:"availabilityPercent"`
	AvailabilityConfidence float64         `bson:"availability_confidence" json:"availabilityConfidence"`
	IsBestDeal             bool            `bson:"is_best_deal" json:"isBestDeal"`
	Rank                   int             `bson:"rank" json:"rank"`
	FetchDurationMs        int64           `bson:"fetch_duration_ms" json:"fetchDurationMs"`
	LastUpdated            time.Time       `bson:"last_updated" json:"lastUpdated"`
}

// OrderCount is the number of live orders, used as the ranking tie-break
func (d *MarketDocument) OrderCount() int {
	return len(d.Orders)
}

// PriceHistory is one point of the per-source price time series
type PriceHistory struct {
	Guid                string    `bson:"guid"`
	EffectivePrice      float64   `bson:"effective_price"`
	MedianPrice         float64   `bson:"median_price"`
	SampleSize          int       `bson:"sample_size"`
	Rank                int       `bson:"rank"`
	AvailabilityPercent float64   `bson:"availability_percent"`
	Timestamp           time.Time `bson:"timestamp"`
}

// MarketRanking carries the fields rewritten for every document after a ranking pass
type MarketRanking struct {
	Guid                   string
	Rank                   int
	IsBestDeal             bool
	Reliability            float64
	AvailabilityPercent    float64
	AvailabilityConfidence float64
}
