package model

import "time"

type ReliabilityStatus string

const (
	ReliabilitySuccess ReliabilityStatus = "success"
	ReliabilityFailure ReliabilityStatus = "failure"
)

// ReliabilityHistoryRetention is enforced by a TTL index on the history collection
const ReliabilityHistoryRetention = 30 * 24 * time.Hour

type ReliabilityRecord struct {
	Guid            string     `bson:"_id" json:"guid"`
	SuccessCount    int64      `bson:"success_count" json:"successCount"`
	FailureCount    int64      `bson:"failure_count" json:"failureCount"`
	SuccessStreak   int64      `bson:"success_streak" json:"successStreak"`
	FailureStreak   int64      `bson:"failure_streak" json:"failureStreak"`
	LastSuccess     *time.Time `bson:"last_success,omitempty" json:"lastSuccess,omitempty"`
	LastFailure     *time.Time `bson:"last_failure,omitempty" json:"lastFailure,omitempty"`
	EMAAvailability *float64   `bson:"ema_availability,omitempty" json:"emaAvailability,omitempty"`
	Reliability     float64    `bson:"reliability" json:"reliability"`
	// Version is bumped on every write and used for optimistic concurrency
	Version   int64     `bson:"version" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

func NewReliabilityRecord(guid string) *ReliabilityRecord {
	return &ReliabilityRecord{Guid: guid}
}

type ReliabilityHistory struct {
	Guid         string            `bson:"guid"`
	Status       ReliabilityStatus `bson:"status"`
	Reliability  float64           `bson:"reliability"`
	Availability *float64          `bson:"availability,omitempty"`
	Price        *float64          `bson:"price,omitempty"`
	Reason       string            `bson:"reason,omitempty"`
	Timestamp    time.Time         `bson:"timestamp"`
}
