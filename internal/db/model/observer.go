package model

import "time"

// LargeTransfer is written by the large transfer observer
type LargeTransfer struct {
	TxID        string    `bson:"_id" json:"txId"`
	BlockNumber int64     `bson:"block_number" json:"blockNumber"`
	From        string    `bson:"from" json:"from"`
	To          string    `bson:"to" json:"to"`
	AmountSun   int64     `bson:"amount_sun" json:"amountSun"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

// ResourceDelegationStats accumulates delegated/reclaimed resources per hour bucket
type ResourceDelegationStats struct {
	Bucket          time.Time `bson:"_id"`
	DelegatedSun    int64     `bson:"delegated_sun"`
	ReclaimedSun    int64     `bson:"reclaimed_sun"`
	DelegationCount int64     `bson:"delegation_count"`
	ReclaimCount    int64     `bson:"reclaim_count"`
}

type BlockStats struct {
	Number        int64          `bson:"_id"`
	Hash          string         `bson:"hash"`
	Timestamp     time.Time      `bson:"timestamp"`
	TxCount       int            `bson:"tx_count"`
	TxCountByType map[string]int `bson:"tx_count_by_type"`
	TotalEnergy   int64          `bson:"total_energy"`
	TransferSun   int64          `bson:"transfer_sun"`
}
