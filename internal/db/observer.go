package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

// SaveLargeTransfer is idempotent on tx id, redelivered transactions overwrite the same row
func (db *Database) SaveLargeTransfer(ctx context.Context, transfer *model.LargeTransfer) error {
	_, err := db.collection(model.LargeTransferCollection).
		ReplaceOne(ctx, bson.M{"_id": transfer.TxID}, transfer, options.Replace().SetUpsert(true))
	return err
}

func (db *Database) IncrementResourceDelegationStats(ctx context.Context, stats *model.ResourceDelegationStats) error {
	update := bson.M{
		"$inc": bson.M{
			"delegated_sun":    stats.DelegatedSun,
			"reclaimed_sun":    stats.ReclaimedSun,
			"delegation_count": stats.DelegationCount,
			"reclaim_count":    stats.ReclaimCount,
		},
	}

	_, err := db.collection(model.ResourceDelegationStatsCollection).
		UpdateOne(ctx, bson.M{"_id": stats.Bucket}, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) UpsertBlockStats(ctx context.Context, stats *model.BlockStats) error {
	_, err := db.collection(model.BlockStatsCollection).
		ReplaceOne(ctx, bson.M{"_id": stats.Number}, stats, options.Replace().SetUpsert(true))
	return err
}
