package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func (db *Database) GetReliability(ctx context.Context, guid string) (*model.ReliabilityRecord, error) {
	var record model.ReliabilityRecord
	err := db.collection(model.MarketReliabilityCollection).
		FindOne(ctx, bson.M{"_id": guid}).
		Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     guid,
				Message: "reliability record not found",
			}
		}
		return nil, err
	}

	return &record, nil
}

func (db *Database) InsertReliability(ctx context.Context, record *model.ReliabilityRecord) error {
	_, err := db.collection(model.MarketReliabilityCollection).InsertOne(ctx, record)
	if err != nil {
		return duplicateKeyError(err, record.Guid, "reliability record already exists")
	}
	return nil
}

func (db *Database) UpdateReliability(ctx context.Context, record *model.ReliabilityRecord, expectedVersion int64) error {
	filter := bson.M{
		"_id":     record.Guid,
		"version": expectedVersion,
	}

	res, err := db.collection(model.MarketReliabilityCollection).ReplaceOne(ctx, filter, record)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &VersionConflictError{
			Key:             record.Guid,
			ExpectedVersion: expectedVersion,
		}
	}
	return nil
}

func (db *Database) SaveReliabilityHistory(ctx context.Context, entry *model.ReliabilityHistory) error {
	_, err := db.collection(model.MarketReliabilityHistoryCollection).InsertOne(ctx, entry)
	return err
}

func (db *Database) FindReliabilityHistory(ctx context.Context, guid string, limit int64) ([]*model.ReliabilityHistory, error) {
	if limit <= 0 || limit > db.cfg.MaxPaginationLimit {
		limit = db.cfg.MaxPaginationLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.MarketReliabilityHistoryCollection).
		Find(ctx, bson.M{"guid": guid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.ReliabilityHistory
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
