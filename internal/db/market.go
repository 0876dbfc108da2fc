package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func (db *Database) GetMarket(ctx context.Context, guid string) (*model.MarketDocument, error) {
	var doc model.MarketDocument
	err := db.collection(model.MarketCollection).
		FindOne(ctx, bson.M{"_id": guid}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     guid,
				Message: "market not found",
			}
		}
		return nil, err
	}

	return &doc, nil
}

func (db *Database) UpsertMarket(ctx context.Context, doc *model.MarketDocument) error {
	_, err := db.collection(model.MarketCollection).
		ReplaceOne(ctx, bson.M{"_id": doc.Guid}, doc, options.Replace().SetUpsert(true))
	return err
}

func (db *Database) FindActiveMarkets(ctx context.Context) ([]*model.MarketDocument, error) {
	return db.findMarkets(ctx, bson.M{"is_active": true}, options.Find())
}

func (db *Database) FindRankedMarkets(ctx context.Context) ([]*model.MarketDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}})
	return db.findMarkets(ctx, bson.M{"is_active": true}, opts)
}

func (db *Database) findMarkets(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.MarketDocument, error) {
	cursor, err := db.collection(model.MarketCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.MarketDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (db *Database) UpdateMarketRankings(ctx context.Context, rankings []model.MarketRanking) error {
	if len(rankings) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(rankings))
	for _, r := range rankings {
		update := bson.M{
			"$set": bson.M{
				"rank":                    r.Rank,
				"is_best_deal":            r.IsBestDeal,
				"reliability":             r.Reliability,
				"availability_percent":    r.AvailabilityPercent,
				"availability_confidence": r.AvailabilityConfidence,
			},
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": r.Guid}).
			SetUpdate(update))
	}

	_, err := db.collection(model.MarketCollection).
		BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}

func (db *Database) ClearInactiveBestDeals(ctx context.Context) (int64, error) {
	filter := bson.M{"is_active": false, "is_best_deal": true}
	update := bson.M{"$set": bson.M{"is_best_deal": false}}

	res, err := db.collection(model.MarketCollection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (db *Database) SavePriceHistory(ctx context.Context, points []*model.PriceHistory) error {
	if len(points) == 0 {
		return nil
	}

	docs := make([]any, len(points))
	for i, p := range points {
		docs[i] = p
	}

	_, err := db.collection(model.MarketPriceHistoryCollection).
		InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (db *Database) FindPriceHistory(ctx context.Context, guid string, since time.Time) ([]*model.PriceHistory, error) {
	filter := bson.M{
		"guid":      guid,
		"timestamp": bson.M{"$gte": since},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(db.cfg.MaxPaginationLimit)

	cursor, err := db.collection(model.MarketPriceHistoryCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var points []*model.PriceHistory
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}
	return points, nil
}
