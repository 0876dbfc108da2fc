package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
)

const (
	MarketCollection                   = "markets"
	MarketPriceHistoryCollection       = "market_price_history"
	MarketReliabilityCollection        = "market_reliability"
	MarketReliabilityHistoryCollection = "market_reliability_history"
	ChainParametersCollection          = "chain_parameters"
	LargeTransferCollection            = "large_transfers"
	ResourceDelegationStatsCollection  = "resource_delegation_stats"
	BlockStatsCollection               = "block_stats"
)

type index struct {
	Indexes bson.D
	Unique  bool
	// TTL is the lifetime of documents when set, the first indexed field must be a date
	TTL time.Duration
}

var collections = map[string][]index{
	MarketCollection: {
		{Indexes: bson.D{{Key: "is_active", Value: 1}, {Key: "rank", Value: 1}}},
	},
	MarketPriceHistoryCollection: {
		{Indexes: bson.D{{Key: "guid", Value: 1}, {Key: "timestamp", Value: -1}}},
	},
	MarketReliabilityCollection: {{Indexes: bson.D{}}},
	MarketReliabilityHistoryCollection: {
		{Indexes: bson.D{{Key: "timestamp", Value: 1}}, TTL: ReliabilityHistoryRetention},
		{Indexes: bson.D{{Key: "guid", Value: 1}, {Key: "timestamp", Value: -1}}},
	},
	ChainParametersCollection:         {{Indexes: bson.D{}}},
	LargeTransferCollection:           {{Indexes: bson.D{{Key: "timestamp", Value: -1}}}},
	ResourceDelegationStatsCollection: {{Indexes: bson.D{}}},
	BlockStatsCollection:              {{Indexes: bson.D{{Key: "timestamp", Value: -1}}}},
}

// Setup creates missing collections and their indexes
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address)
	if cfg.Username != "" {
		clientOps = clientOps.SetAuth(credential)
	}

	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	database := client.Database(cfg.DbName)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for name, indexes := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range indexes {
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("collections and indexes created successfully")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	err := database.CreateCollection(ctx, name)
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	// NamespaceExists
	if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
		return nil
	}
	return fmt.Errorf("failed to create collection %s: %w", name, err)
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	if len(idx.Indexes) == 0 {
		return nil
	}

	opts := options.Index().SetUnique(idx.Unique)
	if idx.TTL > 0 {
		opts.SetExpireAfterSeconds(int32(idx.TTL.Seconds()))
	}

	indexModel := mongo.IndexModel{
		Keys:    idx.Indexes,
		Options: opts,
	}

	_, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("index created")
	return nil
}
