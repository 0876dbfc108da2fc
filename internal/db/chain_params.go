package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const chainParametersID = "singleton"

type chainParametersDoc struct {
	ID                    string `bson:"_id"`
	model.ChainParameters `bson:",inline"`
}

func (db *Database) GetChainParameters(ctx context.Context) (*model.ChainParameters, error) {
	filter := bson.M{"_id": chainParametersID}
	res := db.collection(model.ChainParametersCollection).FindOne(ctx, filter)

	var doc chainParametersDoc
	err := res.Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     chainParametersID,
				Message: "chain parameters not found",
			}
		}
		return nil, err
	}

	return &doc.ChainParameters, nil
}

func (db *Database) UpsertChainParameters(ctx context.Context, params *model.ChainParameters) error {
	doc := chainParametersDoc{
		ID:              chainParametersID,
		ChainParameters: *params,
	}

	filter := bson.M{"_id": chainParametersID}
	update := bson.M{"$set": doc}

	_, err := db.collection(model.ChainParametersCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
