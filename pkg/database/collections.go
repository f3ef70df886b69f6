package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	linesCollection := GetCollection("lines")
	linesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "canonicalkey", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "kind", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := linesCollection.Indexes().CreateMany(context.Background(), linesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
