package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AbdullahAbukalaf/real-estate-reign/models"
)

// LoadMongo reads the listing dataset out of MongoDB. The catalog is loaded
// once and held in memory; a restart picks up new listings. Natural order is
// ascending _id, which stands in for "newest" ordering downstream.
func LoadMongo(ctx context.Context, client *mongo.Client, dbName string) (*Catalog, error) {
	db := client.Database(dbName)

	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := db.Collection("properties").Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("fetching properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}
	if len(properties) == 0 {
		return nil, fmt.Errorf("properties collection in %q is empty", dbName)
	}

	agentCursor, err := db.Collection("agents").Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("fetching agents: %w", err)
	}
	defer agentCursor.Close(ctx)

	var agents []models.Agent
	if err := agentCursor.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("decoding agents: %w", err)
	}

	return New(properties, agents), nil
}

// ConnectMongo dials the listings database and verifies the connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}
	return client, nil
}
