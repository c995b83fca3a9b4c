package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ---- Abstractions for Testability ----

// DataStore defines the interface for collection operations.
type DataStore interface {
	InsertMany(
		ctx context.Context,
		documents []interface{},
		opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	InsertOne(
		ctx context.Context,
		document interface{},
		opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(
		ctx context.Context,
		filter interface{},
		opts ...*options.FindOptions) (*mongo.Cursor, error)
	CountDocuments(
		ctx context.Context,
		filter interface{},
		opts ...*options.CountOptions) (int64, error)
	Aggregate(
		ctx context.Context,
		pipeline interface{},
		opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

// CollectionProvider defines the interface for obtaining a collection.
type CollectionProvider interface {
	Collection(name string) DataStore
}

// MongoCollection adapts *mongo.Collection to DataStore.
type MongoCollection struct {
	*mongo.Collection
}

// InsertMany inserts a batch of documents.
func (c *MongoCollection) InsertMany(
	ctx context.Context,
	documents []interface{},
	opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	result, err := c.Collection.InsertMany(ctx, documents, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to perform InsertMany: %w", err)
	}

	return result, nil
}

// InsertOne inserts a single document.
func (c *MongoCollection) InsertOne(
	ctx context.Context,
	document interface{},
	opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	result, err := c.Collection.InsertOne(ctx, document, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to perform InsertOne: %w", err)
	}

	return result, nil
}

// Find runs a query and returns a cursor over the matches.
func (c *MongoCollection) Find(
	ctx context.Context,
	filter interface{},
	opts ...*options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to perform Find: %w", err)
	}

	return cursor, nil
}

// CountDocuments counts the documents matching filter.
func (c *MongoCollection) CountDocuments(
	ctx context.Context,
	filter interface{},
	opts ...*options.CountOptions) (int64, error) {
	count, err := c.Collection.CountDocuments(ctx, filter, opts...)
	if err != nil {
		return 0, fmt.Errorf("failed to perform CountDocuments: %w", err)
	}

	return count, nil
}

// Aggregate runs an aggregation pipeline.
func (c *MongoCollection) Aggregate(
	ctx context.Context,
	pipeline interface{},
	opts ...*options.AggregateOptions) (*mongo.Cursor, error) {
	cursor, err := c.Collection.Aggregate(ctx, pipeline, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to perform Aggregate: %w", err)
	}

	return cursor, nil
}

// MongoProvider adapts *mongo.Client to CollectionProvider for a single database.
type MongoProvider struct {
	client *mongo.Client
	dbName string
}

// NewMongoProvider creates a new MongoProvider.
func NewMongoProvider(client *mongo.Client, dbName string) *MongoProvider {
	return &MongoProvider{client: client, dbName: dbName}
}

// Collection returns a DataStore for the given collection name.
func (p *MongoProvider) Collection(name string) DataStore {
	return &MongoCollection{p.client.Database(p.dbName).Collection(name)}
}
