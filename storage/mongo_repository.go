package storage

import (
	"context"
	"fmt"
	"regexp"

	"salesdash/sales/model"
	"salesdash/sales/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultTransactionsCollection is the collection name the records have always lived in.
	DefaultTransactionsCollection = "producttransactions"
	seedLogCollection             = "seedLog"
)

// MongoRepository implements the repository.Repository interface for MongoDB.
type MongoRepository struct {
	provider       CollectionProvider
	collectionName string
}

// NewMongoRepository creates a new MongoRepository over the named transactions collection.
func NewMongoRepository(provider CollectionProvider, collectionName string) *MongoRepository {
	if collectionName == "" {
		collectionName = DefaultTransactionsCollection
	}
	return &MongoRepository{
		provider:       provider,
		collectionName: collectionName,
	}
}

var _ repository.Repository = (*MongoRepository)(nil)

// CollectionName returns the name of the transactions collection.
func (r *MongoRepository) CollectionName() string {
	return r.collectionName
}

// InsertTransactions appends transactions to the collection. Nothing is deduplicated, so
// inserting the same feed twice stores every record twice.
func (r *MongoRepository) InsertTransactions(ctx context.Context, transactions []model.Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil // InsertMany rejects an empty batch
	}

	docs := make([]interface{}, 0, len(transactions))
	for _, t := range transactions {
		docs = append(docs, t)
	}

	collection := r.provider.Collection(r.collectionName)
	result, err := collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("failed to insert transactions into collection %s: %w", r.collectionName, err)
	}

	return int64(len(result.InsertedIDs)), nil
}

// RecordSeed appends an entry to the seed log.
func (r *MongoRepository) RecordSeed(ctx context.Context, entry model.SeedLog) error {
	if entry.CollectionName == "" {
		entry.CollectionName = r.collectionName
	}
	_, err := r.provider.Collection(seedLogCollection).InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to insert into %s collection: %w", seedLogCollection, err)
	}

	return nil
}

// ListTransactions returns one page of the month's transactions matching the search text,
// together with the number of matches across all pages.
func (r *MongoRepository) ListTransactions(
	ctx context.Context,
	filter repository.ListFilter,
) ([]model.Transaction, int64, error) {
	query := searchFilter(filter.Month, filter.Search)
	collection := r.provider.Collection(r.collectionName)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(filter.Skip).
		SetLimit(filter.Limit)

	cursor, err := collection.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	transactions, err := decodeTransactions(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	total, err := collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return transactions, total, nil
}

// TransactionsByMonth returns every transaction whose sale date falls in month, in any year.
func (r *MongoRepository) TransactionsByMonth(ctx context.Context, month int) ([]model.Transaction, error) {
	cursor, err := r.provider.Collection(r.collectionName).Find(ctx, monthFilter(month))
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions for month %d: %w", month, err)
	}

	return decodeTransactions(ctx, cursor)
}

// CategoryBreakdown groups the month's transactions by category.
func (r *MongoRepository) CategoryBreakdown(ctx context.Context, month int) ([]model.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: monthFilter(month)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.provider.Collection(r.collectionName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories for month %d: %w", month, err)
	}
	counts := []model.CategoryCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode category counts: %w", err)
	}

	return counts, nil
}

// decodeTransactions drains cursor; All closes it.
func decodeTransactions(ctx context.Context, cursor *mongo.Cursor) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return transactions, nil
}

// monthFilter matches sale dates by month of year only.
func monthFilter(month int) bson.M {
	return bson.M{
		"$expr": bson.M{
			"$eq": bson.A{bson.M{"$month": "$dateOfSale"}, month},
		},
	}
}

// searchFilter narrows monthFilter to records whose title, description or price rendered as
// text contains search, ignoring case. An empty search adds no condition.
func searchFilter(month int, search string) bson.M {
	query := monthFilter(month)
	if search == "" {
		return query
	}

	pattern := regexp.QuoteMeta(search)
	re := primitive.Regex{Pattern: pattern, Options: "i"}
	query["$or"] = bson.A{
		bson.M{"title": re},
		bson.M{"description": re},
		bson.M{"$expr": bson.M{
			"$regexMatch": bson.M{
				"input":   bson.M{"$toString": "$price"},
				"regex":   pattern,
				"options": "i",
			},
		}},
	}

	return query
}
