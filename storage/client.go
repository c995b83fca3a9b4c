package storage

import (
	"context"
	"fmt"
	"net/url"

	"salesdash/appcontext"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectToMongoDB establishes a connection to MongoDB and verifies it with a ping.
func ConnectToMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	logger := appcontext.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "Attempting to connect to MongoDB", "uri", redactURI(uri))

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.InfoContext(ctx, "Successfully established connection to MongoDB")
	return client, nil
}

// Disconnect closes the client and logs, rather than returns, any failure.
// It is meant for deferred shutdown paths.
func Disconnect(ctx context.Context, client *mongo.Client) {
	logger := appcontext.LoggerFromContext(ctx)
	if err := client.Disconnect(ctx); err != nil {
		logger.ErrorContext(ctx, "Error disconnecting from MongoDB", "error", err)
		return
	}
	logger.InfoContext(ctx, "Disconnected from MongoDB")
}

// redactURI hides the password of a connection string so it can be logged.
func redactURI(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "<unparseable uri>"
	}
	return parsed.Redacted()
}
