package config

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"salesdash/apiclient"
	"salesdash/storage"

	"github.com/joho/godotenv"
)

// Default values.
const (
	defaultPort              = "8080"
	defaultAPIPrefix         = "/api"
	defaultTimeoutSeconds    = 30
	defaultMongoHost         = "localhost"
	defaultMongoPort         = "27017"
	defaultMongoDatabase     = "roxiler"
	defaultSyntheticDataDir  = "tmp/synthetic"
	defaultSyntheticDataRows = 100
	envPort                  = "PORT"
	envAPIPrefix             = "API_PREFIX"
	envMongoURI              = "MONGO_URI"
	envMongoHost             = "MONGO_HOST"
	envMongoUser             = "MONGO_USER"
	envMongoPassword         = "MONGO_PASSWORD"
	envMongoDatabase         = "MONGO_DATABASE"
	envMongoCollection       = "MONGO_COLLECTION"
	envSeedURL               = "SEED_URL"
	envSyntheticDataDir      = "SYNTHETIC_DATA_DIR"
	envSyntheticDataRows     = "SYNTHETIC_DATA_ROWS"
	envTimeoutSeconds        = "TIMEOUT_SECONDS"
)

// LoadEnvFile loads a .env file for local development. A missing file is not an error.
func LoadEnvFile(ctx context.Context, logger *slog.Logger, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		logger.DebugContext(ctx, "No .env file loaded", "error", err)
	}
}

// LoadConfig loads the application configuration from environment variables or uses default values.
func LoadConfig(ctx context.Context, logger *slog.Logger) *Config {
	mongoURI := formatMongoURI(ctx, os.Getenv(envMongoURI), logger)

	return &Config{
		Port:              getEnv(ctx, logger, envPort, defaultPort),
		APIPrefix:         getEnv(ctx, logger, envAPIPrefix, defaultAPIPrefix),
		MongoURI:          mongoURI,
		MongoDatabase:     getEnv(ctx, logger, envMongoDatabase, defaultMongoDatabase),
		MongoCollection:   getEnv(ctx, logger, envMongoCollection, storage.DefaultTransactionsCollection),
		SeedURL:           getEnv(ctx, logger, envSeedURL, apiclient.DefaultFeedURL),
		SyntheticDataDir:  getEnv(ctx, logger, envSyntheticDataDir, defaultSyntheticDataDir),
		SyntheticDataRows: getEnvInt(ctx, logger, envSyntheticDataRows, defaultSyntheticDataRows),
		Timeout:           time.Duration(getEnvInt(ctx, logger, envTimeoutSeconds, defaultTimeoutSeconds)) * time.Second,
	}
}

// getEnv fetches key or falls back to defaultValue.
func getEnv(ctx context.Context, logger *slog.Logger, key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		logger.DebugContext(ctx, "Using default value", "key", key, "value", defaultValue)
		return defaultValue
	}

	logger.DebugContext(ctx, "Using value from environment variable", "key", key, "value", value)
	return value
}

func getEnvInt(ctx context.Context, logger *slog.Logger, key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		logger.DebugContext(ctx, "Using default value", "key", key, "value", defaultValue)
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		logger.WarnContext(
			ctx,
			"Invalid integer in environment variable, using default",
			"key", key,
			"value", raw,
			"default", defaultValue,
			"error", err,
		)
		return defaultValue
	}

	logger.DebugContext(ctx, "Using value from environment variable", "key", key, "value", parsed)
	return parsed
}

// formatMongoURI formats mongo settings to a url and return the result.
func formatMongoURI(
	ctx context.Context,
	mongoURI string,
	logger *slog.Logger,
) string {
	if mongoURI != "" {
		logger.DebugContext(ctx, "Using MongoDB URI from environment variable")
		return mongoURI
	}

	mongoHost := os.Getenv(envMongoHost)
	if mongoHost == "" {
		mongoHost = defaultMongoHost
		logger.DebugContext(ctx, "Using default MongoDB host", "host", mongoHost)
	} else {
		logger.DebugContext(ctx, "Using MongoDB host from environment variable", "host", mongoHost)
	}

	hostPort := net.JoinHostPort(mongoHost, defaultMongoPort)
	mongoUser := os.Getenv(envMongoUser)
	mongoPassword := os.Getenv(envMongoPassword)

	if mongoUser != "" && mongoPassword != "" {
		logger.DebugContext(ctx, "Created MongoDB URI from user, password, and host", "host", hostPort)
		u := url.URL{
			Scheme:   "mongodb",
			User:     url.UserPassword(mongoUser, mongoPassword),
			Host:     hostPort,
			Path:     "/",
			RawQuery: "authSource=admin",
		}
		return u.String()
	}

	logger.DebugContext(ctx, "Using default MongoDB URI", "host", hostPort)
	return fmt.Sprintf("mongodb://%s", hostPort)
}
