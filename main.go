// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdash/apiclient"
	"salesdash/appcontext"
	"salesdash/config"
	"salesdash/httpapi"
	"salesdash/ingest"
	"salesdash/sales"
	"salesdash/storage"
	"salesdash/synthetic"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	shutdownTimeout = 30 * time.Second
	defaultCommand  = "serve"
)

func main() {
	// Create the logger instance at the very beginning.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	command := defaultCommand
	var args []string
	if len(os.Args) >= 2 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	if err := run(logger, command, args); err != nil {
		logger.Error("Application terminated with an error", "error", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, command string, args []string) error {
	ctx := appcontext.WithLogger(context.Background(), logger)

	config.LoadEnvFile(ctx, logger)
	cfg := config.LoadConfig(ctx, logger)
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch command {
	case "serve":
		return serve(ctx, logger, cfg)
	case "seed":
		return seed(ctx, logger, cfg)
	case "generate-synthetic-data":
		return synthetic.RunGenerateSyntheticData(ctx, logger, args, cfg)
	default:
		return fmt.Errorf("unknown command: %s (want serve, seed or generate-synthetic-data)", command)
	}
}

// connect opens the shared client used by every request for the life of the process.
func connect(ctx context.Context, cfg *config.Config) (*mongo.Client, *storage.MongoRepository, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := storage.ConnectToMongoDB(connectCtx, cfg.MongoURI)
	if err != nil {
		return nil, nil, fmt.Errorf("connection to MongoDB failed: %w", err)
	}

	provider := storage.NewMongoProvider(client, cfg.MongoDatabase)
	return client, storage.NewMongoRepository(provider, cfg.MongoCollection), nil
}

func newSink(cfg *config.Config, repo *storage.MongoRepository) (*ingest.Sink, error) {
	feed, err := apiclient.NewAPIClient(nil, cfg.SeedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid seed feed: %w", err)
	}

	return ingest.NewSink(ingest.SinkDependencies{
		Repo:      repo,
		Feed:      feed,
		SourceURL: cfg.SeedURL,
	}), nil
}

func seed(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, repo, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Disconnect(context.WithoutCancel(ctx), client)

	sink, err := newSink(cfg, repo)
	if err != nil {
		return err
	}

	if _, err := sink.Ingest(ctx); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.InfoContext(ctx, "Database initialized successfully")
	return nil
}

func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, repo, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Disconnect(context.WithoutCancel(ctx), client)

	sink, err := newSink(cfg, repo)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(logger, cfg.APIPrefix, sales.NewService(repo), sink)
	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
		BaseContext: func(net.Listener) context.Context {
			return appcontext.WithLogger(context.Background(), logger)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "Starting server", "port", cfg.Port, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
