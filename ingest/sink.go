// Package ingest seeds the transaction store from the remote feed.
package ingest

import (
	"context"
	"fmt"
	"time"

	"salesdash/appcontext"
	"salesdash/sales/model"
	"salesdash/sales/repository"
)

// FeedFetcher downloads the seed feed.
type FeedFetcher interface {
	FetchTransactions(ctx context.Context) ([]model.Transaction, error)
}

// SinkDependencies holds all the dependencies for the Sink.
type SinkDependencies struct {
	Repo      repository.Repository
	Feed      FeedFetcher
	SourceURL string
}

// Sink bulk loads the feed into the store. Loading is append-only: every call inserts the
// whole feed again, so callers are expected to seed once.
type Sink struct {
	deps SinkDependencies
	now  func() time.Time
}

// NewSink creates a new Sink instance.
func NewSink(deps SinkDependencies) *Sink {
	return &Sink{
		deps: deps,
		now:  time.Now,
	}
}

// Ingest fetches the feed and inserts every record.
func (s *Sink) Ingest(ctx context.Context) (*Stats, error) {
	logger := appcontext.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "Starting seeding process", "source", s.deps.SourceURL)
	start := s.now()

	transactions, err := s.deps.Feed.FetchTransactions(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch transaction feed", "error", err)
		return nil, fmt.Errorf("fetch of transaction feed failed: %w", err)
	}

	inserted, err := s.deps.Repo.InsertTransactions(ctx, transactions)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to insert transactions", "error", err)
		return nil, fmt.Errorf("insert of transactions failed: %w", err)
	}

	stats := &Stats{
		Source:   s.deps.SourceURL,
		Fetched:  len(transactions),
		Inserted: inserted,
	}

	// Records are stored at this point, so a seed log failure is only reported.
	err = s.deps.Repo.RecordSeed(ctx, model.SeedLog{
		SourceURL:       s.deps.SourceURL,
		SeedTimestamp:   s.now(),
		RecordsInserted: inserted,
		RequestID:       appcontext.RequestIDFromContext(ctx),
	})
	if err != nil {
		logger.WarnContext(ctx, "Failed to record seed log", "error", err)
	} else {
		stats.Logged = true
	}

	stats.Duration = s.now().Sub(start)
	logger.InfoContext(ctx, "Seeding process completed successfully.")
	stats.Log(ctx, logger)

	return stats, nil
}
