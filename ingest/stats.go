package ingest

import (
	"context"
	"log/slog"
	"time"
)

// Stats holds statistics about one seeding run.
type Stats struct {
	Source   string
	Fetched  int
	Inserted int64
	Logged   bool
	Duration time.Duration
}

// Log prints the final statistics to the provided logger.
func (s *Stats) Log(ctx context.Context, logger *slog.Logger) {
	logger.InfoContext(ctx, "--- Seeding Stats ---")
	logger.InfoContext(ctx, "Feed source", "url", s.Source)
	logger.InfoContext(ctx, "Records fetched", "count", s.Fetched)
	logger.InfoContext(ctx, "Records inserted", "count", s.Inserted)
	if !s.Logged {
		logger.WarnContext(ctx, "Seed log entry was not written")
	}
	logger.InfoContext(ctx, "Elapsed", "duration", s.Duration.String())
	logger.InfoContext(ctx, "---------------------")
}
