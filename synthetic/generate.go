package synthetic

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	"salesdash/config"
)

// RunGenerateSyntheticData writes a synthetic feed file that SEED_URL can point at.
func RunGenerateSyntheticData(ctx context.Context, logger *slog.Logger, args []string, cfg *config.Config) error {
	genFlagSet := flag.NewFlagSet("generate-synthetic-data", flag.ContinueOnError)
	rows := genFlagSet.Int("rows", cfg.SyntheticDataRows, "Number of transactions to generate")
	dir := genFlagSet.String("dir", cfg.SyntheticDataDir, "Directory to write the feed file to")
	seed := genFlagSet.Int64("seed", time.Now().UnixNano(), "Random seed")
	if err := genFlagSet.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	logger.InfoContext(ctx, "Generating synthetic data", "rows", *rows, "dir", *dir)
	items := GenerateFeed(*rows, rand.New(rand.NewSource(*seed)))

	path, err := WriteFeed(items, *dir)
	if err != nil {
		return fmt.Errorf("failed to generate synthetic data: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	logger.InfoContext(ctx, "Synthetic data generated successfully", "file", abs,
		"seed_url", "file://"+filepath.ToSlash(abs))
	return nil
}
