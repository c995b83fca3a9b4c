package synthetic

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"salesdash/apiclient"
	"salesdash/config"
)

func TestGenerateFeed(t *testing.T) {
	items := GenerateFeed(50, rand.New(rand.NewSource(1)))
	if len(items) != 50 {
		t.Fatalf("expected 50 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Price < 0 || item.Price > 1000 {
			t.Errorf("price out of range: %v", item.Price)
		}
		if item.Title == "" || item.Category == "" || item.DateOfSale.IsZero() {
			t.Errorf("incomplete item: %+v", item)
		}
	}
}

func TestRunGenerateSyntheticData_WritesFeed(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{SyntheticDataRows: 3, SyntheticDataDir: dir}

	if err := RunGenerateSyntheticData(context.Background(), logger, []string{"-seed", "7"}, cfg); err != nil {
		t.Fatalf("RunGenerateSyntheticData failed: %v", err)
	}

	body, err := os.ReadFile(filepath.Join(dir, FeedFileName))
	if err != nil {
		t.Fatalf("feed file not written: %v", err)
	}
	var items []apiclient.FeedItem
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("feed is not a JSON array of items: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 items, got %d", len(items))
	}
}

func TestRunGenerateSyntheticData_BadFlag(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{SyntheticDataDir: t.TempDir()}
	if err := RunGenerateSyntheticData(context.Background(), logger, []string{"-rows", "many"}, cfg); err == nil {
		t.Error("expected a flag parse error")
	}
}
