package synthetic

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"salesdash/apiclient"
)

// FeedFileName is the name of the generated feed document.
const FeedFileName = "product_transaction.json"

var categories = []string{"men's clothing", "women's clothing", "jewelery", "electronics"}

var adjectives = []string{"Slim", "Classic", "Rugged", "Wireless", "Solid", "Casual"}

var nouns = []string{"Backpack", "Jacket", "T-Shirt", "Ring", "Monitor", "Hard Drive", "Bracelet"}

// GenerateFeed builds rows feed items with prices spread over every histogram range and
// sale dates spread over every month of two years.
func GenerateFeed(rows int, rng *rand.Rand) []apiclient.FeedItem {
	items := make([]apiclient.FeedItem, 0, rows)
	base := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < rows; i++ {
		adjective := adjectives[rng.Intn(len(adjectives))]
		noun := nouns[rng.Intn(len(nouns))]
		price := math.Round(rng.Float64()*1000*100) / 100

		items = append(items, apiclient.FeedItem{
			ID:          i + 1,
			Title:       fmt.Sprintf("%s %s", adjective, noun),
			Price:       price,
			Description: fmt.Sprintf("Synthetic %s %s number %d", adjective, noun, i+1),
			Category:    categories[rng.Intn(len(categories))],
			Image:       fmt.Sprintf("https://example.com/images/%d.jpg", i+1),
			Sold:        rng.Intn(2) == 0,
			DateOfSale:  base.AddDate(0, rng.Intn(24), rng.Intn(28)).Add(time.Duration(rng.Intn(86400)) * time.Second),
		})
	}

	return items
}

// WriteFeed writes items as a JSON array into dir and returns the file path.
func WriteFeed(items []apiclient.FeedItem, dir string) (string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	}

	body, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode feed: %w", err)
	}

	filePath := filepath.Join(dir, FeedFileName)
	if err := os.WriteFile(filePath, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file '%s': %w", filePath, err)
	}

	return filePath, nil
}
