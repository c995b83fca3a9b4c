package sales

import (
	"math"

	"salesdash/sales/model"

	"github.com/shopspring/decimal"
)

// Statistics summarises a month of transactions.
type Statistics struct {
	TotalSaleAmount  float64 `json:"totalSaleAmount"`
	TotalSoldItems   int     `json:"totalSoldItems"`
	TotalUnsoldItems int     `json:"totalUnsoldItems"`
}

// PriceRange is one bar of the price histogram.
type PriceRange struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// priceBucket covers prices in (min, max]; the first bucket also includes min.
type priceBucket struct {
	label string
	min   float64
	max   float64
}

var priceBuckets = []priceBucket{
	{"0-100", 0, 100},
	{"101-200", 100, 200},
	{"201-300", 200, 300},
	{"301-400", 300, 400},
	{"401-500", 400, 500},
	{"501-600", 500, 600},
	{"601-700", 600, 700},
	{"701-800", 700, 800},
	{"801-900", 800, 900},
	{"901-above", 900, math.Inf(1)},
}

// Summarize totals price and counts sold and unsold items. NaN and infinite prices are
// counted as items but left out of the total.
func Summarize(transactions []model.Transaction) Statistics {
	var stats Statistics
	total := decimal.Zero
	for _, t := range transactions {
		if !math.IsNaN(t.Price) && !math.IsInf(t.Price, 0) {
			total = total.Add(decimal.NewFromFloat(t.Price))
		}
		if t.Sold {
			stats.TotalSoldItems++
		} else {
			stats.TotalUnsoldItems++
		}
	}
	stats.TotalSaleAmount = total.InexactFloat64()

	return stats
}

// Histogram counts transactions per fixed price bucket. Buckets are returned in ascending
// order and every non-negative price lands in exactly one of them.
func Histogram(transactions []model.Transaction) []PriceRange {
	ranges := make([]PriceRange, len(priceBuckets))
	for i, b := range priceBuckets {
		ranges[i].Range = b.label
	}

	for _, t := range transactions {
		if i := bucketIndex(t.Price); i >= 0 {
			ranges[i].Count++
		}
	}

	return ranges
}

func bucketIndex(price float64) int {
	if price < 0 || math.IsNaN(price) {
		return -1
	}
	for i, b := range priceBuckets {
		if price <= b.max && (i == 0 || price > b.min) {
			return i
		}
	}

	return -1
}
