package repository

import (
	"context"

	"salesdash/sales/model"
)

// ListFilter selects one page of month-scoped, searched transactions.
type ListFilter struct {
	Month  int
	Search string
	Skip   int64
	Limit  int64
}

// Repository defines the interface for data storage operations.
type Repository interface {
	// InsertTransactions appends transactions without deduplication.
	InsertTransactions(ctx context.Context, transactions []model.Transaction) (int64, error)
	// RecordSeed appends an entry to the seed log.
	RecordSeed(ctx context.Context, entry model.SeedLog) error
	// ListTransactions returns one page of matches and the total number of matches.
	ListTransactions(ctx context.Context, filter ListFilter) ([]model.Transaction, int64, error)
	// TransactionsByMonth returns every transaction sold in the given month of any year.
	TransactionsByMonth(ctx context.Context, month int) ([]model.Transaction, error)
	// CategoryBreakdown counts the month's transactions per category.
	CategoryBreakdown(ctx context.Context, month int) ([]model.CategoryCount, error)
}
