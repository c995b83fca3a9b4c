// Package sales answers listing, search and monthly aggregate queries over product transactions.
package sales

import (
	"context"
	"fmt"
	"math"

	"salesdash/appcontext"
	"salesdash/sales/model"
	"salesdash/sales/repository"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// ListQuery selects a page of a month's transactions. Month is an English month name.
type ListQuery struct {
	Month   string
	Search  string
	Page    int
	PerPage int
}

// TransactionPage is one page of search results.
type TransactionPage struct {
	Transactions []model.Transaction `json:"transactions"`
	Total        int64               `json:"total"`
	Page         int                 `json:"page"`
	PerPage      int                 `json:"perPage"`
}

// Combined merges the three monthly summaries.
type Combined struct {
	Statistics Statistics            `json:"statistics"`
	BarChart   []PriceRange          `json:"barChart"`
	PieChart   []model.CategoryCount `json:"pieChart"`
}

// Service runs queries against a transaction repository. It holds no mutable state.
type Service struct {
	repo repository.Repository
}

// NewService creates a new Service.
func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// ListTransactions returns the requested page of the month's transactions whose title,
// description or price contains the search text.
func (s *Service) ListTransactions(ctx context.Context, q ListQuery) (*TransactionPage, error) {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}

	month := MonthIndex(q.Month)
	appcontext.LoggerFromContext(ctx).DebugContext(ctx, "Listing transactions",
		"month", month, "search", q.Search, "page", q.Page, "perPage", q.PerPage)

	transactions, total, err := s.repo.ListTransactions(ctx, repository.ListFilter{
		Month:  month,
		Search: q.Search,
		Skip:   pageOffset(q.Page, q.PerPage),
		Limit:  int64(q.PerPage),
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}

	return &TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         q.Page,
		PerPage:      q.PerPage,
	}, nil
}

// Statistics totals the month's sale amount and counts sold and unsold items.
func (s *Service) Statistics(ctx context.Context, month string) (Statistics, error) {
	transactions, err := s.repo.TransactionsByMonth(ctx, MonthIndex(month))
	if err != nil {
		return Statistics{}, fmt.Errorf("statistics: %w", err)
	}

	return Summarize(transactions), nil
}

// BarChart counts the month's transactions per price range.
func (s *Service) BarChart(ctx context.Context, month string) ([]PriceRange, error) {
	transactions, err := s.repo.TransactionsByMonth(ctx, MonthIndex(month))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}

	return Histogram(transactions), nil
}

// PieChart counts the month's transactions per category.
func (s *Service) PieChart(ctx context.Context, month string) ([]model.CategoryCount, error) {
	counts, err := s.repo.CategoryBreakdown(ctx, MonthIndex(month))
	if err != nil {
		return nil, fmt.Errorf("pie chart: %w", err)
	}
	if counts == nil {
		counts = []model.CategoryCount{}
	}

	return counts, nil
}

// Combined computes the three summaries concurrently. The first failure cancels the others
// and no partial result is returned.
func (s *Service) Combined(ctx context.Context, month string) (*Combined, error) {
	var out Combined
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.Statistics(gctx, month)
		out.Statistics = stats
		return err
	})
	g.Go(func() error {
		bars, err := s.BarChart(gctx, month)
		out.BarChart = bars
		return err
	})
	g.Go(func() error {
		pie, err := s.PieChart(gctx, month)
		out.PieChart = pie
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("combined data: %w", err)
	}

	return &out, nil
}

// pageOffset returns the number of records before the page, saturating at math.MaxInt64.
func pageOffset(page, perPage int) int64 {
	before, size := int64(page-1), int64(perPage)
	if before > math.MaxInt64/size {
		return math.MaxInt64
	}
	return before * size
}
