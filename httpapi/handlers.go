// Package httpapi exposes the transaction queries and the seeder over HTTP.
package httpapi

import (
	"context"
	"net/http"

	"salesdash/appcontext"
	"salesdash/ingest"
	"salesdash/sales"
	"salesdash/sales/model"

	"github.com/gin-gonic/gin"
)

// Fixed messages returned with every 500 response.
const (
	msgSeedFailed         = "Failed to initialize database"
	msgSeedSucceeded      = "Database initialized successfully!"
	msgListFailed         = "Failed to fetch transactions"
	msgStatisticsFailed   = "Failed to fetch statistics"
	msgBarChartFailed     = "Failed to fetch bar chart data"
	msgPieChartFailed     = "Failed to fetch pie chart data"
	msgCombinedDataFailed = "Failed to fetch combined data"
)

// Queries is the read side the handlers depend on.
type Queries interface {
	ListTransactions(ctx context.Context, q sales.ListQuery) (*sales.TransactionPage, error)
	Statistics(ctx context.Context, month string) (sales.Statistics, error)
	BarChart(ctx context.Context, month string) ([]sales.PriceRange, error)
	PieChart(ctx context.Context, month string) ([]model.CategoryCount, error)
	Combined(ctx context.Context, month string) (*sales.Combined, error)
}

// Seeder loads the feed into the store.
type Seeder interface {
	Ingest(ctx context.Context) (*ingest.Stats, error)
}

// TransactionHandler serves the transaction endpoints.
type TransactionHandler struct {
	queries Queries
	seeder  Seeder
}

type listParams struct {
	Month   string `form:"month"`
	Search  string `form:"search"`
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"perPage,default=10"`
}

func fail(c *gin.Context, message string, err error) {
	ctx := c.Request.Context()
	appcontext.LoggerFromContext(ctx).ErrorContext(ctx, message, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func (h *TransactionHandler) initialize(c *gin.Context) {
	if _, err := h.seeder.Ingest(c.Request.Context()); err != nil {
		fail(c, msgSeedFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgSeedSucceeded})
}

func (h *TransactionHandler) listTransactions(c *gin.Context) {
	var params listParams
	if err := c.ShouldBindQuery(&params); err != nil {
		fail(c, msgListFailed, err)
		return
	}

	page, err := h.queries.ListTransactions(c.Request.Context(), sales.ListQuery{
		Month:   params.Month,
		Search:  params.Search,
		Page:    params.Page,
		PerPage: params.PerPage,
	})
	if err != nil {
		fail(c, msgListFailed, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *TransactionHandler) statistics(c *gin.Context) {
	stats, err := h.queries.Statistics(c.Request.Context(), c.Query("month"))
	if err != nil {
		fail(c, msgStatisticsFailed, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *TransactionHandler) barChart(c *gin.Context) {
	bars, err := h.queries.BarChart(c.Request.Context(), c.Query("month"))
	if err != nil {
		fail(c, msgBarChartFailed, err)
		return
	}

	c.JSON(http.StatusOK, bars)
}

func (h *TransactionHandler) pieChart(c *gin.Context) {
	slices, err := h.queries.PieChart(c.Request.Context(), c.Query("month"))
	if err != nil {
		fail(c, msgPieChartFailed, err)
		return
	}

	c.JSON(http.StatusOK, slices)
}

func (h *TransactionHandler) combinedData(c *gin.Context) {
	combined, err := h.queries.Combined(c.Request.Context(), c.Query("month"))
	if err != nil {
		fail(c, msgCombinedDataFailed, err)
		return
	}

	c.JSON(http.StatusOK, combined)
}
