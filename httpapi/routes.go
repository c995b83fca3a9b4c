package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with logging, recovery, health check and the API routes
// mounted under prefix.
func NewRouter(logger *slog.Logger, prefix string, queries Queries, seeder Seeder) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	RegisterRoutes(router.Group(prefix), &TransactionHandler{queries: queries, seeder: seeder})

	return router
}

// RegisterRoutes registers the transaction endpoints on the group.
func RegisterRoutes(api *gin.RouterGroup, h *TransactionHandler) {
	api.GET("/initialize", h.initialize)
	api.GET("/transactions", h.listTransactions)
	api.GET("/statistics", h.statistics)
	api.GET("/bar-chart", h.barChart)
	api.GET("/pie-chart", h.pieChart)
	api.GET("/combined-data", h.combinedData)
}
