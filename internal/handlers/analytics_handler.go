package handlers

import (
	"context"
	"net/http"
	"time"

	"admin-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Service *service.AdminService
}

func NewAnalyticsHandler(s *service.AdminService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// Revenue computes revenue metrics over an inclusive window. Defaults to
// the last 30 days ending now.
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if t, err := time.Parse("2006-01-02", c.Query("startDate")); err == nil {
		start = t
	}
	if t, err := time.Parse("2006-01-02", c.Query("endDate")); err == nil {
		// End of the named day keeps the window inclusive.
		end = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	metrics, err := h.Service.ComputeRevenueMetrics(context.Background(), start, end)
	if err != nil {
		respondError(c, err, "revenue metrics")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Categories returns the per-test roll-ups.
func (h *AnalyticsHandler) Categories(c *gin.Context) {
	categories, err := h.Service.ComputeCategoryPerformance(context.Background())
	if err != nil {
		respondError(c, err, "category performance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Trend returns the daily revenue series for the last ?days= days.
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	days := intQuery(c, "days", 30)
	series, err := h.Service.ComputeTrendSeries(context.Background(), days)
	if err != nil {
		respondError(c, err, "revenue trend")
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}
