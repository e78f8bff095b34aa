package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"admin-service/internal/export"
	"admin-service/internal/filter"
	"admin-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.AdminService
}

func NewResultHandler(s *service.AdminService) *ResultHandler {
	return &ResultHandler{Service: s}
}

func resultFilters(c *gin.Context) service.ResultFilters {
	f := service.ResultFilters{
		TestID: c.Query("testId"),
		Status: c.Query("status"),
	}
	if t, err := time.Parse("2006-01-02", c.Query("startDate")); err == nil {
		f.Start = &t
	}
	if t, err := time.Parse("2006-01-02", c.Query("endDate")); err == nil {
		f.End = &t
	}
	if v, err := strconv.ParseFloat(c.Query("minScore"), 64); err == nil {
		f.MinScore = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxScore"), 64); err == nil {
		f.MaxScore = &v
	}
	return f
}

// ListResults returns identity-decorated test results. Store-side
// constraints come from the query string; ?search= and ?days= are applied
// in memory on top.
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.Service.ListTestResults(context.Background(), resultFilters(c))
	if err != nil {
		respondError(c, err, "test results")
		return
	}
	filtered := filter.Results(results, filter.Criteria{
		Search:     c.Query("search"),
		WindowDays: intQuery(c, "days", 0),
	})
	c.JSON(http.StatusOK, gin.H{"results": filtered, "total": len(filtered)})
}

// ExportResultsCSV streams the filtered result set as a CSV download.
func (h *ResultHandler) ExportResultsCSV(c *gin.Context) {
	results, err := h.Service.ListTestResults(context.Background(), resultFilters(c))
	if err != nil {
		respondError(c, err, "test results")
		return
	}
	filtered := filter.Results(results, filter.Criteria{
		Search:     c.Query("search"),
		WindowDays: intQuery(c, "days", 0),
	})
	filename := "test-results-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.ResultsCSV(filtered))
}

// ExportResultsXLSX streams the filtered result set as a workbook.
func (h *ResultHandler) ExportResultsXLSX(c *gin.Context) {
	results, err := h.Service.ListTestResults(context.Background(), resultFilters(c))
	if err != nil {
		respondError(c, err, "test results")
		return
	}
	f, err := export.ResultsXLSX(results)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filename := "test-results-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
