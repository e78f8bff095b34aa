package handlers

import (
	"context"
	"net/http"
	"time"

	"admin-service/internal/export"
	"admin-service/internal/filter"
	"admin-service/internal/models"
	"admin-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	Service *service.AdminService
}

func NewPurchaseHandler(s *service.AdminService) *PurchaseHandler {
	return &PurchaseHandler{Service: s}
}

// ListPurchases returns purchases, optionally constrained by ?type= at the
// store and by ?search= / ?days= in memory.
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.Service.ListPurchases(context.Background(), c.Query("type"))
	if err != nil {
		respondError(c, err, "purchases")
		return
	}
	filtered := filter.Purchases(purchases, filter.Criteria{
		Search:     c.Query("search"),
		WindowDays: intQuery(c, "days", 0),
	})
	c.JSON(http.StatusOK, gin.H{"purchases": filtered, "total": len(filtered)})
}

// ListBookings returns interview bookings with search, status and day
// window filters applied in memory.
func (h *PurchaseHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListPurchases(context.Background(), models.PurchaseTypeInterview)
	if err != nil {
		respondError(c, err, "interview bookings")
		return
	}
	filtered := filter.Purchases(bookings, filter.Criteria{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		WindowDays: intQuery(c, "days", 0),
	})
	c.JSON(http.StatusOK, gin.H{"bookings": filtered, "total": len(filtered)})
}

// ExportBookingsCSV streams the filtered booking list as a CSV download.
func (h *PurchaseHandler) ExportBookingsCSV(c *gin.Context) {
	bookings, err := h.Service.ListPurchases(context.Background(), models.PurchaseTypeInterview)
	if err != nil {
		respondError(c, err, "interview bookings")
		return
	}
	filtered := filter.Purchases(bookings, filter.Criteria{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		WindowDays: intQuery(c, "days", 0),
	})
	filename := "interview-bookings-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.BookingsCSV(filtered))
}

// UpdateBooking patches one booking's status/scheduling fields.
func (h *PurchaseHandler) UpdateBooking(c *gin.Context) {
	var patch models.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.Param("userId")
	purchaseID := c.Param("id")
	if err := h.Service.UpdateBookingStatus(context.Background(), userID, purchaseID, patch); err != nil {
		respondError(c, err, "booking update")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}
