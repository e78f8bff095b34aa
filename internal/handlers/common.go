package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"admin-service/internal/gateway"
	"admin-service/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps the engine's error taxonomy onto HTTP statuses: failed
// auth is 401, a rejected input is 400, a remote read failure is a
// retriable "failed to load".
func respondError(c *gin.Context, err error, loadWhat string) {
	switch {
	case errors.Is(err, gateway.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	case errors.Is(err, service.ErrUnknownBookingStatus), errors.Is(err, service.ErrUnknownResultStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case gateway.IsRemoteRead(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load " + loadWhat})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// intQuery parses an integer query parameter, returning def when absent,
// "all", or malformed.
func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" || raw == "all" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
