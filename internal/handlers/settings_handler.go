package handlers

import (
	"context"
	"net/http"

	"admin-service/internal/models"
	"admin-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	Service *service.AdminService
}

func NewSettingsHandler(s *service.AdminService) *SettingsHandler {
	return &SettingsHandler{Service: s}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.Service.GetSettings(context.Background())
	if err != nil {
		respondError(c, err, "settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var settings models.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateSettings(context.Background(), settings); err != nil {
		respondError(c, err, "settings update")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}
