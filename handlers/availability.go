package handlers

import (
	"net/http"

	"octobridge/models"
	"octobridge/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves availability search and calendar lookups.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// SearchHandler returns priced, bookable availability with embedded
// capability tokens.
func (h *AvailabilityHandler) SearchHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection          `json:"connection" binding:"required"`
		Payload    availability.SearchRequest `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	results, err := h.Service.Search(c.Request.Context(), input.Connection, input.Payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": results})
}

// CalendarHandler returns aggregate per-date availability for browsing.
func (h *AvailabilityHandler) CalendarHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection          `json:"connection" binding:"required"`
		Payload    availability.SearchRequest `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	results, err := h.Service.Calendar(c.Request.Context(), input.Connection, input.Payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": results})
}
