package handlers

import (
	"net/http"

	"octobridge/models"
	"octobridge/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle operations.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateHandler redeems a capability token into a confirmed booking.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection     `json:"connection" binding:"required"`
		Payload    booking.CreateRequest `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.Create(c.Request.Context(), input.Connection, input.Payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": created})
}

// CancelHandler voids a booking.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection     `json:"connection" binding:"required"`
		Payload    booking.CancelRequest `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cancelled, err := h.Service.Cancel(c.Request.Context(), input.Connection, input.Payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancellation": cancelled})
}

// SearchHandler looks up bookings by id, reference or travel-date range.
func (h *BookingHandler) SearchHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection     `json:"connection" binding:"required"`
		Payload    booking.SearchRequest `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	bookings, err := h.Service.Search(c.Request.Context(), input.Connection, input.Payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
