package handlers

import (
	"net/http"

	"octobridge/models"
	"octobridge/services/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler serves the catalogue-facing operations.
type ProductHandler struct {
	Service product.ProductService
	Logger  *zap.Logger
}

func NewProductHandler(svc product.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{Service: svc, Logger: logger}
}

// ValidateCredentialsHandler checks the supplied supplier credentials.
func (h *ProductHandler) ValidateCredentialsHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection `json:"connection" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	valid, err := h.Service.ValidateCredentials(c.Request.Context(), input.Connection)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

// SearchProductsHandler lists products, optionally filtered.
func (h *ProductHandler) SearchProductsHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection     `json:"connection" binding:"required"`
		Payload    product.ProductFilter `json:"payload"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	products, err := h.Service.SearchProducts(c.Request.Context(), input.Connection, input.Payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// PickupPointsHandler lists every pickup location across the catalogue.
func (h *ProductHandler) PickupPointsHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection `json:"connection" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	points, err := h.Service.PickupPoints(c.Request.Context(), input.Connection)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickupPoints": points})
}

// BookingFieldsHandler returns the custom question fields for a product.
func (h *ProductHandler) BookingFieldsHandler(c *gin.Context) {
	var input struct {
		Connection models.Connection `json:"connection" binding:"required"`
		Payload    struct {
			ProductID string `json:"productId"`
		} `json:"payload"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	fields, err := h.Service.BookingFields(c.Request.Context(), input.Connection, input.Payload.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// CredentialTemplateHandler exposes the credential descriptors the host
// uses to collect and validate supplier credentials.
func (h *ProductHandler) CredentialTemplateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"template": product.CredentialTemplate()})
}
