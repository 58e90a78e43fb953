package handlers

import (
	"errors"
	"net/http"

	"octobridge/services/availability"
	"octobridge/services/booking"
	"octobridge/services/octo"
	"octobridge/services/token"
	"octobridge/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP responses, keeping the error
// taxonomy visible to the host: configuration and integrity failures are
// never conflated with "no availability" or lookup misses.
func respondError(c *gin.Context, err error) {
	var availVal *availability.ValidationError
	var bookVal *booking.ValidationError
	var noUnit *availability.NoUnitError
	var apiErr *octo.APIError

	switch {
	case errors.Is(err, token.ErrNoSecret):
		utils.JSONError(c, http.StatusInternalServerError, "adapter misconfigured", err.Error())
	case errors.Is(err, token.ErrInvalidToken):
		utils.JSONError(c, http.StatusUnprocessableEntity, "capability token rejected", err.Error())
	case errors.As(err, &availVal), errors.As(err, &bookVal), errors.As(err, &noUnit):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case errors.As(err, &apiErr):
		// Surface the supplier's own message verbatim.
		utils.JSONError(c, http.StatusBadGateway, "supplier error", apiErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
