// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dropcab/internal/modules/booking"
	"dropcab/internal/modules/catalog"
	"dropcab/internal/modules/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeQuoteError maps service errors onto HTTP statuses. Price mismatches
// get a 409 carrying both totals so the caller can re-prompt the user.
func writeQuoteError(c *gin.Context, err error) {
	var mismatch *booking.PriceMismatchError
	switch {
	case errors.Is(err, pricing.ErrInvalidDistance):
		writeError(c, http.StatusBadRequest, "Invalid distance")
	case errors.Is(err, pricing.ErrInvalidTripType):
		writeError(c, http.StatusBadRequest, "Invalid trip type")
	case errors.Is(err, catalog.ErrNotFound):
		writeError(c, http.StatusNotFound, "Vehicle not found")
	case errors.As(err, &mismatch):
		c.JSON(http.StatusConflict, gin.H{
			"error":                 "Price mismatch detected",
			"message":               "The price has been recalculated. Please review the updated amount.",
			"serverCalculatedPrice": mismatch.ServerPrice,
			"clientCalculatedPrice": mismatch.ClientPrice,
			"difference":            mismatch.Difference,
		})
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "Internal server error")
	}
}
