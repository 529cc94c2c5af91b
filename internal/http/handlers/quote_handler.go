// README: Quote handlers for price calculation and booking verification.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dropcab/internal/modules/booking"
	"dropcab/internal/types"
)

type QuoteHandler struct {
	booking *booking.Service
}

func NewQuoteHandler(svc *booking.Service) *QuoteHandler {
	return &QuoteHandler{booking: svc}
}

type quoteReq struct {
	VehicleID int     `json:"vehicleId"`
	Distance  float64 `json:"distance"`
	TripType  string  `json:"tripType"`
}

type verifyReq struct {
	quoteReq
	ClientCalculatedPrice *float64 `json:"clientCalculatedPrice"`
}

func (r quoteReq) complete() bool {
	return r.VehicleID != 0 && r.Distance != 0 && r.TripType != ""
}

// CalculatePrice recomputes the fare entirely from server-held data; the
// request carries nothing price-related that is trusted.
func (h *QuoteHandler) CalculatePrice(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.complete() {
		writeError(c, http.StatusBadRequest, "Missing required fields: vehicleId, distance, tripType")
		return
	}
	trip, err := types.ParseTripType(req.TripType)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid trip type")
		return
	}

	q, err := h.booking.Quote(c.Request.Context(), req.VehicleID, req.Distance, trip)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "calculation": q})
}

// VerifyBooking recomputes the fare and reconciles the optional
// client-calculated price before the booking is confirmed.
func (h *QuoteHandler) VerifyBooking(c *gin.Context) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.complete() {
		writeError(c, http.StatusBadRequest, "Missing required fields: vehicleId, distance, tripType")
		return
	}
	trip, err := types.ParseTripType(req.TripType)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid trip type")
		return
	}

	v, err := h.booking.Verify(c.Request.Context(), booking.VerifyCommand{
		VehicleID:   req.VehicleID,
		DistanceKm:  req.Distance,
		TripType:    trip,
		ClientPrice: req.ClientCalculatedPrice,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "verified": true, "booking": v})
}

type shareMessageReq struct {
	verifyReq
	Trip   booking.TripDetails `json:"trip"`
	Booker booking.BookerInfo  `json:"booker"`
}

// ShareMessage validates the collected trip details, verifies the fare and
// returns the WhatsApp-ready booking summary.
func (h *QuoteHandler) ShareMessage(c *gin.Context) {
	var req shareMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.complete() {
		writeError(c, http.StatusBadRequest, "Missing required fields: vehicleId, distance, tripType")
		return
	}
	trip, err := types.ParseTripType(req.TripType)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid trip type")
		return
	}
	if err := req.Trip.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.booking.Verify(c.Request.Context(), booking.VerifyCommand{
		VehicleID:   req.VehicleID,
		DistanceKm:  req.Distance,
		TripType:    trip,
		ClientPrice: req.ClientCalculatedPrice,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	msg := booking.FormatShareMessage(req.Trip, v, req.Booker, time.Now())
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": v, "message": msg})
}
