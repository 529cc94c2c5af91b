// README: Location handlers: service-area validation and geocode search.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dropcab/internal/modules/geocode"
	"dropcab/internal/modules/servicearea"
	"dropcab/internal/types"
)

type LocationHandler struct {
	validator *servicearea.Validator
	geocode   *geocode.Service
}

// NewLocationHandler builds the handler. geocodeSvc may be nil when no maps
// API key is configured; the geocode endpoint then reports unavailable.
func NewLocationHandler(validator *servicearea.Validator, geocodeSvc *geocode.Service) *LocationHandler {
	return &LocationHandler{validator: validator, geocode: geocodeSvc}
}

type validateLocationsReq struct {
	Pickup  *types.Location `json:"pickup"`
	Dropoff *types.Location `json:"dropoff"`
}

// Validate checks that both resolved locations fall inside the service
// area. Valid pairs also get the straight-line distance between them.
func (h *LocationHandler) Validate(c *gin.Context) {
	var req validateLocationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	result := h.validator.ValidateLocations(req.Pickup, req.Dropoff)
	resp := gin.H{"ok": result.OK}
	if result.Message != "" {
		resp["message"] = result.Message
	}
	if result.InvalidLocation != "" {
		resp["invalidLocation"] = result.InvalidLocation
	}
	if result.OK {
		resp["straightLineKm"] = geocode.DistanceKm(*req.Pickup, *req.Dropoff)
	}
	c.JSON(http.StatusOK, resp)
}

// Search forward-geocodes a free-form query.
func (h *LocationHandler) Search(c *gin.Context) {
	if h.geocode == nil {
		writeError(c, http.StatusServiceUnavailable, "geocoding is not configured")
		return
	}
	query := c.Query("q")
	results, err := h.geocode.Search(c.Request.Context(), query)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	if results == nil {
		results = []types.Location{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
