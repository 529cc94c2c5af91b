// README: Vehicle catalog handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dropcab/internal/modules/catalog"
	"dropcab/internal/modules/pricing"
	"dropcab/internal/types"
)

type CatalogHandler struct {
	catalog *catalog.Service
	pricing *pricing.Service
}

func NewCatalogHandler(catalogSvc *catalog.Service, pricingSvc *pricing.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogSvc, pricing: pricingSvc}
}

// vehicleQuote is a catalog entry annotated with its fare estimate for a
// given trip, mirroring what the vehicle picker renders.
type vehicleQuote struct {
	catalog.Vehicle
	PricePerKm    float64 `json:"pricePerKm"`
	EstimatedFare float64 `json:"estimatedFare"`
	Distance      float64 `json:"distance"`
	ExtraKm       float64 `json:"extraKm"`
	ExtraFee      float64 `json:"extraFee"`
	TotalFare     float64 `json:"totalFare"`
}

// List returns the fleet. With valid distance and tripType query params,
// each vehicle carries its estimated fare for that trip.
func (h *CatalogHandler) List(c *gin.Context) {
	vehicles, err := h.catalog.List(c.Request.Context())
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	distanceParam := c.Query("distance")
	tripParam := c.Query("tripType")
	if distanceParam == "" && tripParam == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "vehicles": vehicles})
		return
	}

	distance, err := strconv.ParseFloat(distanceParam, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid distance")
		return
	}
	trip, err := types.ParseTripType(tripParam)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid trip type")
		return
	}

	quotes := make([]vehicleQuote, 0, len(vehicles))
	for _, v := range vehicles {
		b, err := h.pricing.Calculate(v, distance, trip)
		if err != nil {
			writeQuoteError(c, err)
			return
		}
		quotes = append(quotes, vehicleQuote{
			Vehicle:       v,
			PricePerKm:    b.RatePerKm,
			EstimatedFare: b.BaseFare,
			Distance:      b.ActualDistance,
			ExtraKm:       b.ExtraKm,
			ExtraFee:      b.ExtraFee,
			TotalFare:     b.Total,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicles": quotes})
}

// Get returns a single vehicle by id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	v, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": v})
}
