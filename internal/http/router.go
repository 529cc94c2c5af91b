// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dropcab/internal/http/handlers"
	"dropcab/internal/http/middleware"
	"dropcab/internal/modules/booking"
	"dropcab/internal/modules/catalog"
	"dropcab/internal/modules/geocode"
	"dropcab/internal/modules/pricing"
	"dropcab/internal/modules/servicearea"
)

type RouterDeps struct {
	Booking   *booking.Service
	Catalog   *catalog.Service
	Pricing   *pricing.Service
	Validator *servicearea.Validator
	// Geocode may be nil when no maps API key is configured.
	Geocode *geocode.Service
	Log     *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(deps.Log), middleware.Recovery(deps.Log))

	quoteHandler := handlers.NewQuoteHandler(deps.Booking)
	r.POST("/api/calculate-price", quoteHandler.CalculatePrice)
	r.POST("/api/verify-booking", quoteHandler.VerifyBooking)
	r.POST("/api/bookings/message", quoteHandler.ShareMessage)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Pricing)
	r.GET("/api/vehicles", catalogHandler.List)
	r.GET("/api/vehicles/:id", catalogHandler.Get)

	locationHandler := handlers.NewLocationHandler(deps.Validator, deps.Geocode)
	r.POST("/api/locations/validate", locationHandler.Validate)
	r.GET("/api/geocode", locationHandler.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
