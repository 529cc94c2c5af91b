// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dropcab/internal/config"
	httptransport "dropcab/internal/http"
	"dropcab/internal/infra"
	"dropcab/internal/logger"
	mapsadapter "dropcab/internal/maps"
	"dropcab/internal/modules/booking"
	"dropcab/internal/modules/catalog"
	"dropcab/internal/modules/geocode"
	"dropcab/internal/modules/pricing"
	"dropcab/internal/modules/servicearea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var vehicleSource catalog.Source = catalog.NewStaticSource()
	if cfg.DBDSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DBDSN)
		if err != nil {
			zlog.Fatal("postgres init", zap.Error(err))
		}
		defer dbPool.Close()
		vehicleSource = catalog.NewStore(dbPool)
		zlog.Info("vehicle catalog backed by postgres")
	} else {
		zlog.Info("vehicle catalog backed by built-in fleet")
	}

	catalogSvc := catalog.NewService(vehicleSource)
	pricingSvc := pricing.NewService(pricing.DefaultConfig())
	bookingSvc := booking.NewService(catalogSvc, pricingSvc, cfg.PriceTolerance)
	validator := servicearea.NewValidator(cfg.AllowedStateList())

	var geocodeSvc *geocode.Service
	if cfg.MapsAPIKey != "" {
		geocoder, err := mapsadapter.NewGeocodeService(cfg.MapsAPIKey,
			time.Duration(cfg.GeocodeMinIntervalMS)*time.Millisecond)
		if err != nil {
			zlog.Fatal("maps init", zap.Error(err))
		}
		var cache geocode.Cache = geocode.NewMemoryCache()
		if cfg.RedisAddr != "" {
			cache = geocode.NewRedisCache(infra.NewRedis(cfg.RedisAddr), cfg.GeocodeCacheTTL)
			zlog.Info("geocode cache backed by redis")
		}
		geocodeSvc = geocode.NewService(geocoder, cache, zlog)
	} else {
		zlog.Info("no maps API key configured; geocode endpoint disabled")
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Booking:   bookingSvc,
		Catalog:   catalogSvc,
		Pricing:   pricingSvc,
		Validator: validator,
		Geocode:   geocodeSvc,
		Log:       zlog,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zlog.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server error", zap.Error(err))
	}
}
