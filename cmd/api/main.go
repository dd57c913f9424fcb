package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "location-api/docs"
	"location-api/internal/config"
	"location-api/internal/database"
	"location-api/internal/handler"
	"location-api/internal/logging"
	"location-api/internal/provider"
	"location-api/internal/repository"
	"location-api/internal/service"
	"location-api/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const serviceName = "location-api"

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logging.Setup(config.LogLevel, config.Environment)
	if config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, config.OTelExporterEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot init tracer")
	}

	if config.MigrateOnStart {
		if err := database.Migrate(config.DBSource); err != nil {
			log.Fatal().Err(err).Msg("cannot migrate db")
		}
	}

	// Database connection
	conn, err := database.Connect(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	if config.GoogleMapsAPIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY is empty, provider calls will be denied")
	}
	maps := provider.NewGoogleMaps(config.GoogleMapsAPIKey,
		provider.WithBaseURL(config.GoogleMapsBaseURL),
		provider.WithTimeout(config.ProviderTimeout),
	)

	// Initialize layers
	cacheRepo := repository.NewGeocodeCacheRepository(conn)
	listingRepo := repository.NewListingRepository(conn)

	geoCodeService := service.NewGeoCodeService(cacheRepo, maps,
		service.WithInflightDedupe(config.GeocodeDedupeInflight))
	reverseGeocodeService := service.NewReverseGeoCodeService(maps)
	listingService := service.NewListingService(listingRepo, service.SearchLimits{
		MinRadiusKm:     config.MinRadiusKm,
		DefaultRadiusKm: config.DefaultRadiusKm,
		MaxRadiusKm:     config.MaxRadiusKm,
		DefaultLimit:    config.DefaultPageLimit,
		MaxLimit:        config.MaxPageLimit,
	})
	locationService := service.NewLocationService(listingRepo)
	directionsService := service.NewDirectionsService(listingRepo, maps)

	r := newRouter(handlers{
		health:     handler.NewHealthHandler(conn),
		geocode:    handler.NewGeoCodeHandler(geoCodeService),
		reverse:    handler.NewReverseGeocodeHandler(reverseGeocodeService),
		location:   handler.NewLocationHandler(locationService),
		directions: handler.NewDirectionsHandler(directionsService),
		listings:   handler.NewListingHandler(listingService),
	})

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", config.ServerAddress).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown failed")
	}
}
