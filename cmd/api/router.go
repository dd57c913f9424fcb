package main

import (
	"location-api/internal/handler"
	"location-api/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type handlers struct {
	health     *handler.HealthHandler
	geocode    *handler.GeoCodeHandler
	reverse    *handler.ReverseGeocodeHandler
	location   *handler.LocationHandler
	directions *handler.DirectionsHandler
	listings   *handler.ListingHandler
}

func newRouter(h handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.Tracing(serviceName),
		middleware.Prometheus(),
	)

	r.GET("/health", h.health.Health)
	r.GET("/metrics", middleware.MetricsHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/geocode", h.geocode.GeoCode)
	r.POST("/reverse-geocode", h.reverse.ReverseGeocode)
	r.GET("/records", h.listings.ListRecords)
	r.PUT("/records/:id/location", h.location.UpdateLocation)
	r.POST("/directions", h.directions.GetDirections)

	return r
}
