package handler

import (
	"context"
	"net/http"

	"location-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	ResolveAddress(ctx context.Context, address string) (*service.GeocodeResult, error)
}

// GeocodeRequest is the body of POST /geocode.
type GeocodeRequest struct {
	Address string `json:"address" binding:"required" example:"Koramangala, Bengaluru"`
}

// GeocodeResponse is a resolved address.
type GeocodeResponse struct {
	Latitude         float64 `json:"latitude" example:"12.9352"`
	Longitude        float64 `json:"longitude" example:"77.6245"`
	FormattedAddress string  `json:"formattedAddress" example:"Koramangala, Bengaluru, Karnataka, India"`
	FromCache        bool    `json:"fromCache"`
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles POST /geocode requests
//
//	@Summary	Resolve an address to coordinates
//	@Tags		geocoding
//	@Accept		json
//	@Produce	json
//	@Param		request	body		GeocodeRequest	true	"address to resolve"
//	@Success	200		{object}	GeocodeResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/geocode [post]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.service.ResolveAddress(c.Request.Context(), req.Address)
	if err != nil {
		writeError(c, err, errorMessages{resolution: msgGeocodeFailed})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Latitude:         result.Coordinate.Latitude,
		Longitude:        result.Coordinate.Longitude,
		FormattedAddress: result.FormattedAddress,
		FromCache:        result.FromCache,
	})
}
