package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service ReverseGeoCodeService
}

// ReverseGeoCodeService interface for dependency injection
type ReverseGeoCodeService interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// ReverseGeocodeRequest is the body of POST /reverse-geocode. Pointers let
// 0 through as a real coordinate.
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90" example:"12.9716"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180" example:"77.5946"`
}

// ReverseGeocodeResponse carries the provider's address.
type ReverseGeocodeResponse struct {
	FormattedAddress string `json:"formattedAddress" example:"MG Road, Bengaluru, Karnataka 560001, India"`
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc ReverseGeoCodeService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles POST /reverse-geocode requests
//
//	@Summary	Resolve coordinates to an address
//	@Tags		geocoding
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ReverseGeocodeRequest	true	"coordinates"
//	@Success	200		{object}	ReverseGeocodeResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/reverse-geocode [post]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	var req ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	address, err := h.service.ReverseGeocode(c.Request.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		writeError(c, err, errorMessages{resolution: msgReverseFailed})
		return
	}

	c.JSON(http.StatusOK, ReverseGeocodeResponse{FormattedAddress: address})
}
