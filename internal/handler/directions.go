package handler

import (
	"context"
	"fmt"
	"net/http"

	"location-api/internal/models"

	"github.com/gin-gonic/gin"
)

// DirectionsHandler handles route requests to a listing
type DirectionsHandler struct {
	service DirectionsService
}

// DirectionsService interface for dependency injection
type DirectionsService interface {
	GetDirections(ctx context.Context, origin models.Coordinate, id int64, mode models.TravelMode) (models.RouteSummary, error)
}

// DirectionsRequest is the body of POST /directions. An empty mode means
// driving.
type DirectionsRequest struct {
	OriginLat           *float64 `json:"originLat" binding:"required,min=-90,max=90" example:"12.9716"`
	OriginLng           *float64 `json:"originLng" binding:"required,min=-180,max=180" example:"77.5946"`
	DestinationRecordID int64    `json:"destinationRecordId" binding:"required,min=1" example:"42"`
	Mode                string   `json:"mode" binding:"omitempty,oneof=driving walking transit bicycling" example:"driving"`
}

// DirectionsResponse summarizes the first leg of the route.
type DirectionsResponse struct {
	DistanceText    string `json:"distanceText" example:"5.8 km"`
	DurationText    string `json:"durationText" example:"18 mins"`
	EncodedPath     string `json:"encodedPath"`
	DistanceMeters  int    `json:"distanceMeters" example:"5800"`
	DurationSeconds int    `json:"durationSeconds" example:"1080"`
	StartAddress    string `json:"startAddress,omitempty"`
	EndAddress      string `json:"endAddress,omitempty"`
}

// NewDirectionsHandler creates a new directions handler
func NewDirectionsHandler(svc DirectionsService) *DirectionsHandler {
	return &DirectionsHandler{service: svc}
}

// GetDirections handles POST /directions requests
//
//	@Summary	Route from a position to a listing
//	@Tags		directions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		DirectionsRequest	true	"origin and destination"
//	@Success	200		{object}	DirectionsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/directions [post]
func (h *DirectionsHandler) GetDirections(c *gin.Context) {
	var req DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	origin := models.Coordinate{Latitude: *req.OriginLat, Longitude: *req.OriginLng}
	route, err := h.service.GetDirections(c.Request.Context(), origin, req.DestinationRecordID, models.TravelMode(req.Mode))
	if err != nil {
		writeError(c, err, errorMessages{
			resolution: msgDirectionsFailed,
			notFound:   fmt.Sprintf(msgListingNotFoundFmt, req.DestinationRecordID),
		})
		return
	}

	c.JSON(http.StatusOK, DirectionsResponse{
		DistanceText:    route.DistanceText,
		DurationText:    route.DurationText,
		EncodedPath:     route.Path,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		StartAddress:    route.StartAddress,
		EndAddress:      route.EndAddress,
	})
}
