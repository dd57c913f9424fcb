package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"location-api/internal/models"
	"location-api/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles coordinate updates on listings
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	ApplyCoordinate(ctx context.Context, id int64, coord models.Coordinate, confirmed bool) (*service.LocationUpdate, error)
}

// UpdateLocationRequest is the body of PUT /records/{id}/location.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90" example:"12.9716"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180" example:"77.5946"`
	Confirmed bool     `json:"confirmed"`
}

// UpdateLocationResponse echoes the stored coordinate.
type UpdateLocationResponse struct {
	RecordID  int64   `json:"recordId" example:"42"`
	Latitude  float64 `json:"latitude" example:"12.9716"`
	Longitude float64 `json:"longitude" example:"77.5946"`
	Confirmed bool    `json:"confirmed"`
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// UpdateLocation handles PUT /records/:id/location requests
//
//	@Summary	Set the coordinate of a listing
//	@Tags		records
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"listing id"
//	@Param		request	body		UpdateLocationRequest	true	"coordinate"
//	@Success	200		{object}	UpdateLocationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/records/{id}/location [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid record id"})
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	coord := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	update, err := h.service.ApplyCoordinate(c.Request.Context(), id, coord, req.Confirmed)
	if err != nil {
		writeError(c, err, errorMessages{notFound: fmt.Sprintf(msgListingNotFoundFmt, id)})
		return
	}

	c.JSON(http.StatusOK, UpdateLocationResponse{
		RecordID:  update.RecordID,
		Latitude:  update.Coordinate.Latitude,
		Longitude: update.Coordinate.Longitude,
		Confirmed: update.Confirmed,
	})
}
