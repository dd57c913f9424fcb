package handler

import (
	"errors"
	"net/http"

	"location-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgInternal           = "internal server error"
	msgInvalidInput       = "invalid request parameters"
	msgMissingCoordinate  = "Listing does not have coordinates set"
	msgGeocodeFailed      = "Unable to geocode address. Please check the address and try again."
	msgReverseFailed      = "Unable to reverse geocode coordinates."
	msgDirectionsFailed   = "Unable to get directions. Please try again."
	msgListingNotFoundFmt = "Listing with ID %d not found"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request parameters"`
}

// errorMessages holds the client-facing text for the failures an endpoint
// can surface. Empty fields fall back to generic text.
type errorMessages struct {
	resolution string
	notFound   string
}

// writeError maps a service error to a status and a short message. Detail is
// only logged.
func writeError(c *gin.Context, err error, msgs errorMessages) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidInput})
	case errors.Is(err, service.ErrResolutionFailed):
		msg := msgs.resolution
		if msg == "" {
			msg = msgInvalidInput
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	case errors.Is(err, service.ErrMissingCoordinate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingCoordinate})
	case errors.Is(err, service.ErrRecordNotFound):
		msg := msgs.notFound
		if msg == "" {
			msg = "not found"
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

// badRequest answers a request that failed binding.
func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidInput})
}
