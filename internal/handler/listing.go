package handler

import (
	"context"
	"net/http"

	"location-api/internal/models"
	"location-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles listing searches
type ListingHandler struct {
	service ListingService
}

// ListingService interface for dependency injection
type ListingService interface {
	Search(ctx context.Context, s service.ListingSearch) (*models.ListingPage, error)
}

// ListingQuery is the query string of GET /records. Without both lat and lng
// the listings come back newest first.
type ListingQuery struct {
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	RadiusKm *float64 `form:"radiusKm"`
	City     string   `form:"city"`
	Offset   *int     `form:"offset"`
	Limit    *int     `form:"limit"`
}

// NewListingHandler creates a new listing handler
func NewListingHandler(svc ListingService) *ListingHandler {
	return &ListingHandler{service: svc}
}

// ListRecords handles GET /records requests
//
//	@Summary	Search listings, nearest first when a center is given
//	@Tags		records
//	@Produce	json
//	@Param		lat			query		number	false	"center latitude"
//	@Param		lng			query		number	false	"center longitude"
//	@Param		radiusKm	query		number	false	"search radius in km (default 5, max 50)"
//	@Param		city		query		string	false	"city filter"
//	@Param		offset		query		int		false	"page offset"
//	@Param		limit		query		int		false	"page size (default 20, max 100)"
//	@Success	200			{object}	models.ListingPage
//	@Failure	400			{object}	ErrorResponse
//	@Router		/records [get]
func (h *ListingHandler) ListRecords(c *gin.Context) {
	var q ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.service.Search(c.Request.Context(), service.ListingSearch{
		Lat:      q.Lat,
		Lng:      q.Lng,
		RadiusKm: q.RadiusKm,
		City:     q.City,
		Offset:   q.Offset,
		Limit:    q.Limit,
	})
	if err != nil {
		writeError(c, err, errorMessages{})
		return
	}

	c.JSON(http.StatusOK, page)
}
