package service

import (
	"context"
	"errors"
	"fmt"

	"location-api/internal/models"
)

// DirectionsService computes routes from a user's position to a listing.
// Routes are requested on demand and never cached.
type DirectionsService struct {
	repo   ListingCoordinateRepository
	router RouteProvider
}

// ListingCoordinateRepository interface for dependency injection. A nil
// coordinate means the listing exists but has none.
type ListingCoordinateRepository interface {
	GetCoordinate(ctx context.Context, id int64) (*models.Coordinate, error)
}

// RouteProvider interface for dependency injection
type RouteProvider interface {
	Route(ctx context.Context, origin, destination models.Coordinate, mode models.TravelMode) (models.RouteSummary, error)
}

// NewDirectionsService creates a new directions service
func NewDirectionsService(repo ListingCoordinateRepository, router RouteProvider) *DirectionsService {
	return &DirectionsService{repo: repo, router: router}
}

// GetDirections routes from origin to the stored coordinate of listing id.
// An empty mode means driving.
func (s *DirectionsService) GetDirections(ctx context.Context, origin models.Coordinate, id int64, mode models.TravelMode) (models.RouteSummary, error) {
	if !origin.Valid() {
		return models.RouteSummary{}, fmt.Errorf("service: invalid origin %v: %w", origin, ErrInvalidInput)
	}
	if mode == "" {
		mode = models.TravelModeDriving
	}
	if !mode.Valid() {
		return models.RouteSummary{}, fmt.Errorf("service: invalid travel mode %q: %w", mode, ErrInvalidInput)
	}

	dest, err := s.repo.GetCoordinate(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			return models.RouteSummary{}, fmt.Errorf("service: listing %d: %w", id, ErrRecordNotFound)
		}
		return models.RouteSummary{}, fmt.Errorf("service: failed to read listing %d: %w: %w", id, ErrStoreReadFailed, err)
	}
	if dest == nil {
		return models.RouteSummary{}, fmt.Errorf("service: listing %d: %w", id, ErrMissingCoordinate)
	}

	route, err := s.router.Route(ctx, origin, *dest, mode)
	observeProvider("route", err)
	if err != nil {
		return models.RouteSummary{}, fmt.Errorf("service: route to listing %d: %w: %w", id, ErrResolutionFailed, err)
	}

	return route, nil
}
