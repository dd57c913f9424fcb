package service

import (
	"context"
	"fmt"
	"strings"

	"location-api/internal/models"
)

// ReverseGeoCodeService turns coordinates into a human-readable address
type ReverseGeoCodeService struct {
	provider ReverseGeoCodeProvider
}

// ReverseGeoCodeProvider interface for dependency injection
type ReverseGeoCodeProvider interface {
	ReverseGeocode(ctx context.Context, coord models.Coordinate) (string, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(provider ReverseGeoCodeProvider) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{provider: provider}
}

// ReverseGeocode returns the provider's first formatted address for the
// coordinate. Reverse lookups are not cached.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if lat < -90 || lat > 90 {
		return "", fmt.Errorf("service: invalid latitude: %f: %w", lat, ErrInvalidInput)
	}
	if lon < -180 || lon > 180 {
		return "", fmt.Errorf("service: invalid longitude: %f: %w", lon, ErrInvalidInput)
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lon}
	address, err := s.provider.ReverseGeocode(ctx, coord)
	observeProvider("reverse_geocode", err)
	if err != nil {
		return "", fmt.Errorf("service: failed to reverse geocode %v: %w: %w", coord, ErrResolutionFailed, err)
	}
	if strings.TrimSpace(address) == "" {
		return "", fmt.Errorf("service: reverse geocode %v returned no address: %w", coord, ErrResolutionFailed)
	}

	return address, nil
}
