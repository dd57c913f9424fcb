package service

import (
	"context"
	"errors"
	"fmt"

	"location-api/internal/models"
)

// LocationService writes confirmed coordinates onto listings
type LocationService struct {
	repo ListingLocationRepository
}

// ListingLocationRepository interface for dependency injection
type ListingLocationRepository interface {
	UpdateCoordinate(ctx context.Context, id int64, coord models.Coordinate) error
}

// LocationUpdate echoes an applied coordinate. Confirmed is not stored; it
// only tells the client whether the pin was verified by a person.
type LocationUpdate struct {
	RecordID   int64
	Coordinate models.Coordinate
	Confirmed  bool
}

// NewLocationService creates a new location service
func NewLocationService(repo ListingLocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// ApplyCoordinate validates coord and stores it on the listing with one write.
func (s *LocationService) ApplyCoordinate(ctx context.Context, id int64, coord models.Coordinate, confirmed bool) (*LocationUpdate, error) {
	if coord.Latitude < -90 || coord.Latitude > 90 {
		return nil, fmt.Errorf("service: invalid latitude: %f: %w", coord.Latitude, ErrInvalidInput)
	}
	if coord.Longitude < -180 || coord.Longitude > 180 {
		return nil, fmt.Errorf("service: invalid longitude: %f: %w", coord.Longitude, ErrInvalidInput)
	}

	if err := s.repo.UpdateCoordinate(ctx, id, coord); err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			return nil, fmt.Errorf("service: listing %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("service: failed to update listing %d: %w: %w", id, ErrStoreWriteFailed, err)
	}

	return &LocationUpdate{RecordID: id, Coordinate: coord, Confirmed: confirmed}, nil
}
