package service

import (
	"context"
	"fmt"
	"math"

	"location-api/internal/models"
)

// ListingService answers listing searches, by distance when a center is
// given and in the store's default order otherwise.
type ListingService struct {
	repo   ListingSearchRepository
	limits SearchLimits
}

// ListingSearchRepository interface for dependency injection
type ListingSearchRepository interface {
	FindWithinRadius(ctx context.Context, q models.ProximityQuery) ([]models.Listing, int, error)
	ListRecent(ctx context.Context, f models.ListingFilter) ([]models.Listing, int, error)
}

// SearchLimits holds the defaults and upper bounds applied to searches.
type SearchLimits struct {
	MinRadiusKm     float64
	DefaultRadiusKm float64
	MaxRadiusKm     float64
	DefaultLimit    int
	MaxLimit        int
}

// DefaultSearchLimits returns radii in [0.1, 50] km defaulting to 5 and
// pages of 20 items up to 100.
func DefaultSearchLimits() SearchLimits {
	return SearchLimits{
		MinRadiusKm:     0.1,
		DefaultRadiusKm: 5,
		MaxRadiusKm:     50,
		DefaultLimit:    20,
		MaxLimit:        100,
	}
}

// ListingSearch is an unvalidated search request. Nil fields take defaults.
// A center needs both Lat and Lng; with only one of them the search falls
// back to default ordering.
type ListingSearch struct {
	Lat      *float64
	Lng      *float64
	RadiusKm *float64
	City     string
	Offset   *int
	Limit    *int
}

// NewListingService creates a new listing service
func NewListingService(repo ListingSearchRepository, limits SearchLimits) *ListingService {
	return &ListingService{repo: repo, limits: limits}
}

// Search validates s and runs either a proximity query or a default-ordered
// listing query. Total is the size of the filtered set before paging.
func (svc *ListingService) Search(ctx context.Context, s ListingSearch) (*models.ListingPage, error) {
	filter, err := svc.filter(s)
	if err != nil {
		return nil, err
	}

	var (
		items []models.Listing
		total int
	)

	if s.Lat != nil && s.Lng != nil {
		q := svc.proximityQuery(*s.Lat, *s.Lng, s.RadiusKm, filter)
		items, total, err = svc.FindNear(ctx, q)
		if err != nil {
			return nil, err
		}
	} else {
		items, total, err = svc.repo.ListRecent(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("service: failed to list listings: %w: %w", ErrStoreReadFailed, err)
		}
	}

	if items == nil {
		items = []models.Listing{}
	}

	return &models.ListingPage{
		Items:  items,
		Total:  total,
		Offset: filter.Offset,
		Limit:  filter.Limit,
	}, nil
}

// FindNear returns the listings within q.RadiusKm of q.Center, nearest first,
// along with the number of matches before paging. Listings without a
// coordinate are never candidates.
func (svc *ListingService) FindNear(ctx context.Context, q models.ProximityQuery) ([]models.Listing, int, error) {
	if !q.Center.Valid() {
		return nil, 0, fmt.Errorf("service: invalid center %v: %w", q.Center, ErrInvalidInput)
	}
	if math.IsNaN(q.RadiusKm) || q.RadiusKm <= 0 || q.RadiusKm < svc.limits.MinRadiusKm || q.RadiusKm > svc.limits.MaxRadiusKm {
		return nil, 0, fmt.Errorf("service: radius must be in [%g, %g] km: %w", svc.limits.MinRadiusKm, svc.limits.MaxRadiusKm, ErrInvalidInput)
	}

	items, total, err := svc.repo.FindWithinRadius(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to find listings near %v: %w: %w", q.Center, ErrStoreReadFailed, err)
	}

	return items, total, nil
}

func (svc *ListingService) filter(s ListingSearch) (models.ListingFilter, error) {
	f := models.ListingFilter{City: s.City, Limit: svc.limits.DefaultLimit}

	if s.Offset != nil {
		if *s.Offset < 0 {
			return f, fmt.Errorf("service: offset must not be negative: %w", ErrInvalidInput)
		}
		f.Offset = *s.Offset
	}
	if s.Limit != nil {
		if *s.Limit < 1 || *s.Limit > svc.limits.MaxLimit {
			return f, fmt.Errorf("service: limit must be in [1, %d]: %w", svc.limits.MaxLimit, ErrInvalidInput)
		}
		f.Limit = *s.Limit
	}

	return f, nil
}

func (svc *ListingService) proximityQuery(lat, lng float64, radiusKm *float64, f models.ListingFilter) models.ProximityQuery {
	q := models.ProximityQuery{
		Center:        models.Coordinate{Latitude: lat, Longitude: lng},
		RadiusKm:      svc.limits.DefaultRadiusKm,
		ListingFilter: f,
	}
	if radiusKm != nil {
		q.RadiusKm = *radiusKm
	}
	return q
}
