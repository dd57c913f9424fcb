package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"location-api/internal/models"

	"github.com/rs/zerolog/log"
)

// BackfillService resolves listings that were saved with an address but no
// coordinate. Every resolution goes through the geocode cache.
type BackfillService struct {
	repo     ListingBackfillRepository
	resolver AddressResolver
}

// ListingBackfillRepository interface for dependency injection
type ListingBackfillRepository interface {
	ListMissingCoordinates(ctx context.Context, limit int) ([]models.Listing, error)
	UpdateCoordinate(ctx context.Context, id int64, coord models.Coordinate) error
}

// AddressResolver interface for dependency injection
type AddressResolver interface {
	ResolveAddress(ctx context.Context, address string) (*GeocodeResult, error)
}

// BackfillReport counts the outcome of a run.
type BackfillReport struct {
	Candidates int
	Updated    int
	FromCache  int
	Failed     int
}

// NewBackfillService creates a new backfill service
func NewBackfillService(repo ListingBackfillRepository, resolver AddressResolver) *BackfillService {
	return &BackfillService{repo: repo, resolver: resolver}
}

// Candidates returns up to limit listings that still need a coordinate.
func (s *BackfillService) Candidates(ctx context.Context, limit int) ([]models.Listing, error) {
	if limit < 1 {
		return nil, fmt.Errorf("service: backfill limit must be positive: %w", ErrInvalidInput)
	}
	listings, err := s.repo.ListMissingCoordinates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list backfill candidates: %w: %w", ErrStoreReadFailed, err)
	}
	return listings, nil
}

// Run resolves and stores a coordinate for each listing. A listing that
// cannot be resolved is skipped and left without a coordinate. progress, if
// set, is called once per listing. Run stops early only when ctx ends.
func (s *BackfillService) Run(ctx context.Context, listings []models.Listing, progress func()) (BackfillReport, error) {
	report := BackfillReport{Candidates: len(listings)}

	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fromCache, err := s.backfillOne(ctx, l)
		switch {
		case err != nil:
			report.Failed++
			log.Warn().Err(err).Int64("listing_id", l.ID).Msg("backfill skipped listing")
		case fromCache:
			report.Updated++
			report.FromCache++
		default:
			report.Updated++
		}

		if progress != nil {
			progress()
		}
	}

	return report, nil
}

func (s *BackfillService) backfillOne(ctx context.Context, l models.Listing) (bool, error) {
	query := strings.TrimSpace(l.Address)
	if l.City != "" && !strings.Contains(strings.ToLower(query), strings.ToLower(l.City)) {
		query += ", " + l.City
	}

	result, err := s.resolver.ResolveAddress(ctx, query)
	if err != nil {
		return false, err
	}

	if err := s.repo.UpdateCoordinate(ctx, l.ID, result.Coordinate); err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			return false, fmt.Errorf("service: listing %d: %w", l.ID, ErrRecordNotFound)
		}
		return false, fmt.Errorf("service: failed to update listing %d: %w: %w", l.ID, ErrStoreWriteFailed, err)
	}

	return result.FromCache, nil
}
