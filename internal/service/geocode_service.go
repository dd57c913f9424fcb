package service

import (
	"context"
	"fmt"
	"time"

	"location-api/internal/geo"
	"location-api/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// detachedCallTimeout bounds a shared in-flight resolution once it no longer
// follows the first caller's context.
const detachedCallTimeout = 15 * time.Second

// GeoCodeService resolves addresses through the cache and the provider
type GeoCodeService struct {
	cache    GeoCodeCache
	provider GeoCodeProvider
	group    singleflight.Group
	dedupe   bool
	now      func() time.Time
}

// GeoCodeCache interface for dependency injection
type GeoCodeCache interface {
	Lookup(ctx context.Context, key string) (models.ResolvedLocation, bool, error)
	Store(ctx context.Context, key string, loc models.ResolvedLocation) error
}

// GeoCodeProvider interface for dependency injection
type GeoCodeProvider interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, string, error)
}

// GeocodeResult is the answer to a forward resolution.
type GeocodeResult struct {
	Coordinate       models.Coordinate
	FormattedAddress string
	FromCache        bool
}

// GeoCodeOption customizes a GeoCodeService.
type GeoCodeOption func(*GeoCodeService)

// WithInflightDedupe makes concurrent misses for the same normalized address
// share a single provider call.
func WithInflightDedupe(enabled bool) GeoCodeOption {
	return func(s *GeoCodeService) { s.dedupe = enabled }
}

// WithClock overrides the time source used for resolved_at.
func WithClock(now func() time.Time) GeoCodeOption {
	return func(s *GeoCodeService) { s.now = now }
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(cache GeoCodeCache, provider GeoCodeProvider, opts ...GeoCodeOption) *GeoCodeService {
	s := &GeoCodeService{
		cache:    cache,
		provider: provider,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveAddress returns the coordinate for a free-text address. Cached
// entries are served without calling the provider. On a miss the provider is
// asked with the raw address and the answer is written back to the cache; a
// failed write is logged and does not fail the call.
func (s *GeoCodeService) ResolveAddress(ctx context.Context, raw string) (*GeocodeResult, error) {
	key := geo.NormalizeAddress(raw)
	if key == "" {
		return nil, fmt.Errorf("service: address cannot be empty: %w", ErrInvalidInput)
	}

	loc, found, err := s.cache.Lookup(ctx, key)
	switch {
	case err != nil:
		geocodeCacheLookups.WithLabelValues("error").Inc()
		log.Warn().Err(err).Str("key", key).Msg("geocode cache lookup failed, resolving with provider")
	case found:
		geocodeCacheLookups.WithLabelValues("hit").Inc()
		return &GeocodeResult{
			Coordinate:       loc.Coordinate(),
			FormattedAddress: loc.CanonicalAddress,
			FromCache:        true,
		}, nil
	default:
		geocodeCacheLookups.WithLabelValues("miss").Inc()
	}

	if !s.dedupe {
		return s.resolveAndStore(ctx, raw, key)
	}

	ch := s.group.DoChan(key, func() (any, error) {
		detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), detachedCallTimeout)
		defer cancel()
		return s.resolveAndStore(detached, raw, key)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("service: geocode %q: %w: %w", raw, ErrResolutionFailed, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			geocodeInflightShared.Inc()
		}
		result := *res.Val.(*GeocodeResult)
		return &result, nil
	}
}

func (s *GeoCodeService) resolveAndStore(ctx context.Context, raw, key string) (*GeocodeResult, error) {
	coord, formatted, err := s.provider.Geocode(ctx, raw)
	observeProvider("geocode", err)
	if err != nil {
		return nil, fmt.Errorf("service: geocode %q: %w: %w", raw, ErrResolutionFailed, err)
	}
	if !coord.Valid() {
		return nil, fmt.Errorf("service: geocode %q: provider returned %v: %w", raw, coord, ErrResolutionFailed)
	}

	loc := models.ResolvedLocation{
		NormalizedAddress: key,
		Latitude:          coord.Latitude,
		Longitude:         coord.Longitude,
		CanonicalAddress:  formatted,
		ResolvedAt:        s.now().UTC(),
	}
	if err := s.cache.Store(ctx, key, loc); err != nil {
		geocodeCacheWriteFailures.Inc()
		log.Error().Err(err).Str("key", key).Msg("failed to write geocode cache entry")
	}

	return &GeocodeResult{
		Coordinate:       coord,
		FormattedAddress: formatted,
		FromCache:        false,
	}, nil
}
