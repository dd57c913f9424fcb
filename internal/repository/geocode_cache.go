package repository

import (
	"context"
	"errors"
	"fmt"

	"location-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GeocodeCacheRepository persists resolved addresses in geocoding_cache.
// Rows are insert-only; the unique normalized_address is the only
// concurrency control.
type GeocodeCacheRepository struct {
	db *pgxpool.Pool
}

// NewGeocodeCacheRepository creates a new PostgreSQL cache repository
func NewGeocodeCacheRepository(db *pgxpool.Pool) *GeocodeCacheRepository {
	return &GeocodeCacheRepository{db: db}
}

const insertCacheEntrySQL = `
	INSERT INTO geocoding_cache (normalized_address, latitude, longitude, formatted_address, resolved_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (normalized_address) DO NOTHING
`

// Lookup returns the entry stored under key. found is false on a miss.
func (r *GeocodeCacheRepository) Lookup(ctx context.Context, key string) (models.ResolvedLocation, bool, error) {
	sql := `
		SELECT
			normalized_address,
			latitude,
			longitude,
			formatted_address,
			resolved_at
		FROM geocoding_cache
		WHERE normalized_address = $1
	`

	var loc models.ResolvedLocation
	err := r.db.QueryRow(ctx, sql, key).Scan(
		&loc.NormalizedAddress,
		&loc.Latitude,
		&loc.Longitude,
		&loc.CanonicalAddress,
		&loc.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ResolvedLocation{}, false, nil
		}
		return models.ResolvedLocation{}, false, fmt.Errorf("repository: failed to read cache entry: %w", err)
	}

	return loc, true, nil
}

// Store inserts loc under key. An existing entry for key wins and the call
// still succeeds.
func (r *GeocodeCacheRepository) Store(ctx context.Context, key string, loc models.ResolvedLocation) error {
	_, err := r.db.Exec(ctx, insertCacheEntrySQL,
		key,
		loc.Latitude,
		loc.Longitude,
		loc.CanonicalAddress,
		loc.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to store cache entry: %w", err)
	}
	return nil
}

// StoreBatch inserts many entries in one round trip and returns how many
// were new.
func (r *GeocodeCacheRepository) StoreBatch(ctx context.Context, locs []models.ResolvedLocation) (int, error) {
	if len(locs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, loc := range locs {
		batch.Queue(insertCacheEntrySQL,
			loc.NormalizedAddress,
			loc.Latitude,
			loc.Longitude,
			loc.CanonicalAddress,
			loc.ResolvedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for i := range locs {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("repository: failed to store cache entry %d: %w", i, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
