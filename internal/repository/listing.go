package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"location-api/internal/geo"
	"location-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingRepository reads and writes listing coordinates in PostgreSQL
type ListingRepository struct {
	db *pgxpool.Pool
}

// NewListingRepository creates a new PostgreSQL listing repository
func NewListingRepository(db *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{db: db}
}

// haversineKmSQL is the great-circle distance in km from ($1, $2) to the
// row's lat/lng. It matches geo.HaversineKm term for term.
var haversineKmSQL = `(2 * ` + strconv.FormatFloat(geo.EarthRadiusKm, 'f', -1, 64) + ` * asin(sqrt(least(1,
		power(sin(radians(lat - $1) / 2), 2) +
		cos(radians($1)) * cos(radians(lat)) * power(sin(radians(lng - $2) / 2), 2)
	))))`

// proximityWhereSQL selects listings inside the circle. $3 is the radius,
// $4/$5 the latitude band and $6 an optional city.
var proximityWhereSQL = `
		WHERE lat IS NOT NULL AND lng IS NOT NULL
			AND lat BETWEEN $4 AND $5
			AND ($6 = '' OR lower(city) = lower($6))
			AND ` + haversineKmSQL + ` <= $3`

const listingColumns = `id, address, city, area, lat, lng, avg_rating, review_count, created_at`

// GetCoordinate returns the stored coordinate of listing id, or nil when it
// has none.
func (r *ListingRepository) GetCoordinate(ctx context.Context, id int64) (*models.Coordinate, error) {
	sql := `SELECT lat, lng FROM listings WHERE id = $1`

	var lat, lng *float64
	err := r.db.QueryRow(ctx, sql, id).Scan(&lat, &lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: listing %d: %w", id, models.ErrListingNotFound)
		}
		return nil, fmt.Errorf("repository: failed to read listing coordinate: %w", err)
	}

	if lat == nil || lng == nil {
		return nil, nil
	}
	return &models.Coordinate{Latitude: *lat, Longitude: *lng}, nil
}

// UpdateCoordinate sets lat and lng of listing id in a single statement.
func (r *ListingRepository) UpdateCoordinate(ctx context.Context, id int64, coord models.Coordinate) error {
	sql := `UPDATE listings SET lat = $2, lng = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, id, coord.Latitude, coord.Longitude)
	if err != nil {
		return fmt.Errorf("repository: failed to update listing coordinate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: listing %d: %w", id, models.ErrListingNotFound)
	}
	return nil
}

// FindWithinRadius returns one page of listings within q.RadiusKm of
// q.Center ordered by distance then id, and the total number of matches.
func (r *ListingRepository) FindWithinRadius(ctx context.Context, q models.ProximityQuery) ([]models.Listing, int, error) {
	minLat, maxLat := geo.LatitudeBand(q.Center, q.RadiusKm)
	args := []any{q.Center.Latitude, q.Center.Longitude, q.RadiusKm, minLat, maxLat, q.City}

	countSQL := `SELECT count(*) FROM listings` + proximityWhereSQL

	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count listings in radius: %w", err)
	}
	if total == 0 || q.Offset >= total {
		return nil, total, nil
	}

	pageSQL := `
		SELECT ` + listingColumns + `, ` + haversineKmSQL + ` AS distance_km
		FROM listings` + proximityWhereSQL + `
		ORDER BY distance_km, id
		OFFSET $7 LIMIT $8
	`

	rows, err := r.db.Query(ctx, pageSQL, append(args, q.Offset, q.Limit)...)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to execute proximity query: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var (
			l    models.Listing
			dist float64
		)
		if err := rows.Scan(listingScanTargets(&l, &dist)...); err != nil {
			return nil, 0, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		l.DistanceKm = &dist
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return listings, total, nil
}

// ListRecent returns one page of listings, newest first, and the total.
func (r *ListingRepository) ListRecent(ctx context.Context, f models.ListingFilter) ([]models.Listing, int, error) {
	where := ` WHERE ($1 = '' OR lower(city) = lower($1))`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM listings`+where, f.City).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count listings: %w", err)
	}
	if total == 0 || f.Offset >= total {
		return nil, total, nil
	}

	sql := `SELECT ` + listingColumns + ` FROM listings` + where + `
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, sql, f.City, f.Offset, f.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to list listings: %w", err)
	}
	defer rows.Close()

	listings, err := scanListings(rows)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// ListMissingCoordinates returns up to limit listings that have an address
// but no coordinate, oldest id first.
func (r *ListingRepository) ListMissingCoordinates(ctx context.Context, limit int) ([]models.Listing, error) {
	sql := `SELECT ` + listingColumns + ` FROM listings
		WHERE (lat IS NULL OR lng IS NULL) AND btrim(address) <> ''
		ORDER BY id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list unresolved listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func listingScanTargets(l *models.Listing, extra ...any) []any {
	return append([]any{
		&l.ID,
		&l.Address,
		&l.City,
		&l.Area,
		&l.Lat,
		&l.Lng,
		&l.AvgRating,
		&l.ReviewCount,
		&l.CreatedAt,
	}, extra...)
}

func scanListings(rows pgx.Rows) ([]models.Listing, error) {
	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(listingScanTargets(&l)...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return listings, nil
}
