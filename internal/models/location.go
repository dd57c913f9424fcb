package models

import "time"

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are within WGS84 ranges.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// ResolvedLocation is a cached forward-geocoding result. Entries are written
// once and never updated.
type ResolvedLocation struct {
	NormalizedAddress string    `json:"normalized_address"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	CanonicalAddress  string    `json:"canonical_address"`
	ResolvedAt        time.Time `json:"resolved_at"`
}

// Coordinate returns the cached point.
func (r ResolvedLocation) Coordinate() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}
