package models

import (
	"errors"
	"time"
)

// Listing is the read model of a property record as far as location search is
// concerned. Lat and Lng are nil when the record has no coordinate; a record
// with only one of them set is treated as having none.
type Listing struct {
	ID          int64     `json:"id"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Area        *string   `json:"area,omitempty"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	AvgRating   float64   `json:"avgRating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
	DistanceKm  *float64  `json:"distanceKm,omitempty"`
}

// Coordinate returns the stored point and whether it is set.
func (l Listing) Coordinate() (Coordinate, bool) {
	if l.Lat == nil || l.Lng == nil {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: *l.Lat, Longitude: *l.Lng}, true
}

// ListingFilter narrows and pages a listing query. An empty City matches
// every city.
type ListingFilter struct {
	City   string
	Offset int
	Limit  int
}

// ProximityQuery selects listings within RadiusKm of Center.
type ProximityQuery struct {
	Center   Coordinate
	RadiusKm float64
	ListingFilter
}

// ListingPage is one page of a listing query. Total counts every matching
// record, not just the ones in Items.
type ListingPage struct {
	Items  []Listing `json:"items"`
	Total  int       `json:"total"`
	Offset int       `json:"offset"`
	Limit  int       `json:"limit"`
}

// ErrListingNotFound is returned by listing stores when no record has the
// requested id.
var ErrListingNotFound = errors.New("listing not found")
