package geo

import (
	"math"

	"location-api/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for every distance computation.
const EarthRadiusKm = 6371.0

// bandMarginDeg widens the latitude band so floating point rounding never
// drops a point that sits exactly on the radius.
const bandMarginDeg = 1e-9

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineKm returns the great-circle distance between a and b in
// kilometers. Searches filter in SQL; this is the in-process reference for
// that expression and uses the same 2·R·asin(√h) form, so tests and fakes can
// check stored distances against it.
func HaversineKm(a, b models.Coordinate) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(math.Min(1, h)))
}

// LatitudeBand returns the latitude interval that contains every point within
// radiusKm of center. The central angle between two points is never smaller
// than their latitude difference, so the band is a superset of the circle.
// There is no longitude bound; one would clip near ±180°.
func LatitudeBand(center models.Coordinate, radiusKm float64) (minLat, maxLat float64) {
	delta := radiusKm/EarthRadiusKm*180/math.Pi + bandMarginDeg

	minLat = math.Max(-90, center.Latitude-delta)
	maxLat = math.Min(90, center.Latitude+delta)
	return minLat, maxLat
}
