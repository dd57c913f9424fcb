package models

// TravelMode selects how a route is computed by the provider.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeTransit   TravelMode = "transit"
	TravelModeBicycling TravelMode = "bicycling"
)

// Valid reports whether m is one of the supported modes.
func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeTransit, TravelModeBicycling:
		return true
	}
	return false
}

// RouteSummary is the first leg of a provider route. Path is the provider's
// encoded polyline and is passed through untouched.
type RouteSummary struct {
	DistanceText    string `json:"distance_text"`
	DurationText    string `json:"duration_text"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	StartAddress    string `json:"start_address,omitempty"`
	EndAddress      string `json:"end_address,omitempty"`
	Path            string `json:"path"`
}
