// Package provider talks to the external geocoding and routing service.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"location-api/internal/models"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DefaultBaseURL is the Google Maps web service root.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api"
	// DefaultTimeout bounds every provider call.
	DefaultTimeout = 10 * time.Second
)

// GoogleMaps resolves addresses, coordinates and routes with the Google Maps
// Geocoding and Directions APIs.
type GoogleMaps struct {
	apiKey     string
	baseURL    string
	region     string
	timeout    time.Duration
	httpClient *http.Client
}

// Option customizes a GoogleMaps client.
type Option func(*GoogleMaps)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(g *GoogleMaps) { g.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithTimeout sets the fixed per-call deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(g *GoogleMaps) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}

// WithRegion biases forward geocoding towards a ccTLD region code.
func WithRegion(region string) Option {
	return func(g *GoogleMaps) { g.region = region }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *GoogleMaps) { g.httpClient = c }
}

// NewGoogleMaps creates a new Google Maps client.
func NewGoogleMaps(apiKey string, opts ...Option) *GoogleMaps {
	g := &GoogleMaps{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.httpClient == nil {
		g.httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   g.timeout,
		}
	}
	return g
}

type latLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location     *latLng `json:"location"`
			LocationType string  `json:"location_type"`
		} `json:"geometry"`
	} `json:"results"`
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance     textValue `json:"distance"`
			Duration     textValue `json:"duration"`
			StartAddress string    `json:"start_address"`
			EndAddress   string    `json:"end_address"`
		} `json:"legs"`
	} `json:"routes"`
}

// Geocode resolves a free-text address. The first candidate wins; there is no
// disambiguation between multiple matches.
func (g *GoogleMaps) Geocode(ctx context.Context, address string) (models.Coordinate, string, error) {
	const op = "geocode"

	address = strings.TrimSpace(address)
	if address == "" {
		return models.Coordinate{}, "", &Error{Kind: KindInvalidRequest, Op: op, Message: "empty address"}
	}

	params := url.Values{}
	params.Set("address", address)
	if g.region != "" {
		params.Set("region", g.region)
	}

	var resp geocodeResponse
	if err := g.get(ctx, op, "/geocode/json", params, &resp); err != nil {
		return models.Coordinate{}, "", err
	}
	if perr := classifyStatus(op, resp.Status, resp.ErrorMessage); perr != nil {
		return models.Coordinate{}, "", perr
	}
	if len(resp.Results) == 0 {
		return models.Coordinate{}, "", &Error{Kind: KindNoResult, Op: op, Message: "no results"}
	}

	first := resp.Results[0]
	loc := first.Geometry.Location
	if loc == nil || loc.Lat == nil || loc.Lng == nil {
		return models.Coordinate{}, "", &Error{Kind: KindDecode, Op: op, Message: "result has no location"}
	}
	coord := models.Coordinate{Latitude: *loc.Lat, Longitude: *loc.Lng}
	if !coord.Valid() {
		return models.Coordinate{}, "", &Error{Kind: KindDecode, Op: op, Message: fmt.Sprintf("coordinate out of range: %v", coord)}
	}

	formatted := first.FormattedAddress
	if formatted == "" {
		formatted = address
	}
	return coord, formatted, nil
}

// ReverseGeocode returns the formatted address closest to coord.
func (g *GoogleMaps) ReverseGeocode(ctx context.Context, coord models.Coordinate) (string, error) {
	const op = "reverse_geocode"

	if !coord.Valid() {
		return "", &Error{Kind: KindInvalidRequest, Op: op, Message: "coordinate out of range"}
	}

	params := url.Values{}
	params.Set("latlng", formatLatLng(coord))

	var resp geocodeResponse
	if err := g.get(ctx, op, "/geocode/json", params, &resp); err != nil {
		return "", err
	}
	if perr := classifyStatus(op, resp.Status, resp.ErrorMessage); perr != nil {
		return "", perr
	}
	if len(resp.Results) == 0 || resp.Results[0].FormattedAddress == "" {
		return "", &Error{Kind: KindNoResult, Op: op, Message: "no address"}
	}

	return resp.Results[0].FormattedAddress, nil
}

// Route returns the first leg of the first route between origin and
// destination.
func (g *GoogleMaps) Route(ctx context.Context, origin, destination models.Coordinate, mode models.TravelMode) (models.RouteSummary, error) {
	const op = "route"

	if !origin.Valid() || !destination.Valid() {
		return models.RouteSummary{}, &Error{Kind: KindInvalidRequest, Op: op, Message: "endpoint out of range"}
	}
	if !mode.Valid() {
		return models.RouteSummary{}, &Error{Kind: KindInvalidRequest, Op: op, Message: fmt.Sprintf("unsupported mode %q", mode)}
	}

	params := url.Values{}
	params.Set("origin", formatLatLng(origin))
	params.Set("destination", formatLatLng(destination))
	params.Set("mode", string(mode))

	var resp directionsResponse
	if err := g.get(ctx, op, "/directions/json", params, &resp); err != nil {
		return models.RouteSummary{}, err
	}
	if perr := classifyStatus(op, resp.Status, resp.ErrorMessage); perr != nil {
		return models.RouteSummary{}, perr
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return models.RouteSummary{}, &Error{Kind: KindNoResult, Op: op, Message: "no route"}
	}

	route := resp.Routes[0]
	leg := route.Legs[0]
	return models.RouteSummary{
		DistanceText:    leg.Distance.Text,
		DurationText:    leg.Duration.Text,
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
		StartAddress:    leg.StartAddress,
		EndAddress:      leg.EndAddress,
		Path:            route.OverviewPolyline.Points,
	}, nil
}

// get performs one bounded GET against path and decodes the JSON body into out.
func (g *GoogleMaps) get(ctx context.Context, op, path string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params.Set("key", g.apiKey)
	reqURL := g.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &Error{Kind: KindInvalidRequest, Op: op, Message: "building request", Err: err}
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Dur("elapsed", time.Since(start)).Msg("provider request failed")
		return classifyTransport(op, err)
	}
	defer resp.Body.Close()

	log.Debug().Str("op", op).Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("provider request")

	if resp.StatusCode != http.StatusOK {
		return classifyHTTPStatus(op, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return classifyTransport(op, ctx.Err())
		}
		return &Error{Kind: KindDecode, Op: op, Message: "decoding response", Err: err}
	}

	return nil
}

func formatLatLng(c models.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
