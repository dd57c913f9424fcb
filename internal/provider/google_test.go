package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"location-api/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *GoogleMaps {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGoogleMaps("test-key", WithBaseURL(srv.URL), WithTimeout(2*time.Second))
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestGoogleMaps_Geocode(t *testing.T) {
	tests := []struct {
		name          string
		address       string
		body          string
		statusCode    int
		expected      models.Coordinate
		expectedAddr  string
		expectErrKind Kind
		expectError   bool
	}{
		{
			name:    "first candidate wins",
			address: "Koramangala, Bengaluru",
			body: `{"status":"OK","results":[
				{"formatted_address":"Koramangala, Bengaluru, Karnataka, India","geometry":{"location":{"lat":12.9352,"lng":77.6245}}},
				{"formatted_address":"Koramangala Layout, Bengaluru","geometry":{"location":{"lat":12.93,"lng":77.62}}}]}`,
			expected:     models.Coordinate{Latitude: 12.9352, Longitude: 77.6245},
			expectedAddr: "Koramangala, Bengaluru, Karnataka, India",
		},
		{
			name:          "zero results is an error",
			address:       "nowhere at all",
			body:          `{"status":"ZERO_RESULTS","results":[]}`,
			expectError:   true,
			expectErrKind: KindNoResult,
		},
		{
			name:          "ok with no results is an error",
			address:       "nowhere at all",
			body:          `{"status":"OK","results":[]}`,
			expectError:   true,
			expectErrKind: KindNoResult,
		},
		{
			name:          "request denied",
			address:       "MG Road",
			body:          `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`,
			expectError:   true,
			expectErrKind: KindQuotaExceeded,
		},
		{
			name:          "over query limit",
			address:       "MG Road",
			body:          `{"status":"OVER_QUERY_LIMIT"}`,
			expectError:   true,
			expectErrKind: KindRateLimited,
		},
		{
			name:          "http error",
			address:       "MG Road",
			statusCode:    http.StatusServiceUnavailable,
			expectError:   true,
			expectErrKind: KindUpstream,
		},
		{
			name:          "ok without geometry",
			address:       "MG Road",
			body:          `{"status":"OK","results":[{"formatted_address":"Somewhere"}]}`,
			expectError:   true,
			expectErrKind: KindDecode,
		},
		{
			name:          "location missing lng",
			address:       "MG Road",
			body:          `{"status":"OK","results":[{"formatted_address":"Somewhere","geometry":{"location":{"lat":12.97}}}]}`,
			expectError:   true,
			expectErrKind: KindDecode,
		},
		{
			name:          "malformed body",
			address:       "MG Road",
			body:          `{"status":`,
			expectError:   true,
			expectErrKind: KindDecode,
		},
		{
			name:          "empty address never reaches the network",
			address:       "   ",
			expectError:   true,
			expectErrKind: KindInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "/geocode/json", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))
				if tt.statusCode != 0 {
					w.WriteHeader(tt.statusCode)
					return
				}
				respond(tt.body)(w, r)
			})

			coord, addr, err := client.Geocode(context.Background(), tt.address)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsKind(err, tt.expectErrKind), "got %v", err)
				assert.Equal(t, models.Coordinate{}, coord)
				assert.Empty(t, addr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, coord)
				assert.Equal(t, tt.expectedAddr, addr)
			}

			if tt.expectErrKind == KindInvalidRequest {
				assert.False(t, called)
			}
		})
	}
}

func TestGoogleMaps_Geocode_PassesRawAddress(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12th Main, HAL 2nd Stage", r.URL.Query().Get("address"))
		respond(`{"status":"OK","results":[{"formatted_address":"x","geometry":{"location":{"lat":1,"lng":2}}}]}`)(w, r)
	})

	_, _, err := client.Geocode(context.Background(), "12th Main, HAL 2nd Stage")
	require.NoError(t, err)
}

func TestGoogleMaps_Geocode_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	client := NewGoogleMaps("test-key", WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))

	coord, _, err := client.Geocode(context.Background(), "MG Road")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTimeout), "got %v", err)
	assert.Equal(t, models.Coordinate{}, coord)
}

func TestGoogleMaps_ReverseGeocode(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12.9716,77.5946", r.URL.Query().Get("latlng"))
		respond(`{"status":"OK","results":[{"formatted_address":"Bengaluru, Karnataka 560001, India"}]}`)(w, r)
	})

	addr, err := client.ReverseGeocode(context.Background(), models.Coordinate{Latitude: 12.9716, Longitude: 77.5946})
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru, Karnataka 560001, India", addr)

	t.Run("out of range", func(t *testing.T) {
		_, err := client.ReverseGeocode(context.Background(), models.Coordinate{Latitude: 91, Longitude: 0})
		assert.True(t, IsKind(err, KindInvalidRequest))
	})
}

func TestGoogleMaps_ReverseGeocode_NoResult(t *testing.T) {
	client := newTestServer(t, respond(`{"status":"ZERO_RESULTS","results":[]}`))

	addr, err := client.ReverseGeocode(context.Background(), models.Coordinate{Latitude: 0, Longitude: 0})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNoResult))
	assert.Empty(t, addr)
}

func TestGoogleMaps_Route(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/directions/json", r.URL.Path)
		assert.Equal(t, "12.9716,77.5946", q.Get("origin"))
		assert.Equal(t, "12.9352,77.6245", q.Get("destination"))
		assert.Equal(t, "walking", q.Get("mode"))
		respond(`{"status":"OK","routes":[{"overview_polyline":{"points":"a~l~Fjk~uOwHJy@P"},
			"legs":[{"distance":{"text":"5.2 km","value":5213},"duration":{"text":"1 hour 5 mins","value":3900},
			"start_address":"MG Road","end_address":"Koramangala"}]}]}`)(w, r)
	})

	got, err := client.Route(context.Background(),
		models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		models.Coordinate{Latitude: 12.9352, Longitude: 77.6245},
		models.TravelModeWalking)
	require.NoError(t, err)

	want := models.RouteSummary{
		DistanceText:    "5.2 km",
		DurationText:    "1 hour 5 mins",
		DistanceMeters:  5213,
		DurationSeconds: 3900,
		StartAddress:    "MG Road",
		EndAddress:      "Koramangala",
		Path:            "a~l~Fjk~uOwHJy@P",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Route() mismatch (-want +got):\n%s", diff)
	}
}

func TestGoogleMaps_Route_Failures(t *testing.T) {
	origin := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	dest := models.Coordinate{Latitude: 12.9352, Longitude: 77.6245}

	t.Run("no route", func(t *testing.T) {
		client := newTestServer(t, respond(`{"status":"ZERO_RESULTS","routes":[]}`))
		_, err := client.Route(context.Background(), origin, dest, models.TravelModeTransit)
		assert.True(t, IsKind(err, KindNoResult))
	})

	t.Run("route without legs", func(t *testing.T) {
		client := newTestServer(t, respond(`{"status":"OK","routes":[{"legs":[]}]}`))
		_, err := client.Route(context.Background(), origin, dest, models.TravelModeDriving)
		assert.True(t, IsKind(err, KindNoResult))
	})

	t.Run("invalid mode", func(t *testing.T) {
		client := newTestServer(t, respond(`{}`))
		_, err := client.Route(context.Background(), origin, dest, models.TravelMode("teleport"))
		assert.True(t, IsKind(err, KindInvalidRequest))
	})
}
