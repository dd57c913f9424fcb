package service

import (
	"context"
	"testing"

	"location-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockListingCoordinateRepository is a mock implementation of the ListingCoordinateRepository interface
type MockListingCoordinateRepository struct {
	mock.Mock
}

func (m *MockListingCoordinateRepository) GetCoordinate(ctx context.Context, id int64) (*models.Coordinate, error) {
	args := m.Called(ctx, id)
	coord, _ := args.Get(0).(*models.Coordinate)
	return coord, args.Error(1)
}

// MockRouteProvider is a mock implementation of the RouteProvider interface
type MockRouteProvider struct {
	mock.Mock
}

func (m *MockRouteProvider) Route(ctx context.Context, origin, destination models.Coordinate, mode models.TravelMode) (models.RouteSummary, error) {
	args := m.Called(ctx, origin, destination, mode)
	return args.Get(0).(models.RouteSummary), args.Error(1)
}

func TestDirectionsService_GetDirections(t *testing.T) {
	origin := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	dest := &models.Coordinate{Latitude: 12.9352, Longitude: 77.6245}
	route := models.RouteSummary{
		DistanceText:    "5.8 km",
		DurationText:    "18 mins",
		DistanceMeters:  5800,
		DurationSeconds: 1080,
		StartAddress:    "MG Road, Bengaluru",
		EndAddress:      "Koramangala, Bengaluru",
		Path:            "a~l~Fjk~uOwHJy@P",
	}

	tests := []struct {
		name        string
		origin      models.Coordinate
		mode        models.TravelMode
		setup       func(r *MockListingCoordinateRepository, p *MockRouteProvider)
		expected    models.RouteSummary
		expectedErr error
	}{
		{
			name:   "empty mode defaults to driving",
			origin: origin,
			setup: func(r *MockListingCoordinateRepository, p *MockRouteProvider) {
				r.On("GetCoordinate", mock.Anything, int64(1)).Return(dest, nil)
				p.On("Route", mock.Anything, origin, *dest, models.TravelModeDriving).Return(route, nil)
			},
			expected: route,
		},
		{
			name:   "walking",
			origin: origin,
			mode:   models.TravelModeWalking,
			setup: func(r *MockListingCoordinateRepository, p *MockRouteProvider) {
				r.On("GetCoordinate", mock.Anything, int64(1)).Return(dest, nil)
				p.On("Route", mock.Anything, origin, *dest, models.TravelModeWalking).Return(route, nil)
			},
			expected: route,
		},
		{
			name:        "unknown mode",
			origin:      origin,
			mode:        models.TravelMode("teleport"),
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "invalid origin",
			origin:      models.Coordinate{Latitude: 100, Longitude: 0},
			expectedErr: ErrInvalidInput,
		},
		{
			name:   "listing not found",
			origin: origin,
			setup: func(r *MockListingCoordinateRepository, p *MockRouteProvider) {
				r.On("GetCoordinate", mock.Anything, int64(1)).Return(nil, models.ErrListingNotFound)
			},
			expectedErr: ErrRecordNotFound,
		},
		{
			name:   "listing without coordinate",
			origin: origin,
			setup: func(r *MockListingCoordinateRepository, p *MockRouteProvider) {
				r.On("GetCoordinate", mock.Anything, int64(1)).Return(nil, nil)
			},
			expectedErr: ErrMissingCoordinate,
		},
		{
			name:   "store read failure",
			origin: origin,
			setup: func(r *MockListingCoordinateRepository, p *MockRouteProvider) {
				r.On("GetCoordinate", mock.Anything, int64(1)).Return(nil, assert.AnError)
			},
			expectedErr: ErrStoreReadFailed,
		},
		{
			name:   "provider failure",
			origin: origin,
			setup: func(r *MockListingCoordinateRepository, p *MockRouteProvider) {
				r.On("GetCoordinate", mock.Anything, int64(1)).Return(dest, nil)
				p.On("Route", mock.Anything, origin, *dest, models.TravelModeDriving).Return(models.RouteSummary{}, assert.AnError)
			},
			expectedErr: ErrResolutionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockListingCoordinateRepository)
			router := new(MockRouteProvider)
			if tt.setup != nil {
				tt.setup(repo, router)
			}
			svc := NewDirectionsService(repo, router)

			result, err := svc.GetDirections(context.Background(), tt.origin, 1, tt.mode)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			repo.AssertExpectations(t)
			router.AssertExpectations(t)
		})
	}
}
