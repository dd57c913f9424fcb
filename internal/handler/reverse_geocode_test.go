package handler

import (
	"context"
	"net/http"
	"testing"

	"location-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReverseGeoCodeService is a mock implementation of the ReverseGeoCodeService interface
type MockReverseGeoCodeService struct {
	mock.Mock
}

func (m *MockReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	args := m.Called(ctx, lat, lon)
	return args.String(0), args.Error(1)
}

func TestReverseGeocodeHandler_ReverseGeocode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		callsService   bool
		lat            float64
		lon            float64
		mockAddress    string
		mockError      error
		expectedStatus int
		expectedBody   any
	}{
		{
			name:           "missing longitude",
			body:           `{"latitude":12.9716}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "invalid request parameters"},
		},
		{
			name:           "latitude out of range",
			body:           `{"latitude":90.5,"longitude":77.5946}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "invalid request parameters"},
		},
		{
			name:           "longitude out of range",
			body:           `{"latitude":12.9716,"longitude":-181}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "invalid request parameters"},
		},
		{
			name:           "successful lookup",
			body:           `{"latitude":12.9716,"longitude":77.5946}`,
			callsService:   true,
			lat:            12.9716,
			lon:            77.5946,
			mockAddress:    "MG Road, Bengaluru, Karnataka 560001, India",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"formattedAddress": "MG Road, Bengaluru, Karnataka 560001, India"},
		},
		{
			name:           "zero coordinate is accepted",
			body:           `{"latitude":0,"longitude":0}`,
			callsService:   true,
			mockAddress:    "Atlantic Ocean",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"formattedAddress": "Atlantic Ocean"},
		},
		{
			name:           "provider failure",
			body:           `{"latitude":12.9716,"longitude":77.5946}`,
			callsService:   true,
			lat:            12.9716,
			lon:            77.5946,
			mockError:      service.ErrResolutionFailed,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "Unable to reverse geocode coordinates."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReverseGeoCodeService)
			handler := NewReverseGeocodeHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("ReverseGeocode", mock.Anything, tt.lat, tt.lon).Return(tt.mockAddress, tt.mockError)
			}

			w, body := performJSON(t, handler.ReverseGeocode, http.MethodPost, "/reverse-geocode", tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, body)
			mockSvc.AssertExpectations(t)
		})
	}
}
