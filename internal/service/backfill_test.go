package service

import (
	"context"
	"testing"

	"location-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockListingBackfillRepository is a mock implementation of the ListingBackfillRepository interface
type MockListingBackfillRepository struct {
	mock.Mock
}

func (m *MockListingBackfillRepository) ListMissingCoordinates(ctx context.Context, limit int) ([]models.Listing, error) {
	args := m.Called(ctx, limit)
	listings, _ := args.Get(0).([]models.Listing)
	return listings, args.Error(1)
}

func (m *MockListingBackfillRepository) UpdateCoordinate(ctx context.Context, id int64, coord models.Coordinate) error {
	args := m.Called(ctx, id, coord)
	return args.Error(0)
}

// MockAddressResolver is a mock implementation of the AddressResolver interface
type MockAddressResolver struct {
	mock.Mock
}

func (m *MockAddressResolver) ResolveAddress(ctx context.Context, address string) (*GeocodeResult, error) {
	args := m.Called(ctx, address)
	result, _ := args.Get(0).(*GeocodeResult)
	return result, args.Error(1)
}

func TestBackfillService_Run(t *testing.T) {
	repo := new(MockListingBackfillRepository)
	resolver := new(MockAddressResolver)

	listings := []models.Listing{
		{ID: 1, Address: "80 Feet Road, Koramangala", City: "Bengaluru"},
		{ID: 2, Address: "12th Main, Indiranagar, Bengaluru", City: "Bengaluru"},
		{ID: 3, Address: "Nowhere Lane", City: "Bengaluru"},
	}
	koramangala := models.Coordinate{Latitude: 12.9352, Longitude: 77.6245}
	indiranagar := models.Coordinate{Latitude: 12.9784, Longitude: 77.6408}

	resolver.On("ResolveAddress", mock.Anything, "80 Feet Road, Koramangala, Bengaluru").
		Return(&GeocodeResult{Coordinate: koramangala}, nil)
	resolver.On("ResolveAddress", mock.Anything, "12th Main, Indiranagar, Bengaluru").
		Return(&GeocodeResult{Coordinate: indiranagar, FromCache: true}, nil)
	resolver.On("ResolveAddress", mock.Anything, "Nowhere Lane, Bengaluru").
		Return(nil, ErrResolutionFailed)
	repo.On("UpdateCoordinate", mock.Anything, int64(1), koramangala).Return(nil)
	repo.On("UpdateCoordinate", mock.Anything, int64(2), indiranagar).Return(nil)

	svc := NewBackfillService(repo, resolver)

	ticks := 0
	report, err := svc.Run(context.Background(), listings, func() { ticks++ })
	require.NoError(t, err)

	assert.Equal(t, BackfillReport{Candidates: 3, Updated: 2, FromCache: 1, Failed: 1}, report)
	assert.Equal(t, 3, ticks)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdateCoordinate", mock.Anything, int64(3), mock.Anything)
	resolver.AssertExpectations(t)
}

func TestBackfillService_Run_StopsWhenContextEnds(t *testing.T) {
	svc := NewBackfillService(new(MockListingBackfillRepository), new(MockAddressResolver))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := svc.Run(ctx, []models.Listing{{ID: 1, Address: "MG Road"}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, BackfillReport{Candidates: 1}, report)
}

func TestBackfillService_Candidates(t *testing.T) {
	t.Run("invalid limit", func(t *testing.T) {
		svc := NewBackfillService(new(MockListingBackfillRepository), new(MockAddressResolver))
		_, err := svc.Candidates(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockListingBackfillRepository)
		repo.On("ListMissingCoordinates", mock.Anything, 50).Return(nil, assert.AnError)
		svc := NewBackfillService(repo, new(MockAddressResolver))

		_, err := svc.Candidates(context.Background(), 50)
		assert.ErrorIs(t, err, ErrStoreReadFailed)
	})
}
