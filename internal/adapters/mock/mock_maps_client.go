package mock

import (
	"context"
	"errors"
	"travel-time-estimator/internal/domain"
	"travel-time-estimator/internal/ports"
)

var errNoFixture = errors.New("mock maps client: no fixture")

// MockMapsClient serves canned answers and records how often each call ran.
type MockMapsClient struct {
	Places   map[string][]domain.Place
	Location *domain.UserLocation
	Routes   []domain.Route

	SearchErr     error
	GeolocateErr  error
	DirectionsErr error

	SearchCalls     int
	GeolocateCalls  int
	DirectionsCalls int
	LastDirections  ports.DirectionsRequest
}

func (m *MockMapsClient) SearchText(ctx context.Context, query string) ([]domain.Place, error) {
	m.SearchCalls++
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.Places[query], nil
}

func (m *MockMapsClient) Geolocate(ctx context.Context) (domain.UserLocation, error) {
	m.GeolocateCalls++
	if m.GeolocateErr != nil {
		return domain.UserLocation{}, m.GeolocateErr
	}
	if m.Location == nil {
		return domain.UserLocation{}, errNoFixture
	}
	return *m.Location, nil
}

func (m *MockMapsClient) Directions(ctx context.Context, req ports.DirectionsRequest) ([]domain.Route, error) {
	m.DirectionsCalls++
	m.LastDirections = req
	if m.DirectionsErr != nil {
		return nil, m.DirectionsErr
	}
	return m.Routes, nil
}
