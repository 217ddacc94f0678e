package ports

import (
	"context"
	"travel-time-estimator/internal/domain"
)

// Contract for locating the caller from network signals.
type Geolocator interface {
	Geolocate(ctx context.Context) (domain.UserLocation, error)
}
