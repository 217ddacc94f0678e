package ports

import (
	"context"
	"time"
	"travel-time-estimator/internal/domain"
)

// Driving directions request between two coordinates.
// A zero DepartAt means "now".
type DirectionsRequest struct {
	Origin      domain.Coordinates
	Destination domain.Coordinates
	DepartAt    time.Time
}

// Contract for computing driving routes with a best-guess traffic model.
type DirectionsProvider interface {
	// Return candidate routes, preferred first. No route is an empty slice, not an error.
	Directions(ctx context.Context, req DirectionsRequest) ([]domain.Route, error)
}
