package ports

import "context"

// Contract for estimating the current driving time to a free-text destination.
type TravelTimeEstimator interface {
	// Return travel time in seconds; ok is false when no estimate could be made.
	Estimate(ctx context.Context, destinationQuery string, includeTraffic bool) (seconds int, ok bool)
}
