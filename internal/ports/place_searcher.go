package ports

import (
	"context"
	"travel-time-estimator/internal/domain"
)

// Contract for resolving free text to candidate places.
type PlaceSearcher interface {
	// Return places matching query, best match first. No match is an empty slice, not an error.
	SearchText(ctx context.Context, query string) ([]domain.Place, error)
}
