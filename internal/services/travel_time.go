package services

import (
	"context"
	"errors"
	"log"
	"travel-time-estimator/internal/domain"
	"travel-time-estimator/internal/platform/obs"
	"travel-time-estimator/internal/ports"
)

// Estimator answers "how long would it take to drive there right now".
//
// Each estimate runs three remote calls in sequence: place text search,
// caller geolocation, then driving directions from the caller to the first
// place found. Any failure along the way yields no answer; errors are logged
// and never returned.
type Estimator struct {
	maps ports.MapsClient
}

func NewEstimator(client ports.MapsClient) (*Estimator, error) {
	if client == nil {
		return nil, errors.New("new estimator: maps client must be non-nil")
	}
	return &Estimator{maps: client}, nil
}

// Estimate returns the current driving time to the best match for
// destinationQuery, in seconds. ok is false when no estimate could be made.
func (e *Estimator) Estimate(ctx context.Context, destinationQuery string, includeTraffic bool) (seconds int, ok bool) {
	queryID := obs.QueryID(ctx)

	place, ok := e.searchPlace(ctx, destinationQuery)
	if !ok {
		return 0, false
	}

	user, err := e.maps.Geolocate(ctx)
	if err != nil {
		log.Printf("warn: query_id=%d geolocate failed: %v", queryID, err)
		return 0, false
	}

	log.Printf(
		"query_id=%d using %s as user location (accuracy=%.0fm, %.1fkm from %q)",
		queryID, user.Location, user.AccuracyMeters, user.Location.DistanceKm(place.Location), place.Name,
	)

	routes, err := e.maps.Directions(ctx, ports.DirectionsRequest{
		Origin:      user.Location,
		Destination: place.Location,
	})
	if err != nil {
		log.Printf("warn: query_id=%d directions failed: %v", queryID, err)
		return 0, false
	}

	if len(routes) == 0 {
		log.Printf("warn: query_id=%d unable to find a route to %q", queryID, place.Name)
		return 0, false
	}
	if len(routes) > 1 {
		log.Printf("warn: query_id=%d got %d possible routes, using first one", queryID, len(routes))
	}

	// A single-destination request should always yield one leg.
	// Anything else is treated as no answer rather than summed.
	route := routes[0]
	if len(route.Legs) != 1 {
		log.Printf("warn: query_id=%d expected 1 leg, got %d", queryID, len(route.Legs))
		return 0, false
	}

	seconds, ok = route.Legs[0].Duration(includeTraffic)
	if !ok {
		log.Printf("warn: query_id=%d route to %q has no traffic duration", queryID, place.Name)
		return 0, false
	}

	return seconds, true
}

func (e *Estimator) searchPlace(ctx context.Context, query string) (domain.Place, bool) {
	queryID := obs.QueryID(ctx)

	log.Printf("query_id=%d executing places search for %q", queryID, query)

	places, err := e.maps.SearchText(ctx, query)
	if err != nil {
		log.Printf("warn: query_id=%d places search failed: %v", queryID, err)
		return domain.Place{}, false
	}

	log.Printf("query_id=%d places search returned %d results", queryID, len(places))

	if len(places) == 0 {
		log.Printf("warn: query_id=%d unable to find any places matching %q", queryID, query)
		return domain.Place{}, false
	}

	return places[0], true
}
