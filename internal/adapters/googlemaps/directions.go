package googlemaps

import (
	"context"
	"fmt"
	"strconv"
	"travel-time-estimator/internal/domain"
	"travel-time-estimator/internal/platform/obs"
	"travel-time-estimator/internal/ports"

	"googlemaps.github.io/maps"
)

// Directions requests driving routes using the best-guess traffic model.
func (g *GoogleMapsProvider) Directions(
	ctx context.Context,
	req ports.DirectionsRequest,
) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "maps.Directions")(&err)

	// The API needs a departure time to report duration_in_traffic.
	departure := "now"
	if !req.DepartAt.IsZero() {
		departure = strconv.FormatInt(req.DepartAt.Unix(), 10)
	}

	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:        req.Origin.String(),
		Destination:   req.Destination.String(),
		Mode:          maps.TravelModeDriving,
		TrafficModel:  maps.TrafficModelBestGuess,
		DepartureTime: departure,
		Language:      g.language,
		Region:        g.region,
	})
	if err != nil {
		return nil, fmt.Errorf("directions %s -> %s: %w", req.Origin, req.Destination, err)
	}

	out := make([]domain.Route, 0, len(routes))
	for _, r := range routes {
		legs := make([]domain.Leg, 0, len(r.Legs))
		for _, l := range r.Legs {
			// A null leg still counts towards the leg total.
			if l == nil {
				legs = append(legs, domain.Leg{})
				continue
			}
			legs = append(legs, domain.Leg{
				DistanceMeters:           l.Distance.Meters,
				DurationSeconds:          int(l.Duration.Seconds()),
				DurationInTrafficSeconds: int(l.DurationInTraffic.Seconds()),
				HasTraffic:               l.DurationInTraffic > 0,
			})
		}
		out = append(out, domain.Route{Summary: r.Summary, Legs: legs})
	}

	return out, nil
}
