package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"travel-time-estimator/internal/domain"
	"travel-time-estimator/internal/platform/obs"

	"googlemaps.github.io/maps"
)

// Geolocate estimates the caller position from its IP address only.
// No cell tower or WiFi data is sent.
func (g *GoogleMapsProvider) Geolocate(ctx context.Context) (_ domain.UserLocation, err error) {
	defer obs.Time(ctx, "maps.Geolocate")(&err)

	res, err := g.client.Geolocate(ctx, &maps.GeolocationRequest{ConsiderIP: true})
	if err != nil {
		return domain.UserLocation{}, fmt.Errorf("geolocate: %w", err)
	}
	if res == nil {
		return domain.UserLocation{}, errors.New("geolocate: empty response")
	}

	return domain.UserLocation{
		Location:       fromLatLng(res.Location),
		AccuracyMeters: res.Accuracy,
	}, nil
}
