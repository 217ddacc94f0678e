package googlemaps

import (
	"context"
	"fmt"
	"travel-time-estimator/internal/domain"
	"travel-time-estimator/internal/platform/obs"

	"googlemaps.github.io/maps"
)

// SearchText runs a Places text search and returns results in API order.
func (g *GoogleMapsProvider) SearchText(ctx context.Context, query string) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "maps.TextSearch")(&err)

	resp, err := g.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Language: g.language,
		Region:   g.region,
	})
	if err != nil {
		return nil, fmt.Errorf("text search %q: %w", query, err)
	}

	places := make([]domain.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, domain.Place{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			FormattedAddress: r.FormattedAddress,
			Location:         fromLatLng(r.Geometry.Location),
		})
	}

	return places, nil
}

func fromLatLng(ll maps.LatLng) domain.Coordinates {
	return domain.Coordinates{Lat: ll.Lat, Lng: ll.Lng}
}
