package domain

import (
	"strconv"

	geo "github.com/kellydunn/golang-geo"
)

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as "lat,lng" for external API compatibility.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Great-circle distance to other in kilometres.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	return geo.NewPoint(c.Lat, c.Lng).GreatCircleDistance(geo.NewPoint(other.Lat, other.Lng))
}
