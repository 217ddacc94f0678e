package domain

// Represents one continuous segment of a route between two waypoints.
// Both durations are whole seconds. DurationInTrafficSeconds is only
// meaningful when HasTraffic is set; the API omits it when it has no
// traffic data for the route.
type Leg struct {
	DistanceMeters           int
	DurationSeconds          int
	DurationInTrafficSeconds int
	HasTraffic               bool
}

// Represents a candidate route returned by a directions lookup.
// A single-destination request is expected to produce exactly one leg.
type Route struct {
	Summary string
	Legs    []Leg
}

// Return the leg duration, traffic-adjusted or not.
// ok is false when traffic was requested but the leg carries no traffic data.
func (l Leg) Duration(includeTraffic bool) (seconds int, ok bool) {
	if includeTraffic {
		if !l.HasTraffic {
			return 0, false
		}
		return l.DurationInTrafficSeconds, true
	}
	return l.DurationSeconds, true
}
