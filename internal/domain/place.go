package domain

// Represents a single place search result.
// Only Location is needed for routing; the rest is kept for logging.
type Place struct {
	PlaceID          string
	Name             string
	FormattedAddress string
	Location         Coordinates
}

// Approximate caller position derived from network signals (IP, WiFi).
type UserLocation struct {
	Location       Coordinates
	AccuracyMeters float64
}
