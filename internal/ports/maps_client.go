package ports

// Port: the three mapping operations the estimator composes.
type MapsClient interface {
	PlaceSearcher
	Geolocator
	DirectionsProvider
}
