package googlemaps

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"googlemaps.github.io/maps"
)

// Options tunes how the provider talks to Google Maps Platform.
// Zero values fall back to the library defaults.
type Options struct {
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout.
	HTTPClient *http.Client
	// BaseURL redirects every call, mainly for tests.
	BaseURL  string
	Language string
	Region   string
}

// GoogleMapsProvider implements ports.MapsClient on top of the official
// Google Maps Services client.
//
// It covers:
//   - Places text search
//   - IP based geolocation
//   - Driving directions with the best-guess traffic model
//
// Calls are never retried. The provider is safe for concurrent use.
type GoogleMapsProvider struct {
	client   *maps.Client
	language string
	region   string
}

func NewGoogleMapsProvider(apiKey string, opts Options) (*GoogleMapsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	session := opts.HTTPClient
	if session == nil {
		session = &http.Client{Timeout: opts.HTTPTimeout}
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(session),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(opts.BaseURL))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create google maps client: %w", err)
	}

	provider := &GoogleMapsProvider{
		client:   client,
		language: opts.Language,
		region:   opts.Region,
	}

	return provider, nil
}
