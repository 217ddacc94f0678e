package domain

import (
	"math"
	"testing"
)

func TestLegDuration(t *testing.T) {
	leg := Leg{DurationSeconds: 1500, DurationInTrafficSeconds: 1800, HasTraffic: true}

	if got, ok := leg.Duration(true); !ok || got != 1800 {
		t.Fatalf("Duration(true) = (%d, %v), want (1800, true)", got, ok)
	}
	if got, ok := leg.Duration(false); !ok || got != 1500 {
		t.Fatalf("Duration(false) = (%d, %v), want (1500, true)", got, ok)
	}
}

func TestLegDurationWithoutTrafficData(t *testing.T) {
	leg := Leg{DurationSeconds: 1500}

	if got, ok := leg.Duration(true); ok {
		t.Fatalf("Duration(true) = (%d, true), want no value", got)
	}
	if got, ok := leg.Duration(false); !ok || got != 1500 {
		t.Fatalf("Duration(false) = (%d, %v), want (1500, true)", got, ok)
	}
}

func TestCoordinatesString(t *testing.T) {
	c := Coordinates{Lat: 40.7527, Lng: -73.9772}
	if got := c.String(); got != "40.7527,-73.9772" {
		t.Fatalf("String() = %q, want %q", got, "40.7527,-73.9772")
	}
}

func TestCoordinatesDistanceKm(t *testing.T) {
	a := Coordinates{Lat: 0, Lng: 0}

	if d := a.DistanceKm(a); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}

	// One degree of longitude on the equator is roughly 111 km.
	d := a.DistanceKm(Coordinates{Lat: 0, Lng: 1})
	if math.Abs(d-111.2) > 1 {
		t.Fatalf("distance = %f, want ~111.2", d)
	}
}
