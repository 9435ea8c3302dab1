package geocode

import "context"

// Place holds the address fields returned by reverse geocoding.
type Place struct {
	Address    string
	City       string
	Region     string
	Country    string
	PostalCode string
}

// Geocoder resolves coordinates to an address. Only the location
// onboarding flow talks to it; marketplace operations never do.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*Place, error)
}
