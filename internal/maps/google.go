// README: Google Geocoding fallback for destinations outside Amap coverage.
package maps

import (
	"context"
	"fmt"

	gmaps "googlemaps.github.io/maps"
)

// GoogleGeocoder resolves queries Amap cannot, mainly overseas destinations.
// Amap's data stops at the mainland border, so itineraries for Tokyo or
// Paris resolve through this tier instead.
type GoogleGeocoder struct {
	client *gmaps.Client
}

// NewGoogleGeocoder creates a geocoder with the given API key.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps: create google client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Geocode returns the first result's coordinate, or nil when nothing matched.
func (g *GoogleGeocoder) Geocode(ctx context.Context, query string) (*Coordinate, error) {
	results, err := g.client.Geocode(ctx, &gmaps.GeocodingRequest{
		Address:  query,
		Language: "zh-CN",
	})
	if err != nil {
		return nil, fmt.Errorf("google geocode: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	loc := results[0].Geometry.Location
	return &Coordinate{Lat: loc.Lat, Lng: loc.Lng}, nil
}
