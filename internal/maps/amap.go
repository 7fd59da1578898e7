// README: Amap web-service client for place search and address geocoding.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultAmapBaseURL = "https://restapi.amap.com"

// ErrMissingKey is returned when the Amap web-service key is not configured.
var ErrMissingKey = errors.New("maps: missing amap web key")

// Coordinate is a WGS-ish latitude/longitude pair. The zero value marks
// "unresolved" throughout the itinerary pipeline; no real itinerary location
// sits at (0,0).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the coordinate is the unresolved sentinel.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// GeocodeResult is an address-geocoding hit with its locality context.
type GeocodeResult struct {
	Coordinate
	FormattedAddress string `json:"formatted_address"`
	Province         string `json:"province"`
	City             string `json:"city"`
}

// AmapClient issues keyword place searches and address geocoding lookups
// with client-side rate limiting.
type AmapClient struct {
	key     string
	hc      *http.Client
	rl      *rate.Limiter
	baseURL string
}

// NewAmapClient creates a client for the given web-service key. rps bounds
// outbound calls; Amap's free tier throttles hard, so keep it low.
func NewAmapClient(key string, rps int) (*AmapClient, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	if rps <= 0 {
		rps = 3
	}
	return &AmapClient{
		key:     key,
		hc:      &http.Client{Timeout: 10 * time.Second},
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
		baseURL: defaultAmapBaseURL,
	}, nil
}

type placeSearchResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	POIs   []struct {
		Location string `json:"location"`
	} `json:"pois"`
}

type geocodeResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Geocodes []struct {
		Location         string `json:"location"`
		FormattedAddress string `json:"formatted_address"`
		Province         string `json:"province"`
		City             string `json:"city"`
	} `json:"geocodes"`
}

// SearchPlace runs a keyword POI search, optionally scoped to a city, and
// returns the first hit. A nil result with nil error means "no match".
func (c *AmapClient) SearchPlace(ctx context.Context, keywords, city string) (*Coordinate, error) {
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("keywords", keywords)
	if city != "" {
		q.Set("city", city)
	}

	var out placeSearchResponse
	if err := c.get(ctx, "/v3/place/text", q, &out); err != nil {
		return nil, err
	}
	if out.Status != "1" || len(out.POIs) == 0 {
		return nil, nil
	}
	coord, err := parseLocation(out.POIs[0].Location)
	if err != nil {
		return nil, err
	}
	return coord, nil
}

// Geocode resolves a street address (or any combined location text) and
// returns the first hit with its locality fields.
func (c *AmapClient) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("address", address)

	var out geocodeResponse
	if err := c.get(ctx, "/v3/geocode/geo", q, &out); err != nil {
		return nil, err
	}
	if out.Status != "1" || len(out.Geocodes) == 0 {
		return nil, nil
	}
	g := out.Geocodes[0]
	coord, err := parseLocation(g.Location)
	if err != nil {
		return nil, err
	}
	return &GeocodeResult{
		Coordinate:       *coord,
		FormattedAddress: g.FormattedAddress,
		Province:         g.Province,
		City:             g.City,
	}, nil
}

func (c *AmapClient) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amap: bad status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// parseLocation decodes Amap's "lng,lat" wire order into a Coordinate.
func parseLocation(loc string) (*Coordinate, error) {
	parts := strings.SplitN(loc, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("amap: malformed location %q", loc)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("amap: malformed longitude in %q", loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("amap: malformed latitude in %q", loc)
	}
	return &Coordinate{Lat: lat, Lng: lng}, nil
}
