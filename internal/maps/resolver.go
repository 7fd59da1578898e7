// README: Tiered geocode resolver; Amap first, optional Google fallback, cached.
package maps

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Cache stores resolved coordinates keyed by query text. Implemented by the
// Redis adapter in internal/infra; nil disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// QueryFilters holds the query-sanitising word lists. Like the classifier
// markers, these are tuning data.
type QueryFilters struct {
	// SkipPhrases reject a query outright: no network call is made when
	// any of them appears in the text.
	SkipPhrases []string
	// StripSuffixes are non-essential trailing words (show, tour, visit)
	// removed before a place search, provided something remains.
	StripSuffixes []string
	// AddressSkipPhrases is the reject list for address geocoding; it is
	// a subset of SkipPhrases in the default configuration.
	AddressSkipPhrases []string
}

// DefaultQueryFilters returns the production reject and strip lists.
func DefaultQueryFilters() QueryFilters {
	return QueryFilters{
		SkipPhrases:        []string{"准备返程", "返程", "离开", "收拾", "准备", "演出", "演出观看"},
		StripSuffixes:      []string{"演出", "观看", "参观", "游览", "夜游"},
		AddressSkipPhrases: []string{"准备返程", "返程", "离开", "收拾", "准备"},
	}
}

// Resolver turns classified POI names into coordinates. Every lookup error is
// absorbed here and logged: callers only ever see "coordinate or nothing",
// and a failed item degrades to the zero sentinel upstream.
type Resolver struct {
	amap    *AmapClient
	google  *GoogleGeocoder
	cache   Cache
	filters QueryFilters
	ttl     time.Duration
	log     zerolog.Logger
}

// NewResolver wires the lookup tiers. google and cache may be nil.
func NewResolver(amap *AmapClient, google *GoogleGeocoder, cache Cache, ttl time.Duration, log zerolog.Logger) *Resolver {
	return &Resolver{
		amap:    amap,
		google:  google,
		cache:   cache,
		filters: DefaultQueryFilters(),
		ttl:     ttl,
		log:     log,
	}
}

// ResolvePOI looks a named venue up via keyword place search, scoped to city
// when given. Returns nil when the query is rejected or nothing matched.
func (r *Resolver) ResolvePOI(ctx context.Context, name, city string) *Coordinate {
	if name == "" {
		return nil
	}
	if containsAny(name, r.filters.SkipPhrases) {
		r.log.Debug().Str("query", name).Msg("skipping non-place query")
		return nil
	}

	keywords := r.stripSuffixes(name)

	cacheKey := "poi:" + city + ":" + keywords
	if coord := r.cached(ctx, cacheKey); coord != nil {
		return coord
	}

	coord, err := r.amap.SearchPlace(ctx, keywords, city)
	if err != nil {
		r.log.Warn().Err(err).Str("query", keywords).Msg("place search failed")
		coord = nil
	}
	if coord == nil && r.google != nil {
		coord = r.googleFallback(ctx, strings.TrimSpace(city+" "+keywords))
	}
	if coord != nil {
		r.store(ctx, cacheKey, coord)
		r.log.Info().Str("query", keywords).Float64("lat", coord.Lat).Float64("lng", coord.Lng).Msg("place search resolved")
	}
	return coord
}

// ResolveAddress geocodes combined name/address text. Returns nil when the
// query is rejected or nothing matched.
func (r *Resolver) ResolveAddress(ctx context.Context, name, address string) *Coordinate {
	query := address
	if query == "" {
		query = name
	}
	if query == "" {
		return nil
	}
	if containsAny(query, r.filters.AddressSkipPhrases) {
		r.log.Debug().Str("query", query).Msg("skipping non-place query")
		return nil
	}

	cacheKey := "geo:" + query
	if coord := r.cached(ctx, cacheKey); coord != nil {
		return coord
	}

	var coord *Coordinate
	result, err := r.amap.Geocode(ctx, query)
	if err != nil {
		r.log.Warn().Err(err).Str("query", query).Msg("geocoding failed")
	} else if result != nil {
		coord = &result.Coordinate
	}
	if coord == nil && r.google != nil {
		coord = r.googleFallback(ctx, query)
	}
	if coord != nil {
		r.store(ctx, cacheKey, coord)
		r.log.Info().Str("query", query).Float64("lat", coord.Lat).Float64("lng", coord.Lng).Msg("geocoding resolved")
	}
	return coord
}

func (r *Resolver) googleFallback(ctx context.Context, query string) *Coordinate {
	coord, err := r.google.Geocode(ctx, query)
	if err != nil {
		r.log.Warn().Err(err).Str("query", query).Msg("google fallback failed")
		return nil
	}
	return coord
}

func (r *Resolver) cached(ctx context.Context, key string) *Coordinate {
	if r.cache == nil {
		return nil
	}
	var coord Coordinate
	ok, err := r.cache.Get(ctx, key, &coord)
	if err != nil || !ok || coord.IsZero() {
		return nil
	}
	return &coord
}

func (r *Resolver) store(ctx context.Context, key string, coord *Coordinate) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, key, coord, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("geo cache write failed")
	}
}

// stripSuffixes removes non-essential trailing words when doing so leaves a
// non-empty remainder.
func (r *Resolver) stripSuffixes(name string) string {
	cleaned := name
	for _, suffix := range r.filters.StripSuffixes {
		if strings.Contains(cleaned, suffix) && len(cleaned) > len(suffix) {
			cleaned = strings.TrimSpace(strings.Replace(cleaned, suffix, "", 1))
		}
	}
	if cleaned == "" {
		return name
	}
	return cleaned
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
