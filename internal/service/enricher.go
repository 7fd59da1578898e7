// README: Enrichment orchestrator; classifies and geocodes every itinerary item.
package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"voyago/internal/maps"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/poi"
)

// Classifier decides whether a named itinerary item is a mappable place.
type Classifier interface {
	Classify(ctx context.Context, name string, category poi.Category) bool
}

// Resolver turns a place name into a coordinate, or nil when unresolved.
type Resolver interface {
	ResolvePOI(ctx context.Context, name, city string) *maps.Coordinate
	ResolveAddress(ctx context.Context, name, address string) *maps.Coordinate
}

// Enricher walks a generated itinerary and fills in real coordinates.
// Processing is sequential: one item at a time, paced by a token bucket, so
// upstream rate limits hold. A failed item keeps the (0,0) sentinel; the
// rest of the itinerary proceeds unaffected, and enrichment as a whole
// never fails.
type Enricher struct {
	classifier Classifier
	resolver   Resolver
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewEnricher creates an Enricher paced at lookupsPerSecond.
func NewEnricher(classifier Classifier, resolver Resolver, lookupsPerSecond float64, log zerolog.Logger) *Enricher {
	if lookupsPerSecond <= 0 {
		lookupsPerSecond = 10
	}
	return &Enricher{
		classifier: classifier,
		resolver:   resolver,
		limiter:    rate.NewLimiter(rate.Limit(lookupsPerSecond), 1),
		log:        log,
	}
}

// Enrich mutates the itinerary's coordinate fields in place and returns the
// same structure for convenience. Names, addresses, and costs are never
// touched. Every item ends with either both coordinates resolved or both at
// the zero sentinel.
func (e *Enricher) Enrich(ctx context.Context, plan *itinerary.Itinerary) *itinerary.Itinerary {
	if plan == nil {
		return nil
	}
	for di := range plan.Days {
		day := &plan.Days[di]

		for i := range day.Activities {
			e.enrichActivity(ctx, day, &day.Activities[i])
		}
		if day.Hotel != nil && day.Hotel.Name != "" {
			e.enrichHotel(ctx, day, day.Hotel)
		}
		for i := range day.Meals {
			e.enrichMeal(ctx, day, &day.Meals[i])
		}
	}
	return plan
}

// enrichActivity: city-scoped place search first, then a "city name" geocode
// as the fallback.
func (e *Enricher) enrichActivity(ctx context.Context, day *itinerary.Day, act *itinerary.Activity) {
	if act.Name == "" {
		return
	}
	e.pace(ctx)
	if !e.classifier.Classify(ctx, act.Name, poi.CategoryActivity) {
		e.log.Debug().Str("name", act.Name).Msg("skipping non-POI activity")
		act.Lat, act.Lng = 0, 0
		return
	}

	coord := e.resolver.ResolvePOI(ctx, act.Name, day.City)
	if coord == nil && day.City != "" {
		coord = e.resolver.ResolveAddress(ctx, day.City+" "+act.Name, "")
	}
	setCoordinate(&act.Lat, &act.Lng, coord)
	if coord == nil {
		e.log.Warn().Str("name", act.Name).Msg("activity unresolved, keeping sentinel")
	}
}

// enrichHotel: hotels resolve reliably by composite address text, so they go
// straight to address geocoding with "city name address".
func (e *Enricher) enrichHotel(ctx context.Context, day *itinerary.Day, hotel *itinerary.Hotel) {
	e.pace(ctx)
	if !e.classifier.Classify(ctx, hotel.Name, poi.CategoryHotel) {
		e.log.Debug().Str("name", hotel.Name).Msg("skipping non-POI hotel")
		hotel.Lat, hotel.Lng = 0, 0
		return
	}

	query := joinQuery(day.City, hotel.Name, hotel.Address)
	coord := e.resolver.ResolveAddress(ctx, query, "")
	setCoordinate(&hotel.Lat, &hotel.Lng, coord)
	if coord == nil {
		e.log.Warn().Str("name", hotel.Name).Msg("hotel unresolved, keeping sentinel")
	}
}

// enrichMeal: place search over the composite query first, geocode fallback.
func (e *Enricher) enrichMeal(ctx context.Context, day *itinerary.Day, meal *itinerary.Meal) {
	if meal.Name == "" {
		return
	}
	e.pace(ctx)
	if !e.classifier.Classify(ctx, meal.Name, poi.CategoryMeal) {
		e.log.Debug().Str("name", meal.Name).Msg("skipping non-POI meal")
		meal.Lat, meal.Lng = 0, 0
		return
	}

	query := joinQuery(day.City, meal.Name, meal.Address)
	coord := e.resolver.ResolvePOI(ctx, query, day.City)
	if coord == nil {
		coord = e.resolver.ResolveAddress(ctx, query, "")
	}
	setCoordinate(&meal.Lat, &meal.Lng, coord)
	if coord == nil {
		e.log.Warn().Str("name", meal.Name).Msg("meal unresolved, keeping sentinel")
	}
}

// pace blocks until the limiter grants the next lookup slot. Context
// cancellation just stops the wait; the caller then degrades normally.
func (e *Enricher) pace(ctx context.Context) {
	_ = e.limiter.Wait(ctx)
}

// setCoordinate writes both fields together, preserving the both-or-neither
// sentinel invariant.
func setCoordinate(lat, lng *float64, coord *maps.Coordinate) {
	if coord == nil || coord.IsZero() {
		*lat, *lng = 0, 0
		return
	}
	*lat, *lng = coord.Lat, coord.Lng
}

func joinQuery(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
