package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"voyago/internal/maps"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/poi"
)

// fakeClassifier marks names containing "真" as POIs.
type fakeClassifier struct {
	calls []string
}

func (f *fakeClassifier) Classify(_ context.Context, name string, _ poi.Category) bool {
	f.calls = append(f.calls, name)
	return strings.Contains(name, "真")
}

// fakeResolver always resolves to a fixed coordinate, recording queries.
type fakeResolver struct {
	coord       *maps.Coordinate
	poiQueries  []string
	poiCities   []string
	addrQueries []string
}

func (f *fakeResolver) ResolvePOI(_ context.Context, name, city string) *maps.Coordinate {
	f.poiQueries = append(f.poiQueries, name)
	f.poiCities = append(f.poiCities, city)
	return f.coord
}

func (f *fakeResolver) ResolveAddress(_ context.Context, name, _ string) *maps.Coordinate {
	f.addrQueries = append(f.addrQueries, name)
	return f.coord
}

func samplePlan() *itinerary.Itinerary {
	return &itinerary.Itinerary{
		Title:    "测试行程",
		Currency: "CNY",
		Days: []itinerary.Day{
			{
				Date: "第1天",
				City: "北京",
				Activities: []itinerary.Activity{
					{Name: "真故宫", CostEstimate: 60},
					{Name: "收拾行李", CostEstimate: 0},
				},
				Hotel: &itinerary.Hotel{Name: "真酒店", Address: "东长安街33号", PricePerNight: 900},
				Meals: []itinerary.Meal{
					{Name: "真烤鸭店", Address: "前门大街", PriceEstimate: 150},
					{Name: "随便吃点", PriceEstimate: 30},
				},
			},
		},
	}
}

func TestEnrichRoundTrip(t *testing.T) {
	resolver := &fakeResolver{coord: &maps.Coordinate{Lat: 1.0, Lng: 2.0}}
	e := NewEnricher(&fakeClassifier{}, resolver, 1000, zerolog.Nop())

	plan := samplePlan()
	got := e.Enrich(context.Background(), plan)
	if got != plan {
		t.Fatal("Enrich must return the same structure it mutates")
	}

	day := plan.Days[0]
	// classified-true items hold exactly (1.0, 2.0)
	if day.Activities[0].Lat != 1.0 || day.Activities[0].Lng != 2.0 {
		t.Errorf("POI activity: got (%v, %v)", day.Activities[0].Lat, day.Activities[0].Lng)
	}
	if day.Hotel.Lat != 1.0 || day.Hotel.Lng != 2.0 {
		t.Errorf("POI hotel: got (%v, %v)", day.Hotel.Lat, day.Hotel.Lng)
	}
	if day.Meals[0].Lat != 1.0 || day.Meals[0].Lng != 2.0 {
		t.Errorf("POI meal: got (%v, %v)", day.Meals[0].Lat, day.Meals[0].Lng)
	}
	// classified-false items hold exactly (0, 0)
	if day.Activities[1].Lat != 0 || day.Activities[1].Lng != 0 {
		t.Errorf("non-POI activity: got (%v, %v)", day.Activities[1].Lat, day.Activities[1].Lng)
	}
	if day.Meals[1].Lat != 0 || day.Meals[1].Lng != 0 {
		t.Errorf("non-POI meal: got (%v, %v)", day.Meals[1].Lat, day.Meals[1].Lng)
	}
}

func TestEnrichNeverMutatesNonCoordinateFields(t *testing.T) {
	resolver := &fakeResolver{coord: &maps.Coordinate{Lat: 39.92, Lng: 116.39}}
	e := NewEnricher(&fakeClassifier{}, resolver, 1000, zerolog.Nop())

	plan := samplePlan()
	e.Enrich(context.Background(), plan)

	day := plan.Days[0]
	if day.Activities[0].Name != "真故宫" || day.Activities[0].CostEstimate != 60 {
		t.Errorf("activity fields mutated: %+v", day.Activities[0])
	}
	if day.Hotel.Name != "真酒店" || day.Hotel.Address != "东长安街33号" || day.Hotel.PricePerNight != 900 {
		t.Errorf("hotel fields mutated: %+v", day.Hotel)
	}
	if day.Meals[0].Address != "前门大街" || day.Meals[0].PriceEstimate != 150 {
		t.Errorf("meal fields mutated: %+v", day.Meals[0])
	}
}

func TestEnrichActivityUsesCityScopeThenGeocodeFallback(t *testing.T) {
	// Resolver that misses on place search and hits on geocode.
	resolver := &missThenHitResolver{coord: &maps.Coordinate{Lat: 31.32, Lng: 120.62}}
	e := NewEnricher(&alwaysPOI{}, resolver, 1000, zerolog.Nop())

	plan := &itinerary.Itinerary{Days: []itinerary.Day{{
		City:       "苏州",
		Activities: []itinerary.Activity{{Name: "狮子林"}},
	}}}
	e.Enrich(context.Background(), plan)

	if len(resolver.poiCities) != 1 || resolver.poiCities[0] != "苏州" {
		t.Errorf("place search not city-scoped: %v", resolver.poiCities)
	}
	if len(resolver.addrQueries) != 1 || resolver.addrQueries[0] != "苏州 狮子林" {
		t.Errorf("geocode fallback query: %v", resolver.addrQueries)
	}
	if plan.Days[0].Activities[0].Lat != 31.32 {
		t.Errorf("fallback coordinate not applied: %+v", plan.Days[0].Activities[0])
	}
}

func TestEnrichHotelGeocodesCompositeQuery(t *testing.T) {
	resolver := &fakeResolver{coord: &maps.Coordinate{Lat: 39.9, Lng: 116.4}}
	e := NewEnricher(&alwaysPOI{}, resolver, 1000, zerolog.Nop())

	plan := &itinerary.Itinerary{Days: []itinerary.Day{{
		City:  "北京",
		Hotel: &itinerary.Hotel{Name: "北京饭店", Address: "东长安街33号"},
	}}}
	e.Enrich(context.Background(), plan)

	if len(resolver.poiQueries) != 0 {
		t.Errorf("hotels must not use place search, got %v", resolver.poiQueries)
	}
	if len(resolver.addrQueries) != 1 || resolver.addrQueries[0] != "北京 北京饭店 东长安街33号" {
		t.Errorf("composite geocode query: %v", resolver.addrQueries)
	}
}

func TestEnrichTotalFailureKeepsSentinel(t *testing.T) {
	resolver := &fakeResolver{coord: nil} // every lookup misses
	e := NewEnricher(&alwaysPOI{}, resolver, 1000, zerolog.Nop())

	plan := samplePlan()
	e.Enrich(context.Background(), plan)

	day := plan.Days[0]
	for _, pair := range [][2]float64{
		{day.Activities[0].Lat, day.Activities[0].Lng},
		{day.Hotel.Lat, day.Hotel.Lng},
		{day.Meals[0].Lat, day.Meals[0].Lng},
	} {
		if pair[0] != 0 || pair[1] != 0 {
			t.Errorf("unresolved item must keep (0,0), got %v", pair)
		}
	}
}

func TestEnrichSkipsUnnamedItems(t *testing.T) {
	classifier := &fakeClassifier{}
	resolver := &fakeResolver{coord: &maps.Coordinate{Lat: 1, Lng: 2}}
	e := NewEnricher(classifier, resolver, 1000, zerolog.Nop())

	plan := &itinerary.Itinerary{Days: []itinerary.Day{{
		City:       "北京",
		Activities: []itinerary.Activity{{Name: ""}},
		Meals:      []itinerary.Meal{{Name: ""}},
	}}}
	e.Enrich(context.Background(), plan)

	if len(classifier.calls) != 0 {
		t.Errorf("unnamed items must not be classified: %v", classifier.calls)
	}
}

// alwaysPOI classifies everything as a mappable place.
type alwaysPOI struct{}

func (alwaysPOI) Classify(_ context.Context, _ string, _ poi.Category) bool { return true }

// missThenHitResolver misses on place search, hits on address geocoding.
type missThenHitResolver struct {
	coord       *maps.Coordinate
	poiCities   []string
	addrQueries []string
}

func (m *missThenHitResolver) ResolvePOI(_ context.Context, _, city string) *maps.Coordinate {
	m.poiCities = append(m.poiCities, city)
	return nil
}

func (m *missThenHitResolver) ResolveAddress(_ context.Context, name, _ string) *maps.Coordinate {
	m.addrQueries = append(m.addrQueries, name)
	return m.coord
}
