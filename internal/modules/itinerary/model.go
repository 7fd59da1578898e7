// README: Itinerary aggregate; JSON shape matches the model's output contract.
package itinerary

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadRequest = errors.New("itinerary: bad request")
	ErrNotFound   = errors.New("itinerary: not found")
)

// BadJSONError reports completion text that failed to parse as an itinerary.
// The raw text is kept for diagnostics; it is never silently coerced into a
// default itinerary.
type BadJSONError struct {
	Raw string
	Err error
}

func (e *BadJSONError) Error() string {
	return fmt.Sprintf("itinerary: model returned unparseable JSON: %v", e.Err)
}

func (e *BadJSONError) Unwrap() error { return e.Err }

// Itinerary is the generated plan. The enricher mutates coordinate fields in
// place; everything else is immutable after generation.
type Itinerary struct {
	Title               string  `json:"title"`
	Currency            string  `json:"currency"`
	TotalBudgetEstimate float64 `json:"total_budget_estimate"`
	Days                []Day   `json:"days"`
}

type Day struct {
	Date              string     `json:"date"`
	City              string     `json:"city"`
	Transport         string     `json:"transport"`
	DailyCostEstimate float64    `json:"daily_cost_estimate"`
	Activities        []Activity `json:"activities"`
	Hotel             *Hotel     `json:"hotel,omitempty"`
	Meals             []Meal     `json:"meals"`
}

// Activity carries lat/lng initialised to 0 by the generation prompt; the
// enricher either resolves both or leaves both at the sentinel.
type Activity struct {
	Time         string  `json:"time"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Desc         string  `json:"desc"`
	Restaurant   string  `json:"restaurant,omitempty"`
	Tips         string  `json:"tips,omitempty"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	CostEstimate float64 `json:"cost_estimate"`
}

type Hotel struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	PricePerNight float64 `json:"price_per_night"`
}

type Meal struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	PriceEstimate float64 `json:"price_estimate"`
}

// TripRequest is the input to itinerary generation. Days may be given
// directly or derived from the inclusive StartDate..EndDate range.
type TripRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Budget      string   `json:"budget"`
	Preferences []string `json:"preferences"`
}

// ResolveDays returns the effective trip length, preferring the date range
// when both endpoints are present. The range is inclusive of both days.
func (r TripRequest) ResolveDays() (int, error) {
	if r.StartDate != "" && r.EndDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return 0, fmt.Errorf("%w: bad startDate: %v", ErrBadRequest, err)
		}
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return 0, fmt.Errorf("%w: bad endDate: %v", ErrBadRequest, err)
		}
		diff := int(end.Sub(start).Hours()/24) + 1
		if diff <= 0 {
			return 0, fmt.Errorf("%w: endDate before startDate", ErrBadRequest)
		}
		return diff, nil
	}
	if r.Days <= 0 {
		return 0, fmt.Errorf("%w: need days or startDate+endDate", ErrBadRequest)
	}
	return r.Days, nil
}

// ParsedTripRequest is the structured form extracted from free text.
type ParsedTripRequest struct {
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Budget      string `json:"budget,omitempty"`
	People      int    `json:"people,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

// Record is a stored itinerary row.
type Record struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"-"`
	Title     string     `json:"title"`
	Payload   *Itinerary `json:"payload"`
	CreatedAt time.Time  `json:"created_at"`
}
