// README: Itinerary generation and free-text trip-request parsing.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"voyago/internal/ai"
)

const (
	maxTripDays   = 30
	maxTripPeople = 20
)

// Service generates itineraries and parses trip requests via the configured
// language model. Coordinates in generated itineraries are all zero until the
// enricher runs.
type Service struct {
	llm ai.LLMProvider
	log zerolog.Logger
	now func() time.Time
}

// NewService creates a Service backed by the given provider.
func NewService(llm ai.LLMProvider, log zerolog.Logger) *Service {
	return &Service{llm: llm, log: log, now: time.Now}
}

// Generate produces a draft itinerary for the request. A model-reported
// error or unparseable completion is fatal for the whole operation; the
// caller surfaces it rather than rendering a partial plan.
func (s *Service) Generate(ctx context.Context, req TripRequest) (*Itinerary, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, fmt.Errorf("%w: missing destination", ErrBadRequest)
	}
	days, err := req.ResolveDays()
	if err != nil {
		return nil, err
	}

	raw, err := s.llm.Generate(ctx, planSystemPrompt, buildPlanUserPrompt(req, days))
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	var plan Itinerary
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		s.log.Error().Err(err).Str("raw", raw).Msg("itinerary JSON parse failed")
		return nil, &BadJSONError{Raw: raw, Err: err}
	}
	s.log.Info().Str("title", plan.Title).Int("days", len(plan.Days)).Msg("itinerary generated")
	return &plan, nil
}

// parsedInput mirrors the JSON contract of the parsing prompt.
type parsedInput struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Budget      string `json:"budget"`
	People      int    `json:"people"`
	Preferences string `json:"preferences"`
}

// ParseTripRequest extracts structured trip fields from free text. Fields the
// model could not find are left empty; a day count becomes a start/end date
// range anchored at today.
func (s *Service) ParseTripRequest(ctx context.Context, text string) (*ParsedTripRequest, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: missing text", ErrBadRequest)
	}

	raw, err := s.llm.Generate(ctx, parseSystemPrompt, buildParseUserPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("parse trip request: %w", err)
	}

	var parsed parsedInput
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.log.Error().Err(err).Str("raw", raw).Msg("trip-request JSON parse failed")
		return nil, &BadJSONError{Raw: raw, Err: err}
	}

	result := &ParsedTripRequest{}
	if dest := strings.TrimSpace(parsed.Destination); dest != "" {
		result.Destination = dest
	}
	if parsed.Days > 0 && parsed.Days <= maxTripDays {
		start := s.now()
		end := start.AddDate(0, 0, parsed.Days-1)
		result.StartDate = start.Format("2006-01-02")
		result.EndDate = end.Format("2006-01-02")
	}
	if budget := strings.TrimSpace(parsed.Budget); budget != "" {
		result.Budget = budget
	}
	if parsed.People > 0 && parsed.People <= maxTripPeople {
		result.People = parsed.People
	}
	if prefs := strings.TrimSpace(parsed.Preferences); prefs != "" {
		result.Preferences = prefs
	}
	return result, nil
}
