// README: Plan handlers for itinerary generation and free-text parsing.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/itinerary"
)

// Planner generates itineraries and parses free-text trip requests.
type Planner interface {
	Generate(ctx context.Context, req itinerary.TripRequest) (*itinerary.Itinerary, error)
	ParseTripRequest(ctx context.Context, text string) (*itinerary.ParsedTripRequest, error)
}

// Enricher fills coordinates into a generated itinerary.
type Enricher interface {
	Enrich(ctx context.Context, plan *itinerary.Itinerary) *itinerary.Itinerary
}

type PlanHandler struct {
	planner  Planner
	enricher Enricher
}

func NewPlanHandler(planner Planner, enricher Enricher) *PlanHandler {
	return &PlanHandler{planner: planner, enricher: enricher}
}

// Plan handles POST /api/plan: generate a full itinerary, then resolve
// coordinates for every mappable item. Generation latency dominates, so the
// request gets a generous deadline.
func (h *PlanHandler) Plan(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 180*time.Second)
	defer cancel()

	plan, err := h.planner.Generate(ctx, req)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	plan = h.enricher.Enrich(ctx, plan)
	writeJSON(c, http.StatusOK, plan)
}

type parseInputReq struct {
	Text string `json:"text"`
}

// ParseInput handles POST /api/parse-input: extract structured trip fields
// from a free-text description.
func (h *PlanHandler) ParseInput(c *gin.Context) {
	var req parseInputReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	parsed, err := h.planner.ParseTripRequest(ctx, req.Text)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, parsed)
}
