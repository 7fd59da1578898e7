// README: Itinerary persistence handlers (save/list/delete).
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/middleware"
	"voyago/internal/modules/itinerary"
)

// ItineraryStore persists itineraries per user.
type ItineraryStore interface {
	Save(ctx context.Context, userID, title string, payload *itinerary.Itinerary) (int64, error)
	List(ctx context.Context, userID string) ([]itinerary.Record, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type ItineraryHandler struct {
	store ItineraryStore
}

func NewItineraryHandler(store ItineraryStore) *ItineraryHandler {
	return &ItineraryHandler{store: store}
}

type saveItineraryReq struct {
	Title     string               `json:"title"`
	Itinerary *itinerary.Itinerary `json:"itinerary"`
}

// Save handles POST /api/itineraries. Saving an existing title overwrites it.
func (h *ItineraryHandler) Save(c *gin.Context) {
	var req saveItineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Itinerary != nil && req.Title == "" {
		req.Title = strings.TrimSpace(req.Itinerary.Title)
	}
	if req.Title == "" || req.Itinerary == nil {
		writeError(c, http.StatusBadRequest, "missing title or itinerary")
		return
	}

	id, err := h.store.Save(c.Request.Context(), middleware.CallerUID(c), req.Title, req.Itinerary)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

// List handles GET /api/itineraries, newest first.
func (h *ItineraryHandler) List(c *gin.Context) {
	records, err := h.store.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	if records == nil {
		records = []itinerary.Record{}
	}
	writeJSON(c, http.StatusOK, gin.H{"itineraries": records})
}

// Delete handles DELETE /api/itineraries/:id. The store scopes the delete to
// the caller, so another user's rows are unreachable here.
func (h *ItineraryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid itinerary id")
		return
	}
	if err := h.store.Delete(c.Request.Context(), middleware.CallerUID(c), id); err != nil {
		writeItineraryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
