// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/ai"
	"voyago/internal/modules/itinerary"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeItineraryError(c *gin.Context, err error) {
	var badJSON *itinerary.BadJSONError
	switch {
	case errors.Is(err, itinerary.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &badJSON):
		writeError(c, http.StatusBadGateway, "model returned unparseable itinerary")
	case errors.Is(err, ai.ErrMissingCredentials):
		writeError(c, http.StatusServiceUnavailable, "language model not configured")
	case errors.Is(err, ai.ErrUpstream):
		writeError(c, http.StatusBadGateway, "language model error")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
