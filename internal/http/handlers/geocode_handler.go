// README: Geocode passthrough and Amap JS loader signature.
package handlers

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/maps"
)

// Geocoder resolves a single address to a coordinate with locality fields.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*maps.GeocodeResult, error)
}

type GeocodeHandler struct {
	geocoder    Geocoder
	jsKey       string
	securityKey string
}

func NewGeocodeHandler(geocoder Geocoder, jsKey, securityKey string) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder, jsKey: jsKey, securityKey: securityKey}
}

type geocodeReq struct {
	Address string `json:"address"`
}

type geocodeResp struct {
	OK               bool    `json:"ok"`
	Lat              float64 `json:"lat,omitempty"`
	Lng              float64 `json:"lng,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	Province         string  `json:"province,omitempty"`
	City             string  `json:"city,omitempty"`
}

// Geocode handles POST /api/geocode. A miss is a normal outcome, reported
// as ok=false rather than an error status.
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	var req geocodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(c, http.StatusBadRequest, "missing address")
		return
	}
	if h.geocoder == nil {
		writeError(c, http.StatusServiceUnavailable, "geocoding not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	result, err := h.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		writeError(c, http.StatusBadGateway, "geocoding upstream error")
		return
	}
	if result == nil {
		writeJSON(c, http.StatusOK, geocodeResp{OK: false})
		return
	}
	writeJSON(c, http.StatusOK, geocodeResp{
		OK:               true,
		Lat:              result.Lat,
		Lng:              result.Lng,
		FormattedAddress: result.FormattedAddress,
		Province:         result.Province,
		City:             result.City,
	})
}

// LoaderSignature handles GET /api/amap/sig. The browser map SDK requires
// requests signed with the security key; the key itself never leaves the
// server, only the digest of the loader URL does.
func (h *GeocodeHandler) LoaderSignature(c *gin.Context) {
	if h.jsKey == "" || h.securityKey == "" {
		writeError(c, http.StatusServiceUnavailable, "map loader keys not configured")
		return
	}
	raw := "/maps?v=2.0&key=" + h.jsKey + h.securityKey
	sum := md5.Sum([]byte(raw))
	writeJSON(c, http.StatusOK, gin.H{"sig": hex.EncodeToString(sum[:])})
}
