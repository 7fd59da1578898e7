// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/infra"
)

// RouterDeps carries everything the router wires up. Itineraries is nil when
// no database is configured; the persistence routes are then not registered.
type RouterDeps struct {
	Plan        *handlers.PlanHandler
	Geocode     *handlers.GeocodeHandler
	Itineraries *handlers.ItineraryHandler
	Verifier    infra.TokenVerifier
	Log         zerolog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log), middleware.Logging(deps.Log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))
	api.POST("/plan", deps.Plan.Plan)
	api.POST("/parse-input", deps.Plan.ParseInput)
	api.POST("/geocode", deps.Geocode.Geocode)
	api.GET("/amap/sig", deps.Geocode.LoaderSignature)

	if deps.Itineraries != nil {
		api.POST("/itineraries", deps.Itineraries.Save)
		api.GET("/itineraries", deps.Itineraries.List)
		api.DELETE("/itineraries/:id", deps.Itineraries.Delete)
	}

	return r
}
