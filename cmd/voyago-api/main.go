// README: Entry point; loads config, wires the enrichment pipeline, starts HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"voyago/internal/ai"
	"voyago/internal/config"
	httptransport "voyago/internal/http"
	"voyago/internal/http/handlers"
	"voyago/internal/infra"
	"voyago/internal/maps"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/poi"
	"voyago/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := buildProvider(ctx, cfg, log)

	if cfg.Amap.WebKey == "" {
		log.Fatal().Msg("AMAP_WEB_KEY is required")
	}
	amapClient, err := maps.NewAmapClient(cfg.Amap.WebKey, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("amap init")
	}

	var google *maps.GoogleGeocoder
	if cfg.Google.MapsKey != "" {
		google, err = maps.NewGoogleGeocoder(cfg.Google.MapsKey)
		if err != nil {
			log.Fatal().Err(err).Msg("google maps init")
		}
	}

	var cache maps.Cache
	if cfg.Redis.Addr != "" {
		cache = infra.NewGeoCache(infra.NewRedis(cfg.Redis.Addr))
	}

	resolver := maps.NewResolver(amapClient, google, cache, cfg.Redis.CacheTTL, log)
	classifier := poi.NewClassifier(poi.DefaultMarkers(), provider, log)
	enricher := service.NewEnricher(classifier, resolver, cfg.Enrich.LookupsPerSecond, log)
	planner := itinerary.NewService(provider, log)

	var itineraryHandler *handlers.ItineraryHandler
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Warn().Err(err).Msg("postgres unavailable; itinerary persistence disabled")
		} else {
			defer dbPool.Close()
			itineraryHandler = handlers.NewItineraryHandler(itinerary.NewStore(dbPool))
		}
	}

	var verifier infra.TokenVerifier
	if cfg.Auth.Token != "" {
		verifier = infra.NewStaticVerifier(cfg.Auth.Token)
	} else {
		log.Warn().Msg("VOYAGO_API_TOKEN not set; API is open")
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Plan:        handlers.NewPlanHandler(planner, enricher),
		Geocode:     handlers.NewGeocodeHandler(amapClient, cfg.Amap.JSKey, cfg.Amap.SecurityKey),
		Itineraries: itineraryHandler,
		Verifier:    verifier,
		Log:         log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server")
	}
}

// buildProvider picks the language model backend: Hunyuan when Tencent
// credentials are present, Gemini otherwise.
func buildProvider(ctx context.Context, cfg config.Config, log zerolog.Logger) ai.LLMProvider {
	if cfg.Tencent.Configured() {
		p, err := ai.NewHunyuanProvider(cfg.Tencent)
		if err != nil {
			log.Fatal().Err(err).Msg("hunyuan init")
		}
		log.Info().Str("model", cfg.Tencent.Model).Msg("using hunyuan")
		return p
	}
	if cfg.Google.GeminiKey != "" {
		p, err := ai.NewGeminiProvider(ctx, cfg.Google.GeminiKey)
		if err != nil {
			log.Fatal().Err(err).Msg("gemini init")
		}
		log.Info().Msg("using gemini")
		return p
	}
	log.Fatal().Msg("no language model configured: set TENCENT_SECRET_ID/TENCENT_SECRET_KEY or GEMINI_API_KEY")
	return nil
}
