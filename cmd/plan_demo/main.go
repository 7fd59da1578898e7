package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"voyago/internal/ai"
	"voyago/internal/config"
	"voyago/internal/maps"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/poi"
	"voyago/internal/service"
)

func main() {
	text := "我想去苏州玩2天，预算2000元，喜欢园林和美食"
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var provider ai.LLMProvider
	switch {
	case cfg.Tencent.Configured():
		provider, err = ai.NewHunyuanProvider(cfg.Tencent)
	case cfg.Google.GeminiKey != "":
		provider, err = ai.NewGeminiProvider(context.Background(), cfg.Google.GeminiKey)
	default:
		log.Fatal("set TENCENT_SECRET_ID/TENCENT_SECRET_KEY or GEMINI_API_KEY")
	}
	if err != nil {
		log.Fatalf("provider init: %v", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	planner := itinerary.NewService(provider, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fmt.Printf("Input: %s\n", text)
	parsed, err := planner.ParseTripRequest(ctx, text)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	fmt.Printf("Parsed: %+v\n", *parsed)

	req := itinerary.TripRequest{
		Destination: parsed.Destination,
		StartDate:   parsed.StartDate,
		EndDate:     parsed.EndDate,
		Budget:      parsed.Budget,
	}
	if parsed.Preferences != "" {
		req.Preferences = []string{parsed.Preferences}
	}
	plan, err := planner.Generate(ctx, req)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if cfg.Amap.WebKey != "" {
		amapClient, err := maps.NewAmapClient(cfg.Amap.WebKey, 3)
		if err != nil {
			log.Fatalf("amap init: %v", err)
		}
		resolver := maps.NewResolver(amapClient, nil, nil, 0, logger)
		classifier := poi.NewClassifier(poi.DefaultMarkers(), provider, logger)
		enricher := service.NewEnricher(classifier, resolver, cfg.Enrich.LookupsPerSecond, logger)
		plan = enricher.Enrich(ctx, plan)
	} else {
		fmt.Println("AMAP_WEB_KEY not set, skipping coordinate enrichment")
	}

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
}
