// README: Offline classifier check; runs sample itinerary items through the rule stages and prints verdicts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"voyago/internal/modules/poi"
)

// Runs entirely offline: no model credentials means the classifier falls
// back to the local heuristic, which is exactly the path being tuned here.
func main() {
	verbose := flag.Bool("v", false, "print every verdict")
	flag.Parse()

	classifier := poi.NewClassifier(poi.DefaultMarkers(), nil, zerolog.New(os.Stderr).Level(zerolog.WarnLevel))
	ctx := context.Background()

	mismatches := 0
	for _, tc := range cases {
		got := classifier.Classify(ctx, tc.Name, tc.Category)
		status := "ok"
		if got != tc.WantPOI {
			status = "MISMATCH"
			mismatches++
		}
		if *verbose || got != tc.WantPOI {
			fmt.Printf("%-10s %-24s got=%v want=%v %s\n", tc.Category, tc.Name, got, tc.WantPOI, status)
		}
	}

	fmt.Printf("\n%d cases, %d mismatches\n", len(cases), mismatches)
	if mismatches > 0 {
		os.Exit(1)
	}
}
