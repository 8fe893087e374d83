// Command validate checks a saved earthquake feed before it is rendered. It
// verifies that every feature can be drawn as a marker and prints how the
// features spread across the depth legend.
//
// Usage:
//
//	go run ./cmd/validate -feed data/all_week.geojson
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	feedPath := flag.String("feed", "", "path to a saved GeoJSON feed")
	minFeatures := flag.Int("min-features", 1, "fail when the feed has fewer features")
	locale := flag.String("locale", "en-US", "locale for the report numbers")
	flag.Parse()

	if *feedPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	tag, err := language.Parse(*locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: invalid -locale %q: %v\n", *locale, err)
		os.Exit(1)
	}

	if code := run(*feedPath, *minFeatures, message.NewPrinter(tag)); code != 0 {
		os.Exit(code)
	}
}

func run(feedPath string, minFeatures int, printer *message.Printer) int {
	fmt.Println("=== Earthquake Feed Validation ===")
	fmt.Println()

	data, err := os.ReadFile(feedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read feed: %v\n", err)
		return 1
	}

	feed, err := usgs.DecodeFeed(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: decode feed: %v\n", err)
		return 1
	}

	// ── Run validation phases ──
	phases := []*phase{
		validateFeatureCount(feed.Quakes, minFeatures),
		validateIdentifiers(feed.Quakes),
		validateCoordinates(feed.Quakes),
		validateMarkerFields(feed.Quakes),
	}

	// ── Report results ──
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	if feed.Title != "" {
		fmt.Printf("Feed: %s\n", feed.Title)
	}
	printer.Printf("Features: %d\n", len(feed.Quakes))
	printBuckets(printer, feed.Quakes)
	printBounds(printer, feed.Quakes)

	// Print detailed errors.
	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Validation phases ──

func validateFeatureCount(quakes []domain.Earthquake, minFeatures int) *phase {
	p := &phase{name: "Phase 1: Feature count"}
	if len(quakes) < minFeatures {
		p.errorf("feed has %d features, want at least %d", len(quakes), minFeatures)
	}
	return p
}

func validateIdentifiers(quakes []domain.Earthquake) *phase {
	p := &phase{name: "Phase 2: Feature identifiers"}
	seen := make(map[string]int, len(quakes))
	for i := range quakes {
		id := quakes[i].ID
		if id == "" {
			p.errorf("feature %d: missing id", i)
			continue
		}
		if first, ok := seen[id]; ok {
			p.errorf("feature %d: id %q duplicates feature %d", i, id, first)
			continue
		}
		seen[id] = i
	}
	return p
}

func validateCoordinates(quakes []domain.Earthquake) *phase {
	p := &phase{name: "Phase 3: Coordinates"}
	for i := range quakes {
		q := &quakes[i]
		switch {
		case !finite(q.Longitude) || !finite(q.Latitude):
			p.errorf("%s: non-finite position (%v, %v), feature will be skipped", label(i, q), q.Longitude, q.Latitude)
		case q.Latitude < -90 || q.Latitude > 90:
			p.errorf("%s: latitude %v out of range", label(i, q), q.Latitude)
		case q.Longitude < -180 || q.Longitude > 180:
			p.errorf("%s: longitude %v out of range", label(i, q), q.Longitude)
		}
	}
	return p
}

func validateMarkerFields(quakes []domain.Earthquake) *phase {
	p := &phase{name: "Phase 4: Marker fields"}
	for i := range quakes {
		q := &quakes[i]
		if !finite(q.Magnitude) {
			p.errorf("%s: missing magnitude, marker has no radius", label(i, q))
		}
		if math.IsNaN(q.Depth) {
			p.errorf("%s: missing depth, marker uses the fallback color", label(i, q))
		}
		if q.Time.IsZero() {
			p.errorf("%s: missing time", label(i, q))
		}
	}
	return p
}

// ── Report ──

func printBuckets(printer *message.Printer, quakes []domain.Earthquake) {
	var counts [len(domain.Colors)]int
	for i := range quakes {
		counts[domain.DepthBucket(quakes[i].Depth)]++
	}

	fmt.Println("\nDepth buckets:")
	for b, n := range counts {
		share := 0.0
		if len(quakes) > 0 {
			share = float64(n) / float64(len(quakes))
		}
		printer.Printf("  %-8s %-7s %6d  %5.1f%%\n", domain.BucketLabel(b), domain.Colors[b], n, share*100)
	}
}

func printBounds(printer *message.Printer, quakes []domain.Earthquake) {
	var points orb.MultiPoint
	for i := range quakes {
		if finite(quakes[i].Longitude) && finite(quakes[i].Latitude) {
			points = append(points, orb.Point{quakes[i].Longitude, quakes[i].Latitude})
		}
	}
	if len(points) == 0 {
		return
	}

	b := points.Bound()
	printer.Printf("\nBounds: lon %.2f..%.2f, lat %.2f..%.2f\n", b.Min.Lon(), b.Max.Lon(), b.Min.Lat(), b.Max.Lat())
}

func label(i int, q *domain.Earthquake) string {
	if q.ID == "" {
		return fmt.Sprintf("feature %d", i)
	}
	return fmt.Sprintf("feature %d (%s)", i, q.ID)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
