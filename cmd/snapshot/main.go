// Command snapshot saves a copy of the USGS earthquake feed so the map can be
// rendered offline with FEED_URL pointing at the saved file.
//
// Usage:
//
//	go run ./cmd/snapshot -out data/all_week.geojson \
//	  -url https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_week.geojson
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/config"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	feedURL := flag.String("url", config.DefaultFeedURL, "feed URL or local path to copy")
	out := flag.String("out", "", "output path for the saved feed")
	limit := flag.Int("limit", 0, "keep only the first N features (0 keeps all)")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *limit < 0 {
		return fmt.Errorf("-limit must not be negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := usgs.NewClient(*feedURL, *timeout, observability.NewMetrics(), slog.Default())
	data, err := client.FetchRaw(ctx)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", *feedURL, err)
	}

	if *limit > 0 {
		data, err = truncateFeatures(data, *limit)
		if err != nil {
			return fmt.Errorf("truncating features: %w", err)
		}
	}

	feed, err := usgs.DecodeFeed(data)
	if err != nil {
		return fmt.Errorf("decoding feed: %w", err)
	}

	if err := writeFeed(*out, data); err != nil {
		return err
	}

	log.Printf("wrote %d features to %s", len(feed.Quakes), *out)
	printStats(collectStats(feed.Quakes))
	return nil
}

// truncateFeatures keeps the first n features and leaves every other member
// of the document untouched.
func truncateFeatures(data []byte, n int) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	raw, ok := doc["features"]
	if !ok {
		return data, nil
	}
	var features []json.RawMessage
	if err := json.Unmarshal(raw, &features); err != nil {
		return nil, err
	}
	if len(features) <= n {
		return data, nil
	}
	trimmed, err := json.Marshal(features[:n])
	if err != nil {
		return nil, err
	}
	doc["features"] = trimmed
	return json.Marshal(doc)
}

func writeFeed(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("indenting %s: %w", path, err)
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // feed snapshots are not secret
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type stats struct {
	total     int
	noMag     int
	perBucket [len(domain.Colors)]int
	deepest   float64
}

func collectStats(quakes []domain.Earthquake) stats {
	var s stats
	for _, q := range quakes {
		s.total++
		if math.IsNaN(q.Magnitude) {
			s.noMag++
		}
		s.perBucket[domain.DepthBucket(q.Depth)]++
		if q.Depth > s.deepest {
			s.deepest = q.Depth
		}
	}
	return s
}

func printStats(s stats) {
	log.Printf("=== Depth buckets ===")
	for b, n := range s.perBucket {
		log.Printf("  %-8s %-7s %d", domain.BucketLabel(b), domain.Colors[b], n)
	}
	log.Printf("missing magnitude: %d of %d", s.noMag, s.total)
	log.Printf("deepest: %.2f", s.deepest)
}
