// Command genmock generates deterministic Nostr event fixtures for the test
// suites. It runs the actual extraction code so the transformed fixture
// always matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -raw-out data/mock/nostr_events_raw.json \
//	  -extracted-out data/mock/location_events.json
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nostrmaps/location-etl/internal/domain"
)

var createdAtBase = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rawOut := flag.String("raw-out", "data/mock/nostr_events_raw.json", "output path for raw event fixture")
	extractedOut := flag.String("extracted-out", "data/mock/location_events.json", "output path for extracted event fixture")
	flag.Parse()

	// Fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.January, 2, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	events := sampleEvents()

	opts := domain.ExtractOptions{GeohashMode: domain.GeohashLenient, H3Resolution: 8}
	extracted := domain.ExtractBatch(events, opts)

	if err := writeJSON(*rawOut, events); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s (%d events)", *rawOut, len(events))

	if err := writeJSON(*extractedOut, extracted); err != nil {
		return fmt.Errorf("writing extracted fixture: %w", err)
	}
	log.Printf("wrote extracted fixture: %s (%d events)", *extractedOut, len(extracted))

	printStats(events, extracted)
	return nil
}

// sampleEvents builds one representative event per supported kind plus edge
// cases (anchorless note, unknown kind, bad price). IDs and pubkeys are
// sha256 digests of stable seeds so regeneration is byte-identical.
func sampleEvents() []domain.NostrEvent {
	type seed struct {
		kind    int
		content string
		tags    [][]string
	}

	seeds := []seed{
		{31923, "Sunday morning farmers market at the ferry building. Local produce, coffee, live music.", [][]string{
			{"d", "farmers-market-2026"},
			{"title", "Ferry Building Farmers Market"},
			{"g", "9q8yyk"},
			{"start", "1767250800"},
		}},
		{31922, "Community cleanup day, meet at the park entrance.", [][]string{
			{"d", "cleanup-day"},
			{"title", "Park Cleanup"},
			{"location", "Golden Gate Park, San Francisco"},
			{"start", "2026-01-10"},
		}},
		{30402, "Selling my touring bike, barely used. Pickup only.", [][]string{
			{"d", "bike-listing-41"},
			{"title", "Touring bike for sale"},
			{"location", "Mission District, San Francisco"},
			{"price", "350", "USD"},
			{"image", "https://example.com/bike.jpg"},
			{"status", "active"},
		}},
		{30402, "Room available month to month.", [][]string{
			{"d", "room-listing"},
			{"title", "Room for rent"},
			{"g", "u33dc0"},
			{"price", "not-a-number", "EUR", "month"},
		}},
		{30017, "Neighborhood tool library, open weekends.", [][]string{
			{"d", "tool-library"},
			{"title", "Tool Library Stall"},
			{"g", "u33dc0"},
			{"summary", "Borrow tools instead of buying them"},
		}},
		{30018, "Hand-thrown ceramic mugs, small batch.", [][]string{
			{"d", "ceramic-mugs"},
			{"title", "Ceramic Mugs"},
			{"g", "dr5ru7"},
			{"price", "45", "USD"},
			{"summary", "Stoneware mugs, food safe glaze"},
		}},
		{30311, "Live from the waterfront stage.", [][]string{
			{"d", "waterfront-stream"},
			{"title", "Waterfront Sessions"},
			{"location", "lat: 51.5074, lon: -0.1278"},
			{"status", "live"},
			{"image", "https://example.com/stream-cover.jpg"},
		}},
		{1, "Checking in from the harbor. 40.7128, -74.0060", [][]string{
			{"location", "40.7128, -74.0060"},
		}},
		{1, "No location on this one, just a plain note that should be filtered out of the map feed.", nil},
		{42424, "Mystery kind with a geohash anyway.", [][]string{
			{"g", "gcpvj0"},
		}},
	}

	events := make([]domain.NostrEvent, len(seeds))
	for i, s := range seeds {
		events[i] = domain.NostrEvent{
			ID:        digest(fmt.Sprintf("event-%d-%d", i, s.kind)),
			Pubkey:    digest(fmt.Sprintf("pubkey-%d", i%4)),
			CreatedAt: createdAtBase.Add(time.Duration(i) * time.Hour).Unix(),
			Kind:      s.kind,
			Content:   s.content,
			Tags:      s.tags,
		}
	}
	return events
}

func digest(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(raw []domain.NostrEvent, extracted []domain.LocationEvent) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Raw: %d, extracted: %d, dropped: %d\n", len(raw), len(extracted), len(raw)-len(extracted))

	typeCounts := map[string]int{}
	var withCoords, withH3, withPrice int
	for i := range extracted {
		e := &extracted[i]
		typeCounts[e.EventType]++
		if e.Coordinates != nil {
			withCoords++
		}
		if e.H3Cell != "" {
			withH3++
		}
		if e.Price != nil {
			withPrice++
		}
	}

	fmt.Printf("With coordinates: %d, with h3 cell: %d, with price: %d\n", withCoords, withH3, withPrice)
	fmt.Println("By type:")
	for label, count := range typeCounts {
		fmt.Printf("  %s: %d\n", label, count)
	}
}
