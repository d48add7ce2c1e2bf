package domain

import (
	"context"
	"time"
)

// NostrEvent is the wire form of a Nostr event as published by the relay
// gateway. Tags are ordered lists of strings where element 0 names the tag's
// semantic role ("g", "location", "title", ...) and the rest are its values.
type NostrEvent struct {
	ID        string     `json:"id"`
	Pubkey    string     `json:"pubkey"`
	CreatedAt int64      `json:"created_at"`
	Kind      int        `json:"kind"`
	Content   string     `json:"content"`
	Tags      [][]string `json:"tags"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Coordinate is a WGS-84 latitude/longitude pair. The lat/lng field names
// match what the map frontend consumes.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Price holds the parsed value of a NIP-99 style "price" tag.
type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Frequency string  `json:"frequency,omitempty"`
}

// ExtractedFields is the intermediate field set produced by tag
// interpretation. It is built fresh per event and consumed immediately by
// ExtractLocationEvent; Tags aliases the source event's tag list rather than
// copying it.
type ExtractedFields struct {
	Location    string
	Coordinates *Coordinate
	Title       string
	Summary     string
	Image       string
	Status      string
	Price       *Price
	Tags        [][]string
}

// LocationEvent is the normalized output record for the map consumer.
// Invariant: Coordinates is non-nil or Location is non-empty; events
// satisfying neither are never constructed.
type LocationEvent struct {
	ID          string      `json:"id"`
	Pubkey      string      `json:"pubkey"`
	CreatedAt   int64       `json:"created_at"`
	Kind        int         `json:"kind"`
	Content     string      `json:"content"`
	Location    string      `json:"location,omitempty"`
	Coordinates *Coordinate `json:"coordinates,omitempty"`
	Title       string      `json:"title"`
	Summary     string      `json:"summary,omitempty"`
	Image       string      `json:"image,omitempty"`
	Status      string      `json:"status,omitempty"`
	Price       *Price      `json:"price,omitempty"`
	EventType   string      `json:"eventType"`
	H3Cell      string      `json:"h3_cell,omitempty"`
	Tags        [][]string  `json:"tags"`

	// Geocoding enrichment fields.
	PlaceName        string  `json:"place_name,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "forward", "reverse", "original", "failed"

	ProcessedAt time.Time `json:"processed_at"`
}
