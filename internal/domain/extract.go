package domain

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/uber/h3-go/v4"
)

// titlePreviewLen is the number of leading characters of content used when an
// event carries no title tag.
const titlePreviewLen = 50

// ExtractOptions controls the behavior of the extraction pipeline.
type ExtractOptions struct {
	// GeohashMode selects lenient or strict handling of malformed geohashes.
	GeohashMode GeohashMode
	// H3Resolution is the H3 cell resolution (0-15) stamped onto events that
	// resolve to coordinates. A negative value disables the h3_cell field.
	H3Resolution int
}

// ParseRawEvent deserializes a RawEvent's value into a NostrEvent.
func ParseRawEvent(raw RawEvent) (NostrEvent, error) {
	var evt NostrEvent
	if err := json.Unmarshal(raw.Value, &evt); err != nil {
		return NostrEvent{}, fmt.Errorf("parse raw event: %w", err)
	}
	return evt, nil
}

// ExtractLocationEvent runs the extraction pipeline over a single event:
// interpret tags, resolve coordinates (geohash takes priority over the
// free-text location), classify the kind, synthesize a title when absent, and
// assemble the normalized record. Returns false when the event has no usable
// geospatial anchor; such events are dropped, never errored.
func ExtractLocationEvent(evt NostrEvent, opts ExtractOptions) (LocationEvent, bool) {
	fields := InterpretTags(evt.Tags, opts.GeohashMode)

	if fields.Coordinates == nil && fields.Location != "" {
		if c, ok := ParseCoordinates(fields.Location); ok {
			fields.Coordinates = &c
		}
	}
	if fields.Coordinates == nil && fields.Location == "" {
		return LocationEvent{}, false
	}

	label := KindLabel(evt.Kind)
	title := fields.Title
	if title == "" {
		title = synthesizeTitle(evt.Content, label)
	}

	event := LocationEvent{
		ID:          evt.ID,
		Pubkey:      evt.Pubkey,
		CreatedAt:   evt.CreatedAt,
		Kind:        evt.Kind,
		Content:     evt.Content,
		Location:    fields.Location,
		Coordinates: fields.Coordinates,
		Title:       title,
		Summary:     fields.Summary,
		Image:       fields.Image,
		Status:      fields.Status,
		Price:       finitePrice(fields.Price),
		EventType:   label,
		Tags:        fields.Tags,
		ProcessedAt: clock.Now(),
	}
	if event.Coordinates != nil {
		event.H3Cell = H3CellForCoordinate(*event.Coordinates, opts.H3Resolution)
	}
	return event, true
}

// ExtractBatch extracts a batch of events, preserving input order and
// omitting events without location data. Records are independent; callers
// may fan out per record as long as they reassemble results by index.
func ExtractBatch(events []NostrEvent, opts ExtractOptions) []LocationEvent {
	out := make([]LocationEvent, 0, len(events))
	for _, evt := range events {
		if loc, ok := ExtractLocationEvent(evt, opts); ok {
			out = append(out, loc)
		}
	}
	return out
}

// H3CellForCoordinate returns the H3 cell index string for a coordinate at
// the given resolution, or "" when resolution is negative or the cell cannot
// be derived.
func H3CellForCoordinate(c Coordinate, resolution int) string {
	if resolution < 0 {
		return ""
	}
	cell, err := h3.LatLngToCell(h3.NewLatLng(c.Lat, c.Lng), resolution)
	if err != nil {
		return ""
	}
	return cell.String()
}

// synthesizeTitle derives a title from the first titlePreviewLen characters
// of content, falling back to the kind label when content is empty. Slicing
// is rune-based so multi-byte content is never split mid-character.
func synthesizeTitle(content, fallback string) string {
	runes := []rune(content)
	if len(runes) > titlePreviewLen {
		runes = runes[:titlePreviewLen]
	}
	if preview := string(runes); preview != "" {
		return preview
	}
	return fallback
}

// finitePrice drops a price whose amount is the NaN parse sentinel (or
// otherwise non-finite). The output record is serialized to JSON, which has
// no encoding for non-finite numbers.
func finitePrice(p *Price) *Price {
	if p == nil {
		return nil
	}
	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) {
		return nil
	}
	return p
}
