package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attempts to fill the gap an event arrived with: forward
// geocoding resolves coordinates for events that only have an unparseable
// location string, and reverse geocoding resolves a display place name for
// events that only have coordinates. If geocoder is nil or the lookup fails,
// the event passes through unchanged apart from GeoSource; enrichment never
// drops an event.
func EnrichWithGeocoding(ctx context.Context, event LocationEvent, geocoder Geocoder, logger *slog.Logger) LocationEvent {
	if geocoder == nil {
		return event
	}

	hasCoords := event.Coordinates != nil
	hasLocation := event.Location != ""

	// Forward geocode: location text → coordinates.
	if !hasCoords && hasLocation {
		result, err := geocoder.ForwardGeocode(ctx, event.Location)
		if err != nil {
			logger.Warn("forward geocoding failed",
				"event_id", event.ID,
				"location", event.Location,
				"error", err,
			)
			event.GeoSource = "failed"
			return event
		}
		if result.Lat != 0 || result.Lng != 0 {
			event.Coordinates = &Coordinate{Lat: result.Lat, Lng: result.Lng}
			event.FormattedAddress = result.FormattedAddress
			event.PlaceName = result.PlaceName
			event.GeoConfidence = result.Confidence
			event.GeoSource = "forward"
			return event
		}
		event.GeoSource = "original"
		return event
	}

	// Reverse geocode: coordinates → place details, only when the event has
	// no human-readable location of its own.
	if hasCoords && !hasLocation {
		result, err := geocoder.ReverseGeocode(ctx, event.Coordinates.Lat, event.Coordinates.Lng)
		if err != nil {
			logger.Warn("reverse geocoding failed",
				"event_id", event.ID,
				"lat", event.Coordinates.Lat,
				"lng", event.Coordinates.Lng,
				"error", err,
			)
			event.GeoSource = "failed"
			return event
		}
		if result.FormattedAddress != "" {
			event.FormattedAddress = result.FormattedAddress
			event.PlaceName = result.PlaceName
			event.GeoConfidence = result.Confidence
			event.GeoSource = "reverse"
			return event
		}
		event.GeoSource = "original"
		return event
	}

	event.GeoSource = "original"
	return event
}
