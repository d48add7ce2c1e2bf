package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nostrmaps/location-etl/internal/domain"
)

// Drop sentinels. Both mark events that are excluded from the output as a
// matter of policy, not failures; the pipeline commits them and moves on.
var (
	// ErrNoLocation reports an event with no resolvable geospatial anchor.
	ErrNoLocation = errors.New("event has no location data")
	// ErrKindFiltered reports an event whose kind is outside the configured categories.
	ErrKindFiltered = errors.New("event kind outside configured categories")
)

// LocationTransformer implements Transformer using the domain extraction
// functions, with category filtering and optional geocoding enrichment.
type LocationTransformer struct {
	kinds    domain.KindSet
	opts     domain.ExtractOptions
	geocoder domain.Geocoder
	logger   *slog.Logger
}

// NewTransformer creates a LocationTransformer. A nil or empty kinds set
// disables category filtering; a nil geocoder disables enrichment.
func NewTransformer(kinds domain.KindSet, opts domain.ExtractOptions, geocoder domain.Geocoder, logger *slog.Logger) *LocationTransformer {
	return &LocationTransformer{
		kinds:    kinds,
		opts:     opts,
		geocoder: geocoder,
		logger:   logger,
	}
}

func (t *LocationTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.LocationEvent, error) {
	evt, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.LocationEvent{}, err
	}

	if !t.kinds.Contains(evt.Kind) {
		return domain.LocationEvent{}, fmt.Errorf("kind %d: %w", evt.Kind, ErrKindFiltered)
	}

	event, ok := domain.ExtractLocationEvent(evt, t.opts)
	if !ok {
		return domain.LocationEvent{}, fmt.Errorf("event %s: %w", evt.ID, ErrNoLocation)
	}

	event = domain.EnrichWithGeocoding(ctx, event, t.geocoder, t.logger)

	// Forward geocoding may have produced coordinates after extraction ran.
	if event.Coordinates != nil && event.H3Cell == "" {
		event.H3Cell = domain.H3CellForCoordinate(*event.Coordinates, t.opts.H3Resolution)
	}

	return event, nil
}
