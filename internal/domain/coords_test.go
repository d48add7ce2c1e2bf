package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Coordinate
		ok       bool
	}{
		{"bare decimal pair", "40.7128, -74.0060", Coordinate{Lat: 40.7128, Lng: -74.006}, true},
		{"bare pair without space", "40.7128,-74.0060", Coordinate{Lat: 40.7128, Lng: -74.006}, true},
		{"bare pair integers", "51,-3", Coordinate{Lat: 51, Lng: -3}, true},
		{"labeled form", "lat: 51.5, lon: -0.12", Coordinate{Lat: 51.5, Lng: -0.12}, true},
		{"labeled form embedded in text", "meet here lat: 51.5 lon: -0.12 tonight", Coordinate{Lat: 51.5, Lng: -0.12}, true},
		{"labeled form mixed case", "LAT: 51.5, LON: -0.12", Coordinate{Lat: 51.5, Lng: -0.12}, true},
		{"degree hemisphere north west", "37.7749° N, 122.4194° W", Coordinate{Lat: 37.7749, Lng: -122.4194}, true},
		{"degree hemisphere south east", "33.8688 S, 151.2093 E", Coordinate{Lat: -33.8688, Lng: 151.2093}, true},
		{"bare pair with trailing text does not match", "40.7128, -74.0060 extra", Coordinate{}, false},
		{"place name", "not a place", Coordinate{}, false},
		{"empty string", "", Coordinate{}, false},
		{"street address", "12 Main St, Springfield", Coordinate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseCoordinates(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected.Lat, c.Lat, 1e-9)
				assert.InDelta(t, tt.expected.Lng, c.Lng, 1e-9)
			}
		})
	}
}

// The bare decimal pattern is anchored and wins over the labeled pattern when
// the whole string is a coordinate pair.
func TestParseCoordinates_PatternPriority(t *testing.T) {
	c, ok := ParseCoordinates("1.5, 2.5")
	require.True(t, ok)
	assert.Equal(t, Coordinate{Lat: 1.5, Lng: 2.5}, c)
}
