package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGeohash(t *testing.T) {
	t.Run("empty string decodes to origin", func(t *testing.T) {
		c := DecodeGeohash("")
		assert.Equal(t, Coordinate{Lat: 0, Lng: 0}, c)
	})

	t.Run("known San Francisco geohash", func(t *testing.T) {
		// Exact bounding-box midpoint for a 6-character geohash.
		c := DecodeGeohash("9q8yyk")
		assert.InDelta(t, 37.77374267578125, c.Lat, 1e-12)
		assert.InDelta(t, -122.4151611328125, c.Lng, 1e-12)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, DecodeGeohash("9q8yyk"), DecodeGeohash("9Q8YYK"))
	})

	t.Run("single character covers a coarse cell", func(t *testing.T) {
		// "s" is index 24 = 11000b: lng upper half, lat upper half, then
		// three zero bits walking back down. Midpoint lands near the origin.
		c := DecodeGeohash("s")
		assert.InDelta(t, 22.5, c.Lat, 0.001)
		assert.InDelta(t, 22.5, c.Lng, 0.001)
	})
}

func TestDecodeGeohash_LenientSkipsUnknownCharacters(t *testing.T) {
	// "a" is not in the geohash alphabet; skipping it must consume no bits,
	// so the result is identical to the cleaned string.
	assert.Equal(t, DecodeGeohash("9q8yyk"), DecodeGeohash("9q8a-yyk"))
}

func TestDecodeGeohashStrict(t *testing.T) {
	t.Run("valid geohash matches lenient decode", func(t *testing.T) {
		c, ok := DecodeGeohashStrict("9q8yyk")
		require.True(t, ok)
		assert.Equal(t, DecodeGeohash("9q8yyk"), c)
	})

	t.Run("rejects unknown characters", func(t *testing.T) {
		_, ok := DecodeGeohashStrict("9q8a")
		assert.False(t, ok)
	})

	t.Run("empty string is valid", func(t *testing.T) {
		c, ok := DecodeGeohashStrict("")
		require.True(t, ok)
		assert.Equal(t, Coordinate{}, c)
	})
}

// Decoding a prefix yields a bounding box that always contains the midpoint
// of the full decode: precision grows monotonically with geohash length.
func TestDecodeGeohash_PrefixContainsFullMidpoint(t *testing.T) {
	const geohash = "9q8yykv551w8"
	full := DecodeGeohash(geohash)

	for i := 0; i <= len(geohash); i++ {
		prefix := geohash[:i]
		bounds, ok := decodeGeohashBounds(prefix, GeohashStrict)
		require.True(t, ok, "prefix %q", prefix)
		assert.True(t, bounds.contains(full), "prefix %q bounding box should contain %+v", prefix, full)
	}
}
