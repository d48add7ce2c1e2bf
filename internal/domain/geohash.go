package domain

import "strings"

// geohashAlphabet is the standard base-32 geohash alphabet. Note it omits
// a, i, l, and o.
const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// GeohashMode selects how characters outside the geohash alphabet are handled.
type GeohashMode int

const (
	// GeohashLenient skips unrecognized characters and decodes the rest.
	GeohashLenient GeohashMode = iota
	// GeohashStrict rejects the whole geohash on the first unrecognized character.
	GeohashStrict
)

// DecodeGeohash decodes a geohash into the midpoint of its bounding box.
// Unrecognized characters are skipped; the empty string decodes to {0, 0}.
// Input is case-insensitive.
func DecodeGeohash(geohash string) Coordinate {
	b, _ := decodeGeohashBounds(geohash, GeohashLenient)
	return b.mid()
}

// DecodeGeohashStrict decodes a geohash, reporting false if it contains any
// character outside the base-32 alphabet.
func DecodeGeohashStrict(geohash string) (Coordinate, bool) {
	b, ok := decodeGeohashBounds(geohash, GeohashStrict)
	if !ok {
		return Coordinate{}, false
	}
	return b.mid(), true
}

// geohashBounds is the bounding box carried through the bisection. Each
// decoded bit halves one axis; precision grows with geohash length.
type geohashBounds struct {
	latLo, latHi float64
	lngLo, lngHi float64
}

func (b geohashBounds) mid() Coordinate {
	return Coordinate{
		Lat: (b.latLo + b.latHi) / 2,
		Lng: (b.lngLo + b.lngHi) / 2,
	}
}

func (b geohashBounds) contains(c Coordinate) bool {
	return c.Lat >= b.latLo && c.Lat <= b.latHi &&
		c.Lng >= b.lngLo && c.Lng <= b.lngHi
}

// decodeGeohashBounds runs the interval-bisection decode. Bits alternate
// longitude first, then latitude; within a character the 5 bits are consumed
// most significant first, and a set bit keeps the upper half of the interval.
func decodeGeohashBounds(geohash string, mode GeohashMode) (geohashBounds, bool) {
	b := geohashBounds{latLo: -90, latHi: 90, lngLo: -180, lngHi: 180}
	lngNext := true

	for _, r := range strings.ToLower(geohash) {
		cd := strings.IndexRune(geohashAlphabet, r)
		if cd < 0 {
			if mode == GeohashStrict {
				return geohashBounds{}, false
			}
			continue
		}
		for bit := 4; bit >= 0; bit-- {
			upper := cd&(1<<bit) != 0
			if lngNext {
				mid := (b.lngLo + b.lngHi) / 2
				if upper {
					b.lngLo = mid
				} else {
					b.lngHi = mid
				}
			} else {
				mid := (b.latLo + b.latHi) / 2
				if upper {
					b.latLo = mid
				} else {
					b.latHi = mid
				}
			}
			lngNext = !lngNext
		}
	}
	return b, true
}
