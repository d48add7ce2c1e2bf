package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// bareCoordRe matches an entire string of the form "40.7128, -74.0060".
	bareCoordRe = regexp.MustCompile(`^(-?\d+\.?\d*),\s*(-?\d+\.?\d*)$`)

	// labeledCoordRe matches "lat: 51.5, lon: -0.12" anywhere in the string.
	labeledCoordRe = regexp.MustCompile(`(?i)lat:\s*(-?\d+\.?\d*),?\s*lon:\s*(-?\d+\.?\d*)`)

	// hemisphereCoordRe matches degree/hemisphere notation like
	// "37.7749° N, 122.4194° W" or "37.7749 N 122.4194 W".
	hemisphereCoordRe = regexp.MustCompile(`(?i)(-?\d+\.?\d*)[°\s]+([NS])\s*,?\s*(-?\d+\.?\d*)[°\s]+([EW])`)
)

// ParseCoordinates attempts to extract a coordinate pair from a free-text
// location string. Patterns are tried in fixed priority order and the first
// match wins: bare decimal pair, labeled lat/lon, degree/hemisphere notation.
// Returns false when no pattern matches.
func ParseCoordinates(location string) (Coordinate, bool) {
	if m := bareCoordRe.FindStringSubmatch(location); m != nil {
		return coordFromPair(m[1], m[2])
	}
	if m := labeledCoordRe.FindStringSubmatch(location); m != nil {
		return coordFromPair(m[1], m[2])
	}
	if m := hemisphereCoordRe.FindStringSubmatch(location); m != nil {
		return coordFromHemispheres(m[1], m[2], m[3], m[4])
	}
	return Coordinate{}, false
}

// coordFromPair parses two decimal strings as latitude and longitude.
// The regexes above only admit valid float syntax, but parse failures are
// still treated as "no coordinate" rather than trusted to be impossible.
func coordFromPair(latStr, lngStr string) (Coordinate, bool) {
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lng: lng}, true
}

// coordFromHemispheres composes a coordinate from degree/hemisphere captures.
// The magnitude is taken as absolute; S and W hemispheres negate their axis.
func coordFromHemispheres(latStr, ns, lngStr, ew string) (Coordinate, bool) {
	c, ok := coordFromPair(latStr, lngStr)
	if !ok {
		return Coordinate{}, false
	}
	c.Lat = math.Abs(c.Lat)
	c.Lng = math.Abs(c.Lng)
	if strings.EqualFold(ns, "S") {
		c.Lat = -c.Lat
	}
	if strings.EqualFold(ew, "W") {
		c.Lng = -c.Lng
	}
	return c, true
}
