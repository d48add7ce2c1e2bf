package domain

import (
	"math"
	"strconv"
)

// InterpretTags walks an event's tag list and collects the fields relevant to
// location display. Recognized tag names dispatch on element 0; repeated tags
// follow last-wins semantics. Unrecognized tags contribute nothing here but
// the full tag list is retained verbatim for downstream consumers.
func InterpretTags(tags [][]string, mode GeohashMode) ExtractedFields {
	fields := ExtractedFields{Tags: tags}

	for _, tag := range tags {
		if len(tag) == 0 {
			continue
		}
		name, values := tag[0], tag[1:]

		switch name {
		case "g":
			if len(values) > 0 && values[0] != "" {
				if c, ok := decodeTagGeohash(values[0], mode); ok {
					fields.Coordinates = &c
				}
			}
		case "location":
			if len(values) > 0 {
				fields.Location = values[0]
			}
		case "title":
			if len(values) > 0 {
				fields.Title = values[0]
			}
		case "summary":
			if len(values) > 0 {
				fields.Summary = values[0]
			}
		case "image":
			if len(values) > 0 {
				fields.Image = values[0]
			}
		case "status":
			if len(values) > 0 {
				fields.Status = values[0]
			}
		case "price":
			if len(values) >= 2 {
				price := Price{
					Amount:   parseFloatOrNaN(values[0]),
					Currency: values[1],
				}
				if len(values) >= 3 {
					price.Frequency = values[2]
				}
				fields.Price = &price
			}
		}
	}

	return fields
}

// decodeTagGeohash decodes a "g" tag value under the configured mode. In
// strict mode a geohash with any unrecognized character is ignored entirely,
// leaving any previously decoded coordinates in place.
func decodeTagGeohash(geohash string, mode GeohashMode) (Coordinate, bool) {
	if mode == GeohashStrict {
		return DecodeGeohashStrict(geohash)
	}
	return DecodeGeohash(geohash), true
}

// parseFloatOrNaN parses a decimal string, returning NaN on failure. Malformed
// numbers never raise; NaN is the "field effectively absent" sentinel and is
// stripped before serialization.
func parseFloatOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
