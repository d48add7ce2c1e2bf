// Package domain extracts geospatial and descriptive metadata from Nostr
// events and normalizes them into location events for map display.
//
// # Data Source
//
// Raw events originate from Nostr relays. The upstream relay gateway holds
// the websocket subscriptions, deduplicates events across relays, and
// publishes each event as JSON to the Kafka source topic. The kinds it
// subscribes to are the location-bearing NIPs:
//
//	NIP-52 calendar events:      31922 (date), 31923 (time), 31924, 31925
//	NIP-99 classified listings:  30402, 30403 (draft)
//	NIP-53 live activities:      30311, 30312, 30313
//	NIP-15 marketplace:          30017 (stall), 30018 (product)
//	NIP-01 notes with a g tag:   1
//
// # Tag Conventions
//
// A tag is an ordered list of strings; element 0 names its role:
//
//	["g", "9q8yyk"]                     geohash of the event's position
//	["location", "40.7128, -74.0060"]   free-text location, sometimes coordinates
//	["title", ...] ["summary", ...]     display metadata
//	["image", ...] ["status", ...]
//	["price", "25", "USD", "month"]     amount, currency, optional frequency
//
// Repeated tags follow last-wins semantics. Unrecognized tags are preserved
// verbatim on the output record.
//
// # Coordinate Resolution
//
// A geohash tag takes priority. Otherwise the location string is matched
// against coordinate patterns (bare decimal pair, labeled lat/lon,
// degree/hemisphere notation) in that order. Events resolving to neither
// coordinates nor a location string carry nothing a map can anchor, so they
// are dropped: an absent result, never an error, so one bad record cannot
// invalidate a batch.
//
// # Geohash Decoding
//
// Geohashes encode a bounding box by alternating longitude/latitude interval
// bisection over the base-32 alphabet "0123456789bcdefghjkmnpqrstuvwxyz";
// decoding returns the box midpoint. Characters outside the alphabet are
// skipped in lenient mode (the historical behavior) or reject the whole
// geohash in strict mode; the choice is configuration, see [GeohashMode].
//
// # Title Synthesis
//
// Events without a title tag get the first 50 characters of their content,
// or the kind's display label when the content is empty too.
package domain
