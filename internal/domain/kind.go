package domain

import "fmt"

// kindLabels maps Nostr event kinds to display labels. It covers the kinds
// the relay gateway subscribes to plus their draft/RSVP siblings so the table
// stays consistent with any category configuration.
var kindLabels = map[int]string{
	1:     "Note",
	30017: "Marketplace Stall",
	30018: "Marketplace Product",
	30311: "Live Stream",
	30312: "Meeting Space",
	30313: "Meeting Room",
	30402: "Classified Listing",
	30403: "Draft Listing",
	31922: "Calendar Event (Date)",
	31923: "Calendar Event (Time)",
	31924: "Calendar",
	31925: "Calendar RSVP",
}

// KindLabel returns the display label for an event kind. Unknown kinds get a
// synthesized label containing the raw number rather than failing.
func KindLabel(kind int) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return fmt.Sprintf("Event (%d)", kind)
}

// Category names a group of event kinds requested together from relays.
type Category struct {
	Name  string `yaml:"name" json:"name"`
	Kinds []int  `yaml:"kinds" json:"kinds"`
}

// DefaultCategories mirrors the relay gateway's subscription filters:
// NIP-52 calendar events, NIP-99 classified listings, NIP-53 live activities,
// NIP-15 marketplace stalls/products, and geotagged notes.
func DefaultCategories() []Category {
	return []Category{
		{Name: "calendar", Kinds: []int{31922, 31923, 31924, 31925}},
		{Name: "classifieds", Kinds: []int{30402, 30403}},
		{Name: "live", Kinds: []int{30311, 30312, 30313}},
		{Name: "marketplace", Kinds: []int{30017, 30018}},
		{Name: "notes", Kinds: []int{1}},
	}
}

// KindSet is the union of kinds across a set of categories.
type KindSet map[int]struct{}

// NewKindSet builds a KindSet from categories.
func NewKindSet(categories []Category) KindSet {
	set := make(KindSet)
	for _, cat := range categories {
		for _, kind := range cat.Kinds {
			set[kind] = struct{}{}
		}
	}
	return set
}

// Contains reports whether kind is in the set. A nil or empty set admits
// every kind, so an unconfigured filter passes everything through.
func (s KindSet) Contains(kind int) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[kind]
	return ok
}
