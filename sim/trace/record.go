// Package trace provides the narrated record of a crossing simulation.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import (
	"fmt"
	"strings"
)

// Location labels used when rendering records.
const (
	OriginLabel      = "Side A"
	DestinationLabel = "Side B"

	// lowercase forms used mid-sentence in action lines
	originRef      = "side A"
	destinationRef = "side B"
)

// RecordKind identifies what a Record describes.
type RecordKind string

const (
	// KindSnapshot is the contents of both locations at a point in time.
	KindSnapshot RecordKind = "snapshot"
	// KindCrossing is one or two entities carried from origin to destination.
	KindCrossing RecordKind = "crossing"
	// KindReturn is an entity sent back from destination to origin.
	KindReturn RecordKind = "return"
)

// Record captures a single entry of the trace.
type Record struct {
	Kind        RecordKind
	Step        int      // 1-based simulation step that produced the record
	Origin      []string // snapshot only: display names at origin, in location order
	Destination []string // snapshot only: display names at destination, in location order
	Movers      []string // crossing/return: display names in boarding order
	Load        int      // crossing/return: combined weight of Movers
}

// String renders the record as a single trace line.
func (r Record) String() string {
	switch r.Kind {
	case KindSnapshot:
		return fmt.Sprintf("%s: %s, %s: %s",
			OriginLabel, strings.Join(r.Origin, ", "),
			DestinationLabel, strings.Join(r.Destination, ", "))
	case KindCrossing:
		return fmt.Sprintf("Crossing: %s cross to %s", strings.Join(r.Movers, ", "), destinationRef)
	case KindReturn:
		return fmt.Sprintf("%s returns to %s", strings.Join(r.Movers, ", "), originRef)
	default:
		return fmt.Sprintf("unknown record kind %q", r.Kind)
	}
}
