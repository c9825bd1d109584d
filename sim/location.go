// Implements Location, an ordered collection of entities indexed by identity.
// Origin, destination and the conveyance are all Locations.

package sim

import (
	"cmp"
	"slices"

	"github.com/kamstrup/intmap"
)

// Location names used in logs and errors.
const (
	OriginName      = "origin"
	DestinationName = "destination"
	ConveyanceName  = "conveyance"
)

// Location keeps entities in arrival order, with an identity index for membership checks.
// Mutation is package-private so that every move goes through Simulator.relocate.
type Location struct {
	name    string
	order   []EntityID
	members *intmap.Map[EntityID, Entity]
}

// NewLocation creates an empty location.
func NewLocation(name string) *Location {
	return &Location{
		name:    name,
		order:   make([]EntityID, 0),
		members: intmap.New[EntityID, Entity](8),
	}
}

// Name returns the location name.
func (l *Location) Name() string {
	return l.name
}

// Len returns the number of entities at the location.
func (l *Location) Len() int {
	return len(l.order)
}

// Contains reports whether the entity is at the location.
func (l *Location) Contains(id EntityID) bool {
	_, ok := l.members.Get(id)
	return ok
}

// Entities returns a copy of the location contents in order.
func (l *Location) Entities() []Entity {
	out := make([]Entity, 0, len(l.order))
	for _, id := range l.order {
		e, _ := l.members.Get(id)
		out = append(out, e)
	}
	return out
}

// Names returns the display names of the location contents in order.
func (l *Location) Names() []string {
	names := make([]string, 0, len(l.order))
	for _, e := range l.Entities() {
		names = append(names, e.DisplayName())
	}
	return names
}

// People returns the non-cargo entities in order.
func (l *Location) People() []Entity {
	out := make([]Entity, 0, len(l.order))
	for _, e := range l.Entities() {
		if !e.IsCargo() {
			out = append(out, e)
		}
	}
	return out
}

// HasPerson reports whether at least one non-cargo entity is at the location.
func (l *Location) HasPerson() bool {
	for _, id := range l.order {
		if e, _ := l.members.Get(id); !e.IsCargo() {
			return true
		}
	}
	return false
}

func (l *Location) add(e Entity) {
	l.order = append(l.order, e.ID)
	l.members.Put(e.ID, e)
}

func (l *Location) remove(id EntityID) (Entity, bool) {
	e, ok := l.members.Get(id)
	if !ok {
		return Entity{}, false
	}
	l.members.Del(id)
	l.order = slices.DeleteFunc(l.order, func(other EntityID) bool { return other == id })
	return e, true
}

// sortByWeight orders the location ascending by weight. Stable, so equal weights keep
// their relative order.
func (l *Location) sortByWeight() {
	slices.SortStableFunc(l.order, func(a, b EntityID) int {
		ea, _ := l.members.Get(a)
		eb, _ := l.members.Get(b)
		return cmp.Compare(ea.Weight, eb.Weight)
	})
}
