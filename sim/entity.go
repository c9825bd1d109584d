// Defines the entities that take part in a crossing: people and the single cargo item.
// Identity is an explicit EntityID; weight is only an attribute.

package sim

import "strconv"

// CargoName is the fixed display name of the cargo item.
const CargoName = "Supplies"

// EntityID is the stable identity of an entity within one simulator.
// People are numbered 0..n-1 in input order and the cargo is n.
type EntityID uint32

// EntityKind tags an Entity as a person or the cargo.
type EntityKind int

const (
	KindPerson EntityKind = iota
	KindCargo
)

func (k EntityKind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindCargo:
		return "cargo"
	default:
		return "unknown"
	}
}

// Entity is a person or the cargo item.
type Entity struct {
	ID     EntityID
	Kind   EntityKind
	Name   string // person name; unused for cargo
	Weight int
}

// NewPerson creates a person entity.
func NewPerson(id EntityID, name string, weight int) Entity {
	return Entity{ID: id, Kind: KindPerson, Name: name, Weight: weight}
}

// NewCargo creates the cargo entity.
func NewCargo(id EntityID, weight int) Entity {
	return Entity{ID: id, Kind: KindCargo, Weight: weight}
}

// IsCargo reports whether the entity is the cargo item.
func (e Entity) IsCargo() bool {
	return e.Kind == KindCargo
}

// DisplayName renders the entity for the trace. The cargo is always CargoName;
// a person without a name falls back to its weight.
func (e Entity) DisplayName() string {
	if e.IsCargo() {
		return CargoName
	}
	if e.Name == "" {
		return strconv.Itoa(e.Weight)
	}
	return e.Name
}

// totalWeight sums the weights of the given entities.
func totalWeight(entities []Entity) int {
	total := 0
	for _, e := range entities {
		total += e.Weight
	}
	return total
}
