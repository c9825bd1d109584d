// sim/simulator.go
package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/crossing-sim/crossing-sim/sim/trace"
)

// Simulator owns the partition of entities across origin, destination and the
// conveyance, and narrates every move into Trace.
// A Simulator is single-use and not safe for concurrent use.
type Simulator struct {
	Origin      *Location
	Destination *Location
	// Conveyance only holds entities during a crossing; it is empty between steps.
	Conveyance *Location
	Trace      *trace.Trace
	StepCount  int

	config   Config
	entities []Entity // indexed by EntityID
	cargo    Entity
}

// NewSimulator validates the scenario and places every person, followed by the cargo,
// at origin.
func NewSimulator(s *Scenario) (*Simulator, error) {
	if s == nil {
		return nil, NewConfigurationError("scenario", "must not be nil")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	entities := s.Entities()
	sim := &Simulator{
		Origin:      NewLocation(OriginName),
		Destination: NewLocation(DestinationName),
		Conveyance:  NewLocation(ConveyanceName),
		Trace:       trace.New(),
		config:      s.Config(),
		entities:    entities,
		cargo:       entities[len(entities)-1],
	}
	for _, e := range entities {
		sim.Origin.add(e)
	}
	return sim, nil
}

// Config returns the resolved run parameters.
func (sim *Simulator) Config() Config {
	return sim.config
}

// Cargo returns the cargo entity.
func (sim *Simulator) Cargo() Entity {
	return sim.cargo
}

// Entity looks up an entity by id.
func (sim *Simulator) Entity(id EntityID) (Entity, bool) {
	if int(id) >= len(sim.entities) {
		return Entity{}, false
	}
	return sim.entities[id], true
}

// Done reports whether the run is over. With the cargo kept back, a run is over once
// every person has left origin. With the cargo on board, it is over once origin holds at
// most one entity, which may strand a person whose only partner was the cargo.
func (sim *Simulator) Done() bool {
	if sim.config.CargoPolicy == CargoBoards {
		return sim.Origin.Len() <= 1
	}
	return !sim.Origin.HasPerson()
}

// awaitingReturn reports whether someone must bring the conveyance back after a crossing.
func (sim *Simulator) awaitingReturn() bool {
	if sim.config.CargoPolicy == CargoBoards {
		return sim.Origin.Len() > 0
	}
	return sim.Origin.HasPerson()
}

// Run steps the simulation until Done.
// The trace is returned even when the run fails, so callers can show how far it got.
func (sim *Simulator) Run() (*trace.Trace, error) {
	return sim.RunContext(context.Background())
}

// RunContext is Run with cancellation checked between steps.
func (sim *Simulator) RunContext(ctx context.Context) (*trace.Trace, error) {
	for !sim.Done() {
		if err := ctx.Err(); err != nil {
			return sim.Trace, fmt.Errorf("simulation interrupted at step %d: %w", sim.StepCount, err)
		}
		if err := sim.Step(); err != nil {
			logrus.Warnf("[step %04d] %v", sim.StepCount, err)
			return sim.Trace, err
		}
	}
	if stranded := len(sim.Origin.People()); stranded > 0 {
		logrus.Warnf("[step %04d] %d people left at %s", sim.StepCount, stranded, sim.Origin.Name())
	}
	logrus.Infof("[step %04d] Simulation ended", sim.StepCount)
	return sim.Trace, nil
}

// Step performs one crossing: snapshot, sort origin, carry a pair (or the heaviest
// entity alone) across, send the lightest person back while origin is still occupied,
// snapshot again. Calling Step when Done is a no-op.
func (sim *Simulator) Step() error {
	if sim.Done() {
		return nil
	}
	if sim.StepCount >= sim.config.MaxSteps {
		return &SimulationStalledError{Steps: sim.StepCount, Remaining: len(sim.Origin.People())}
	}
	sim.StepCount++
	step := sim.StepCount

	sim.snapshot(step)
	sim.Origin.sortByWeight()

	movers := sim.selectCrossing()
	if err := sim.cross(step, movers); err != nil {
		return err
	}

	if sim.awaitingReturn() {
		if returnee, ok := FindLightestPerson(sim.Destination.Entities()); ok {
			if err := sim.relocate([]Entity{returnee}, sim.Destination, sim.Origin); err != nil {
				return err
			}
			sim.Trace.RecordReturn(step, returnee.DisplayName(), returnee.Weight)
			logrus.Debugf("[step %04d] %s returns", step, returnee.DisplayName())
		}
	}

	sim.snapshot(step)
	return nil
}

// selectCrossing picks who boards: the first valid pair among the candidates at
// origin, otherwise the heaviest candidate alone.
func (sim *Simulator) selectCrossing() []Entity {
	candidates := sim.candidates()
	if pair, ok := FindLightestValidPair(candidates, sim.config.Capacity); ok {
		return pair
	}
	heaviest, _ := FindHeaviest(candidates)
	return []Entity{heaviest}
}

// candidates returns the entities at origin eligible to board, in origin order.
func (sim *Simulator) candidates() []Entity {
	if sim.config.CargoPolicy == CargoBoards {
		return sim.Origin.Entities()
	}
	return sim.Origin.People()
}

// cross moves the entities origin→conveyance→destination and records the crossing.
func (sim *Simulator) cross(step int, movers []Entity) error {
	if err := sim.relocate(movers, sim.Origin, sim.Conveyance); err != nil {
		return err
	}
	names := displayNames(movers)
	load := totalWeight(movers)
	sim.Trace.RecordCrossing(step, names, load)
	logrus.Debugf("[step %04d] crossing %v (load %d/%d)", step, names, load, sim.config.Capacity)
	return sim.relocate(movers, sim.Conveyance, sim.Destination)
}

// relocate moves entities between locations. Every entity is checked before anything
// moves, so a failed relocate leaves both locations untouched.
func (sim *Simulator) relocate(entities []Entity, from, to *Location) error {
	for _, e := range entities {
		if !from.Contains(e.ID) {
			return &RelocationError{Entity: e, From: from.Name(), To: to.Name()}
		}
	}
	for _, e := range entities {
		moved, _ := from.remove(e.ID)
		to.add(moved)
	}
	return nil
}

func (sim *Simulator) snapshot(step int) {
	sim.Trace.RecordSnapshot(step, sim.Origin.Names(), sim.Destination.Names())
}

func displayNames(entities []Entity) []string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.DisplayName()
	}
	return names
}
