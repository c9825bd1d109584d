package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the full input of a run: the people, the cargo and the run parameters.
// Loaded from YAML via LoadScenario(path) or built in code via NewScenario.
// Zero-valued parameters fall back to DefaultConfig().
type Scenario struct {
	Version     string       `yaml:"version"`
	Capacity    int          `yaml:"capacity,omitempty"`
	MaxSteps    int          `yaml:"max_steps,omitempty"`
	CargoPolicy CargoPolicy  `yaml:"cargo_policy,omitempty"`
	Cargo       CargoSpec    `yaml:"cargo"`
	People      []PersonSpec `yaml:"people"`
}

// PersonSpec describes one person.
type PersonSpec struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// CargoSpec describes the cargo item. Its name is always CargoName.
type CargoSpec struct {
	Weight int `yaml:"weight"`
}

// NewScenario builds a scenario from parallel weight and name lists plus the cargo weight.
// The lists must have the same length; the result is validated before it is returned.
func NewScenario(weights []int, names []string, cargoWeight int) (*Scenario, error) {
	if len(weights) != len(names) {
		return nil, NewConfigurationError("people", "%d weights but %d names", len(weights), len(names))
	}
	s := &Scenario{Version: "1", Cargo: CargoSpec{Weight: cargoWeight}}
	for i, w := range weights {
		s.People = append(s.People, PersonSpec{Name: names[i], Weight: w})
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReferenceScenario returns the classic instance: four people, 20kg of supplies and a
// 100kg conveyance.
func ReferenceScenario() *Scenario {
	return &Scenario{
		Version:  "1",
		Capacity: DefaultCapacity,
		Cargo:    CargoSpec{Weight: 20},
		People: []PersonSpec{
			{Name: "Roman", Weight: 90},
			{Name: "Verlyn", Weight: 80},
			{Name: "Lloyd", Weight: 60},
			{Name: "Robin", Weight: 40},
		},
	}
}

// LoadScenario reads, strictly parses and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// ParseScenario parses and validates YAML scenario data. Unknown fields are rejected so
// that typos surface as errors.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewConfigurationError("scenario", "empty document")
		}
		return nil, NewConfigurationErrorWithCause("scenario", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Config resolves the run parameters, substituting defaults for unset fields.
func (s *Scenario) Config() Config {
	cfg := DefaultConfig()
	if s.Capacity != 0 {
		cfg.Capacity = s.Capacity
	}
	if s.MaxSteps != 0 {
		cfg.MaxSteps = s.MaxSteps
	}
	if s.CargoPolicy != "" {
		cfg.CargoPolicy = s.CargoPolicy
	}
	return cfg
}

// Validate checks the scenario. Weights must be positive and pairwise distinct,
// cargo included.
func (s *Scenario) Validate() error {
	if s.Version != "" && s.Version != "1" {
		return NewConfigurationError("version", "unsupported version %q", s.Version)
	}
	if err := s.Config().Validate(); err != nil {
		return err
	}
	if s.Cargo.Weight <= 0 {
		return NewConfigurationError("cargo.weight", "must be positive, got %d", s.Cargo.Weight)
	}

	seen := map[int]string{s.Cargo.Weight: CargoName}
	for i, p := range s.People {
		field := fmt.Sprintf("people[%d].weight", i)
		if p.Weight <= 0 {
			return NewConfigurationError(field, "must be positive, got %d", p.Weight)
		}
		if other, dup := seen[p.Weight]; dup {
			return NewConfigurationError(field, "weight %d of %q is already used by %q", p.Weight, p.Name, other)
		}
		seen[p.Weight] = p.Name
	}
	return nil
}

// Entities builds the entity table: people in input order with ids 0..n-1, then the cargo.
func (s *Scenario) Entities() []Entity {
	entities := make([]Entity, 0, len(s.People)+1)
	for i, p := range s.People {
		entities = append(entities, NewPerson(EntityID(i), p.Name, p.Weight))
	}
	return append(entities, NewCargo(EntityID(len(s.People)), s.Cargo.Weight))
}
