package sim

// CargoPolicy selects whether the cargo may board the conveyance.
type CargoPolicy string

const (
	// CargoStays keeps the cargo out of every crossing; it remains at origin.
	CargoStays CargoPolicy = "stay"
	// CargoBoards lets the cargo take part in the pair search and the heaviest fallback,
	// the way the original puzzle narration does. The cargo still never returns. A run
	// ends once origin holds at most one entity, and someone returns whenever origin is
	// occupied after a crossing.
	CargoBoards CargoPolicy = "board"
)

// ValidCargoPolicies is the set of recognized cargo policy names.
// Empty means "not set" and resolves to CargoStays.
var ValidCargoPolicies = map[CargoPolicy]bool{"": true, CargoStays: true, CargoBoards: true}

const (
	// DefaultCapacity is the maximum combined weight the conveyance carries per trip.
	DefaultCapacity = 100
	// DefaultMaxSteps bounds the number of crossings before a run is declared stalled.
	DefaultMaxSteps = 1000
)

// Config groups the simulator parameters that are not entities.
type Config struct {
	Capacity    int         // max combined weight of a pair (must be > 0)
	MaxSteps    int         // step limit before SimulationStalled (must be > 0)
	CargoPolicy CargoPolicy // "stay" (default) or "board"
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:    DefaultCapacity,
		MaxSteps:    DefaultMaxSteps,
		CargoPolicy: CargoStays,
	}
}

// Validate checks parameter ranges and policy names.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return NewConfigurationError("capacity", "must be positive, got %d", c.Capacity)
	}
	if c.MaxSteps <= 0 {
		return NewConfigurationError("max_steps", "must be positive, got %d", c.MaxSteps)
	}
	if !ValidCargoPolicies[c.CargoPolicy] {
		return NewConfigurationError("cargo_policy", "unknown policy %q (want %q or %q)", c.CargoPolicy, CargoStays, CargoBoards)
	}
	return nil
}
