// Package sim provides the crossing simulation engine.
//
// # Reading Guide
//
// Start with these files:
//   - entity.go: people and the cargo, identified by EntityID rather than weight
//   - location.go: ordered, identity-indexed collections for origin, destination and conveyance
//   - heuristic.go: first-fit pair search, heaviest fallback, lightest returnee
//   - simulator.go: the step loop, checked relocation and trace narration
//
// # Configuration
//
// A Scenario (scenario.go) carries the people, the cargo and the run parameters, either
// built with NewScenario or loaded from YAML with LoadScenario. Config (config.go) holds
// the capacity threshold, the step limit and the CargoPolicy that decides whether the
// cargo may board.
//
// # Errors
//
// All failures are typed (errors.go) and unwrap to ErrConfiguration, ErrRelocation or
// ErrSimulationStalled.
//
// The narrated output lives in sim/trace, which has no dependency on this package.
package sim
