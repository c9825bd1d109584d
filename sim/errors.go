package sim

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below unwraps to one of these so callers can
// classify failures with errors.Is.
var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrRelocation        = errors.New("invalid relocation")
	ErrSimulationStalled = errors.New("simulation stalled")
)

// ConfigurationError reports an unusable scenario or simulator configuration.
type ConfigurationError struct {
	Field  string
	Reason string
	Cause  error
}

// NewConfigurationError creates a ConfigurationError for the given field.
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NewConfigurationErrorWithCause creates a ConfigurationError wrapping an underlying error.
func NewConfigurationErrorWithCause(field string, cause error) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: cause.Error(), Cause: cause}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConfiguration, e.Cause}
	}
	return []error{ErrConfiguration}
}

// RelocationError reports an attempt to move an entity out of a location it is not in.
type RelocationError struct {
	Entity Entity
	From   string
	To     string
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("%s: %s (id %d) is not at %s, cannot move it to %s",
		ErrRelocation, e.Entity.DisplayName(), e.Entity.ID, e.From, e.To)
}

func (e *RelocationError) Unwrap() error {
	return ErrRelocation
}

// SimulationStalledError reports that the step limit was reached while people
// were still waiting at origin.
type SimulationStalledError struct {
	Steps     int
	Remaining int // people still at origin
}

func (e *SimulationStalledError) Error() string {
	return fmt.Sprintf("%s: %d people still at origin after %d steps", ErrSimulationStalled, e.Remaining, e.Steps)
}

func (e *SimulationStalledError) Unwrap() error {
	return ErrSimulationStalled
}
