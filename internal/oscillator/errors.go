package oscillator

import (
	"errors"
	"fmt"
)

// Domain errors for oscillator runs.
var (
	// ErrInvalidParameter indicates an input that is not a usable real number.
	ErrInvalidParameter = errors.New("oscillator: invalid parameter")

	// ErrOverdamped indicates gamma >= omega0: no oscillatory solution
	// exists in this model. Not a fault, a modeled terminal condition.
	ErrOverdamped = errors.New("oscillator: overdamped or critically damped")
)

// ParameterError wraps ErrInvalidParameter with the offending field.
type ParameterError struct {
	Field string
	Raw   string
	Cause error
}

func (e *ParameterError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("parameter %s: invalid value %q", e.Field, e.Raw)
	}
	return fmt.Sprintf("parameter %s: %v", e.Field, e.Cause)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }
