package losses

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfiguration marks inputs outside their documented domain
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNumericDegenerate marks a stage formula that would divide by a near-zero
	// denominator or otherwise produce a non-finite result
	ErrNumericDegenerate = errors.New("numeric degenerate")
)

// ConfigError describes a rejected input field
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// DegenerateError describes a stage quantity that cannot be evaluated
type DegenerateError struct {
	Quantity string
	Reason   string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("numeric degenerate: %s %s", e.Quantity, e.Reason)
}

func (e *DegenerateError) Unwrap() error {
	return ErrNumericDegenerate
}

func invalid(field, format string, args ...interface{}) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func degenerate(quantity, format string, args ...interface{}) error {
	return &DegenerateError{Quantity: quantity, Reason: fmt.Sprintf(format, args...)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// requirePositive rejects zero, negative and non-finite values
func requirePositive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return invalid(field, "must be positive, got %g", v)
	}
	return nil
}

// requireNonNegative rejects negative and non-finite values
func requireNonNegative(field string, v float64) error {
	if !finite(v) || v < 0 {
		return invalid(field, "must be non-negative, got %g", v)
	}
	return nil
}

// checkFinite rejects a stage result containing NaN or Inf
func checkFinite(quantity string, values []float64) error {
	for i, v := range values {
		if !finite(v) {
			return degenerate(quantity, "is not finite at station %d", i)
		}
	}
	return nil
}
