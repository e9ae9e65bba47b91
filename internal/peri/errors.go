package peri

import (
	"errors"
	"fmt"
)

// Domain errors for simulation setup and stepping.
var (
	// ErrInvalidGeometry indicates a non-positive bar length or spacing.
	ErrInvalidGeometry = errors.New("peri: invalid geometry")

	// ErrInvalidMaterial indicates a non-positive material parameter.
	ErrInvalidMaterial = errors.New("peri: invalid material parameter")

	// ErrDegenerateTopology indicates a bond topology the estimator or
	// force loop cannot work with (no bonds anywhere, or a bond whose
	// current length collapsed to zero).
	ErrDegenerateTopology = errors.New("peri: degenerate topology")

	// ErrIndexOutOfRange indicates a boundary condition referencing a
	// point index outside the cloud.
	ErrIndexOutOfRange = errors.New("peri: point index out of range")

	// ErrInvalidState indicates NaN or Inf appeared in kinematic state.
	ErrInvalidState = errors.New("peri: invalid state (NaN or Inf detected)")

	// ErrNotReady indicates Run or Step was called before Setup.
	ErrNotReady = errors.New("peri: solver not set up")

	// ErrCompleted indicates Step was called after the configured
	// step count had already been reached.
	ErrCompleted = errors.New("peri: run already completed")
)

// StepError wraps an error with the step it occurred on.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
