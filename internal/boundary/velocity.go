// Package boundary implements prescribed-velocity boundary conditions
// with per-step value schedules.
package boundary

import (
	"fmt"

	"github.com/selmank/peribar/internal/peri"
)

// ValueFunc maps simulated time to a prescribed velocity.
type ValueFunc func(t float64) float64

// Constant returns a ValueFunc that ignores time.
func Constant(v float64) ValueFunc {
	return func(float64) float64 { return v }
}

// Velocity overrides the half-step velocity of a fixed set of points at
// every step. Values are sampled from the constraint function once per
// run, during Precompute, so the hot loop only does table lookups.
type Velocity struct {
	Name     string
	fn       ValueFunc
	points   map[int]struct{}
	indices  []int
	schedule []float64
}

// NewVelocity builds a condition governing the given point indices.
// Duplicate indices collapse; membership is what matters.
func NewVelocity(name string, fn ValueFunc, indices []int) *Velocity {
	bc := &Velocity{
		Name:    name,
		fn:      fn,
		points:  make(map[int]struct{}, len(indices)),
		indices: append([]int(nil), indices...),
	}
	for _, i := range indices {
		bc.points[i] = struct{}{}
	}
	return bc
}

// Validate rejects point indices outside [0, n). Out-of-range indices
// are a configuration error, never a silent no-op at runtime.
func (bc *Velocity) Validate(n int) error {
	for _, i := range bc.indices {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: condition %q references point %d of %d",
				peri.ErrIndexOutOfRange, bc.Name, i, n)
		}
	}
	return nil
}

// Precompute samples the constraint function at times dt, 2dt, ..., T*dt
// (one entry per step, never time zero). It must be called again
// whenever the step count or step size changes; stale schedules from a
// previous run are invalid.
func (bc *Velocity) Precompute(steps int, dt float64) {
	bc.schedule = make([]float64, steps)
	for s := 1; s <= steps; s++ {
		bc.schedule[s-1] = bc.fn(float64(s) * dt)
	}
}

// Governs reports whether the condition applies to point i.
func (bc *Velocity) Governs(i int) bool {
	_, ok := bc.points[i]
	return ok
}

// At returns the scheduled value for the 1-indexed step.
func (bc *Velocity) At(step int) float64 {
	return bc.schedule[step-1]
}

// ScheduleLen reports how many steps the current schedule covers.
func (bc *Velocity) ScheduleLen() int { return len(bc.schedule) }
