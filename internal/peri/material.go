package peri

import "fmt"

// Material holds the bond-based peridynamic material parameters.
// BondConstant is derived from Young's modulus and horizon in the
// underlying theory; here it is an opaque input. CriticalStretch is
// the bond-breaking threshold: stored for forward compatibility with
// damage modeling but never evaluated by the solver.
type Material struct {
	Horizon         float64
	BondConstant    float64
	Density         float64
	CriticalStretch float64
}

func (m Material) Validate() error {
	if m.Horizon <= 0 {
		return fmt.Errorf("%w: horizon %g", ErrInvalidMaterial, m.Horizon)
	}
	if m.BondConstant <= 0 {
		return fmt.Errorf("%w: bond constant %g", ErrInvalidMaterial, m.BondConstant)
	}
	if m.Density <= 0 {
		return fmt.Errorf("%w: density %g", ErrInvalidMaterial, m.Density)
	}
	return nil
}
