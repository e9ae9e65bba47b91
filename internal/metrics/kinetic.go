// Package metrics provides per-step observers for simulation runs.
package metrics

import (
	"math"

	"github.com/selmank/peribar/internal/peri"
)

// KineticEnergy tracks the total kinetic energy of the bar,
// 0.5 * rho * Vol_i * v_i^2 summed over points, at the latest step.
type KineticEnergy struct {
	name    string
	density float64
	volume  peri.Field
	current float64
}

func NewKineticEnergy(density float64, volume peri.Field) *KineticEnergy {
	return &KineticEnergy{
		name:    "kinetic_energy",
		density: density,
		volume:  volume,
	}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(_, _, velocity peri.Field, _ float64) {
	e := 0.0
	for i, v := range velocity {
		e += 0.5 * k.density * k.volume[i] * v * v
	}
	k.current = e
}

func (k *KineticEnergy) Value() float64 { return k.current }

func (k *KineticEnergy) Reset() { k.current = 0 }

// MaxDisplacement tracks the largest point displacement magnitude seen
// over the whole run.
type MaxDisplacement struct {
	name string
	max  float64
}

func NewMaxDisplacement() *MaxDisplacement {
	return &MaxDisplacement{name: "max_displacement"}
}

func (m *MaxDisplacement) Name() string { return m.name }

func (m *MaxDisplacement) Observe(_, displacement, _ peri.Field, _ float64) {
	m.max = math.Max(m.max, displacement.MaxAbs())
}

func (m *MaxDisplacement) Value() float64 { return m.max }

func (m *MaxDisplacement) Reset() { m.max = 0 }
