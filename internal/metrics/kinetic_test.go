package metrics

import (
	"testing"

	"github.com/selmank/peribar/internal/peri"
)

func TestKineticEnergy(t *testing.T) {
	volume := peri.Field{2, 2}
	m := NewKineticEnergy(4.0, volume)

	velocity := peri.Field{1, 3}
	m.Observe(nil, nil, velocity, 0)

	// 0.5*4*2*(1 + 9) = 40
	if m.Value() != 40 {
		t.Errorf("kinetic energy = %g, expected 40", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the value")
	}
}

func TestMaxDisplacement(t *testing.T) {
	m := NewMaxDisplacement()

	m.Observe(nil, peri.Field{0.1, -0.5}, nil, 0)
	m.Observe(nil, peri.Field{0.2, -0.1}, nil, 1)

	if m.Value() != 0.5 {
		t.Errorf("max displacement = %g, expected 0.5 (running max)", m.Value())
	}
}
