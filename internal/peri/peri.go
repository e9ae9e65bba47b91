package peri

import "math"

// Field is a per-point scalar array.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (f Field) MaxAbs() float64 {
	m := 0.0
	for _, v := range f {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

// Zero resets every entry in place.
func (f Field) Zero() {
	for i := range f {
		f[i] = 0
	}
}

// Metric observes the kinematic state once per step and reports a
// scalar at the end of a run.
type Metric interface {
	Name() string
	Observe(position, displacement, velocity Field, t float64)
	Value() float64
	Reset()
}
