package solver

import (
	"time"

	"github.com/selmank/peribar/internal/peri"
)

type Config struct {
	// Steps is the total number of integration steps.
	Steps int
	// ExportEvery is the snapshot interval in steps.
	ExportEvery int
	// Dt overrides the stable-timestep estimate when positive.
	Dt float64
	// InitialDisplacement seeds the run with a displaced configuration.
	// Nil means the undeformed reference grid; otherwise length must
	// equal the point count.
	InitialDisplacement peri.Field
}

func DefaultConfig() Config {
	return Config{
		Steps:       1000,
		ExportEvery: 10,
	}
}

// Snapshot is the read-only state handed to exporters. Fields are
// copies; exporters may keep them.
type Snapshot struct {
	Step         int
	Time         float64
	Position     peri.Field
	Displacement peri.Field
}

// Exporter receives periodic snapshots during a run.
type Exporter interface {
	WriteSnapshot(s Snapshot) error
}

type Result struct {
	Steps        int
	Dt           float64
	Points       int
	Bonds        int
	Elapsed      time.Duration
	Metrics      map[string]float64
	Position     peri.Field
	Displacement peri.Field
	Velocity     peri.Field
}
