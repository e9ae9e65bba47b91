package solver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/selmank/peribar/internal/bonds"
	"github.com/selmank/peribar/internal/boundary"
	"github.com/selmank/peribar/internal/peri"
)

type phase int

const (
	phaseNew phase = iota
	phaseReady
	phaseDone
)

// Integrator advances a point cloud through explicit central-difference
// time integration with bond forces. Lifecycle: New, optional AddMetric
// and AddExporter, Setup, then either Run for a whole batch or Step for
// externally paced advancement (the live view does the latter).
type Integrator struct {
	cloud     *peri.PointCloud
	mat       peri.Material
	bcs       []*boundary.Velocity
	metrics   []peri.Metric
	exporters []Exporter

	cfg   Config
	topo  *bonds.Topology
	dt    float64
	step  int
	phase phase

	position     peri.Field
	displacement peri.Field
	velocity     peri.Field
	velocityHalf peri.Field
	acceleration peri.Field
	force        peri.Field
}

func New(cloud *peri.PointCloud, mat peri.Material, bcs []*boundary.Velocity) *Integrator {
	return &Integrator{cloud: cloud, mat: mat, bcs: bcs}
}

func (s *Integrator) AddMetric(m peri.Metric) { s.metrics = append(s.metrics, m) }
func (s *Integrator) AddExporter(e Exporter)  { s.exporters = append(s.exporters, e) }

// Setup validates the configuration, builds the bond topology, derives
// the time step, and precomputes every boundary-condition schedule.
// It is safe to call again with a different Config; schedules are
// resampled rather than reused, since a schedule is only valid for the
// step count and step size it was built for.
func (s *Integrator) Setup(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.ExportEvery <= 0 {
		return fmt.Errorf("export interval must be positive, got %d", cfg.ExportEvery)
	}
	if cfg.Dt < 0 {
		return fmt.Errorf("dt must not be negative, got %g", cfg.Dt)
	}
	if err := s.mat.Validate(); err != nil {
		return err
	}
	if s.cloud.N == 0 {
		return fmt.Errorf("%w: point cloud is empty", peri.ErrInvalidGeometry)
	}
	for _, bc := range s.bcs {
		if err := bc.Validate(s.cloud.N); err != nil {
			return err
		}
	}

	topo, err := bonds.Build(s.cloud, s.mat.Horizon)
	if err != nil {
		return err
	}
	s.topo = topo

	dt := cfg.Dt
	if dt == 0 {
		dt, err = bonds.StableTimestep(s.cloud, s.mat, topo)
		if err != nil {
			return err
		}
	}
	s.dt = dt

	for _, bc := range s.bcs {
		bc.Precompute(cfg.Steps, dt)
	}

	n := s.cloud.N
	if cfg.InitialDisplacement != nil && len(cfg.InitialDisplacement) != n {
		return fmt.Errorf("initial displacement has %d entries for %d points",
			len(cfg.InitialDisplacement), n)
	}
	s.position = s.cloud.Position.Clone()
	if len(s.displacement) != n {
		s.displacement = make(peri.Field, n)
		s.velocity = make(peri.Field, n)
		s.velocityHalf = make(peri.Field, n)
		s.acceleration = make(peri.Field, n)
		s.force = make(peri.Field, n)
	} else {
		s.displacement.Zero()
		s.velocity.Zero()
		s.velocityHalf.Zero()
		s.acceleration.Zero()
		s.force.Zero()
	}
	if cfg.InitialDisplacement != nil {
		copy(s.displacement, cfg.InitialDisplacement)
		for i := 0; i < n; i++ {
			s.position[i] += s.displacement[i]
		}
	}

	s.cfg = cfg
	s.step = 0
	s.phase = phaseReady
	for _, m := range s.metrics {
		m.Reset()
	}
	return nil
}

// Step advances one integration step. The sweep is split in two: first
// every point's position is advanced from its half-step velocity, then
// every force is computed from the fully advanced positions. The
// reference scheme interleaved the two, letting a force read a
// neighbor position already advanced within the same step; splitting
// restores the start-of-step position semantics the central-difference
// scheme assumes.
func (s *Integrator) Step() error {
	if s.phase == phaseDone {
		return peri.ErrCompleted
	}
	if s.phase != phaseReady {
		return peri.ErrNotReady
	}
	// Schedules hold exactly cfg.Steps entries; stepping past them is
	// the terminal state, not an index error.
	if s.step >= s.cfg.Steps {
		s.phase = phaseDone
		return peri.ErrCompleted
	}
	s.step++
	n := s.cloud.N
	dt := s.dt
	t := float64(s.step) * dt

	for i := 0; i < n; i++ {
		vh := s.velocity[i] + s.acceleration[i]*0.5*dt
		s.velocityHalf[i] = vh
	}
	// Overrides replace the half-step velocity outright; with several
	// conditions on one point, declaration order decides and the last
	// one wins.
	for _, bc := range s.bcs {
		for i := 0; i < n; i++ {
			if bc.Governs(i) {
				s.velocityHalf[i] = bc.At(s.step)
			}
		}
	}
	for i := 0; i < n; i++ {
		d := s.velocityHalf[i] * dt
		s.displacement[i] += d
		s.position[i] += d
	}

	for i := 0; i < n; i++ {
		f := 0.0
		lo, hi := s.topo.Range(i)
		for b := lo; b < hi; b++ {
			j := s.topo.Neighbor[b]
			rel := s.position[j] - s.position[i]
			l := math.Abs(rel)
			if l == 0 {
				return &peri.StepError{Step: s.step, Time: t, Wrapped: fmt.Errorf(
					"%w: points %d and %d coincide", peri.ErrDegenerateTopology, i, j)}
			}
			l0 := s.topo.InitialLength[b]
			strain := (l - l0) / l0
			f += s.mat.BondConstant * strain / l * s.cloud.Volume[j] * rel
		}
		s.force[i] = f
		s.acceleration[i] = f / s.mat.Density
		s.velocity[i] = s.velocityHalf[i] + s.acceleration[i]*0.5*dt
	}

	if !s.velocity.IsValid() || !s.position.IsValid() {
		return &peri.StepError{Step: s.step, Time: t, Wrapped: peri.ErrInvalidState}
	}

	for _, m := range s.metrics {
		m.Observe(s.position, s.displacement, s.velocity, t)
	}
	return nil
}

// Run executes a full batch: Setup with cfg, the initial step-0
// snapshot, every step in order, and a snapshot at each export
// boundary. A canceled context aborts between steps.
func (s *Integrator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.Setup(cfg); err != nil {
		return nil, err
	}

	start := time.Now()
	if err := s.export(); err != nil {
		return nil, err
	}

	for t := 1; t <= cfg.Steps; t++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := s.Step(); err != nil {
			return nil, err
		}
		if t%cfg.ExportEvery == 0 {
			if err := s.export(); err != nil {
				return nil, err
			}
		}
	}
	s.phase = phaseDone

	result := &Result{
		Steps:        cfg.Steps,
		Dt:           s.dt,
		Points:       s.cloud.N,
		Bonds:        s.topo.Total(),
		Elapsed:      time.Since(start),
		Metrics:      make(map[string]float64, len(s.metrics)),
		Position:     s.position.Clone(),
		Displacement: s.displacement.Clone(),
		Velocity:     s.velocity.Clone(),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (s *Integrator) export() error {
	if len(s.exporters) == 0 {
		return nil
	}
	snap := Snapshot{
		Step:         s.step,
		Time:         float64(s.step) * s.dt,
		Position:     s.position.Clone(),
		Displacement: s.displacement.Clone(),
	}
	for _, e := range s.exporters {
		if err := e.WriteSnapshot(snap); err != nil {
			return fmt.Errorf("export step %d: %w", s.step, err)
		}
	}
	return nil
}

// Accessors for externally paced callers.

func (s *Integrator) Dt() float64              { return s.dt }
func (s *Integrator) StepIndex() int           { return s.step }
func (s *Integrator) Time() float64            { return float64(s.step) * s.dt }
func (s *Integrator) BondTotal() int           { return s.topo.Total() }
func (s *Integrator) Position() peri.Field     { return s.position }
func (s *Integrator) Displacement() peri.Field { return s.displacement }
func (s *Integrator) Velocity() peri.Field     { return s.velocity }
