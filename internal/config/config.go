package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/selmank/peribar/internal/boundary"
	"github.com/selmank/peribar/internal/peri"
	"github.com/selmank/peribar/internal/solver"
)

const (
	DefaultLength      = 1.0
	DefaultSpacing     = 0.01
	DefaultHorizonFact = 3.015
	DefaultBondConst   = 4.4e18
	DefaultDensity     = 8000.0
	DefaultSteps       = 1000
	DefaultExportEvery = 10
	DefaultOutput      = "results"
)

type Config struct {
	Bar      BarConfig        `yaml:"bar"`
	Material MaterialConfig   `yaml:"material"`
	Run      RunConfig        `yaml:"run"`
	Boundary []BoundaryConfig `yaml:"boundary"`
}

type BarConfig struct {
	Length  float64 `yaml:"length"`
	Spacing float64 `yaml:"spacing"`
}

type MaterialConfig struct {
	Horizon         float64 `yaml:"horizon"`
	BondConstant    float64 `yaml:"bond_constant"`
	Density         float64 `yaml:"density"`
	CriticalStretch float64 `yaml:"critical_stretch"`
}

type RunConfig struct {
	Steps       int     `yaml:"steps"`
	ExportEvery int     `yaml:"export_every"`
	Output      string  `yaml:"output"`
	Dt          float64 `yaml:"dt"`
}

// BoundaryConfig describes one prescribed-velocity condition. Points
// lists explicit indices; First and Last additionally grab that many
// points from either end of the bar. With RampTime set, the velocity
// ramps linearly from zero and holds after RampTime.
type BoundaryConfig struct {
	Name     string  `yaml:"name"`
	Velocity float64 `yaml:"velocity"`
	RampTime float64 `yaml:"ramp_time"`
	Points   []int   `yaml:"points"`
	First    int     `yaml:"first"`
	Last     int     `yaml:"last"`
}

func DefaultConfig() *Config {
	return &Config{
		Bar: BarConfig{Length: DefaultLength, Spacing: DefaultSpacing},
		Material: MaterialConfig{
			Horizon:      DefaultHorizonFact * DefaultSpacing,
			BondConstant: DefaultBondConst,
			Density:      DefaultDensity,
		},
		Run: RunConfig{
			Steps:       DefaultSteps,
			ExportEvery: DefaultExportEvery,
			Output:      DefaultOutput,
		},
		Boundary: []BoundaryConfig{
			{Name: "left", Velocity: -1e-3, First: 3},
			{Name: "right", Velocity: 1e-3, Last: 3},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) BuildCloud() (*peri.PointCloud, error) {
	return peri.NewBar(c.Bar.Length, c.Bar.Spacing)
}

func (c *Config) BuildMaterial() peri.Material {
	return peri.Material{
		Horizon:         c.Material.Horizon,
		BondConstant:    c.Material.BondConstant,
		Density:         c.Material.Density,
		CriticalStretch: c.Material.CriticalStretch,
	}
}

// BuildBoundary realizes the declared conditions against a cloud of n
// points, preserving declaration order.
func (c *Config) BuildBoundary(n int) []*boundary.Velocity {
	bcs := make([]*boundary.Velocity, 0, len(c.Boundary))
	for _, b := range c.Boundary {
		indices := append([]int(nil), b.Points...)
		for i := 0; i < b.First; i++ {
			indices = append(indices, i)
		}
		for i := n - b.Last; i < n; i++ {
			indices = append(indices, i)
		}

		var fn boundary.ValueFunc
		if b.RampTime > 0 {
			v, ramp := b.Velocity, b.RampTime
			fn = func(t float64) float64 {
				return v * math.Min(t/ramp, 1)
			}
		} else {
			fn = boundary.Constant(b.Velocity)
		}
		bcs = append(bcs, boundary.NewVelocity(b.Name, fn, indices))
	}
	return bcs
}

// SolverConfig starts from the solver's own defaults, so a run block
// with steps or export_every left at zero still gets a valid
// configuration.
func (c *Config) SolverConfig() solver.Config {
	sc := solver.DefaultConfig()
	if c.Run.Steps > 0 {
		sc.Steps = c.Run.Steps
	}
	if c.Run.ExportEvery > 0 {
		sc.ExportEvery = c.Run.ExportEvery
	}
	sc.Dt = c.Run.Dt
	return sc
}
