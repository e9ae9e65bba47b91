package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Bar.Length <= 0 || cfg.Bar.Spacing <= 0 {
		t.Error("bar dimensions should be positive")
	}
	if cfg.Material.Horizon <= 0 || cfg.Material.BondConstant <= 0 || cfg.Material.Density <= 0 {
		t.Error("material parameters should be positive")
	}
	if cfg.Run.Steps <= 0 || cfg.Run.ExportEvery <= 0 {
		t.Error("run parameters should be positive")
	}
	if cfg.Run.Output == "" {
		t.Error("output directory should have a default")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`
bar:
  length: 2.0
  spacing: 0.02
run:
  steps: 500
boundary:
  - name: pull
    velocity: 0.002
    last: 2
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Bar.Length != 2.0 {
		t.Errorf("length = %g, expected 2.0", cfg.Bar.Length)
	}
	if cfg.Run.Steps != 500 {
		t.Errorf("steps = %d, expected 500", cfg.Run.Steps)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Material.Density != DefaultDensity {
		t.Errorf("density = %g, expected default %g", cfg.Material.Density, DefaultDensity)
	}
	if len(cfg.Boundary) != 1 || cfg.Boundary[0].Name != "pull" {
		t.Errorf("boundary block not applied: %+v", cfg.Boundary)
	}
}

func TestBuildBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Boundary = []BoundaryConfig{
		{Name: "left", Velocity: -1e-3, First: 2},
		{Name: "right", Velocity: 1e-3, Last: 1, Points: []int{5}},
	}

	bcs := cfg.BuildBoundary(10)
	if len(bcs) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(bcs))
	}
	if bcs[0].Name != "left" || bcs[1].Name != "right" {
		t.Error("declaration order not preserved")
	}

	if !bcs[0].Governs(0) || !bcs[0].Governs(1) || bcs[0].Governs(2) {
		t.Error("first-k membership wrong")
	}
	if !bcs[1].Governs(9) || !bcs[1].Governs(5) || bcs[1].Governs(8) {
		t.Error("last-k plus explicit membership wrong")
	}
}

func TestBuildBoundaryRamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Boundary = []BoundaryConfig{
		{Name: "ramp", Velocity: 2.0, RampTime: 1.0, First: 1},
	}

	bc := cfg.BuildBoundary(10)[0]
	bc.Precompute(4, 0.5)

	// t=0.5 -> half the target, t=1.0 and beyond -> full value.
	if bc.At(1) != 1.0 {
		t.Errorf("ramp at t=0.5: %g, expected 1.0", bc.At(1))
	}
	if bc.At(2) != 2.0 || bc.At(4) != 2.0 {
		t.Errorf("ramp should saturate at the target velocity")
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("tension") == nil {
		t.Error("expected tension preset")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
	if len(ListPresets()) == 0 {
		t.Error("expected some presets")
	}
}

func TestSolverConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Run.Steps = 42
	cfg.Run.ExportEvery = 7
	cfg.Run.Dt = 1e-9

	sc := cfg.SolverConfig()
	if sc.Steps != 42 || sc.ExportEvery != 7 || sc.Dt != 1e-9 {
		t.Errorf("solver config not carried over: %+v", sc)
	}

	// Zeroed run fields fall back to the solver defaults.
	cfg.Run.Steps = 0
	cfg.Run.ExportEvery = 0
	sc = cfg.SolverConfig()
	if sc.Steps != 1000 || sc.ExportEvery != 10 {
		t.Errorf("zero run fields should use solver defaults, got %+v", sc)
	}
}
