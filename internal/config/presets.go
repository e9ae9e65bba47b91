package config

import "sort"

var Presets = map[string]*Config{
	"tension": {
		Bar: BarConfig{Length: 1.0, Spacing: 0.01},
		Material: MaterialConfig{
			Horizon: 3.015 * 0.01, BondConstant: DefaultBondConst, Density: DefaultDensity,
		},
		Run: RunConfig{Steps: 2000, ExportEvery: 20, Output: DefaultOutput},
		Boundary: []BoundaryConfig{
			{Name: "left", Velocity: -1e-3, First: 3},
			{Name: "right", Velocity: 1e-3, Last: 3},
		},
	},
	"pulse": {
		Bar: BarConfig{Length: 1.0, Spacing: 0.005},
		Material: MaterialConfig{
			Horizon: 3.015 * 0.005, BondConstant: DefaultBondConst, Density: DefaultDensity,
		},
		Run: RunConfig{Steps: 5000, ExportEvery: 50, Output: DefaultOutput},
		Boundary: []BoundaryConfig{
			{Name: "impact", Velocity: 5e-3, RampTime: 1e-6, First: 3},
		},
	},
	"coarse": {
		Bar: BarConfig{Length: 1.0, Spacing: 0.05},
		Material: MaterialConfig{
			Horizon: 3.015 * 0.05, BondConstant: DefaultBondConst, Density: DefaultDensity,
		},
		Run: RunConfig{Steps: 500, ExportEvery: 10, Output: DefaultOutput},
		Boundary: []BoundaryConfig{
			{Name: "right", Velocity: 1e-3, Last: 1},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
