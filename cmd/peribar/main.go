package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/selmank/peribar/internal/config"
	"github.com/selmank/peribar/internal/export"
	"github.com/selmank/peribar/internal/metrics"
	"github.com/selmank/peribar/internal/solver"
	"github.com/selmank/peribar/internal/viz"
)

var (
	configFile   string
	preset       string
	length       float64
	spacing      float64
	horizon      float64
	bondConstant float64
	density      float64
	steps        int
	exportEvery  int
	outDir       string
	dt           float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "peribar",
		Short: "1D bond-based peridynamics lab",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and export snapshots",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [snapshot.vtk]",
		Short: "plot a snapshot's displacement profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSnapshot,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "bar length")
	cmd.Flags().Float64Var(&spacing, "spacing", config.DefaultSpacing, "point spacing")
	cmd.Flags().Float64Var(&horizon, "horizon", config.DefaultHorizonFact*config.DefaultSpacing, "interaction horizon")
	cmd.Flags().Float64Var(&bondConstant, "bond-constant", config.DefaultBondConst, "bond stiffness constant")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "material density")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "total step count")
	cmd.Flags().IntVar(&exportEvery, "every", config.DefaultExportEvery, "export frequency in steps")
	cmd.Flags().StringVar(&outDir, "out", config.DefaultOutput, "output directory")
	cmd.Flags().Float64Var(&dt, "dt", 0, "timestep override (0 = stable estimate)")
}

// resolveConfig layers preset, config file, and changed CLI flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("length") {
		cfg.Bar.Length = length
	}
	if cmd.Flags().Changed("spacing") {
		cfg.Bar.Spacing = spacing
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Material.Horizon = horizon
	}
	if cmd.Flags().Changed("bond-constant") {
		cfg.Material.BondConstant = bondConstant
	}
	if cmd.Flags().Changed("density") {
		cfg.Material.Density = density
	}
	if cmd.Flags().Changed("steps") {
		cfg.Run.Steps = steps
	}
	if cmd.Flags().Changed("every") {
		cfg.Run.ExportEvery = exportEvery
	}
	if cmd.Flags().Changed("out") {
		cfg.Run.Output = outDir
	}
	if cmd.Flags().Changed("dt") {
		cfg.Run.Dt = dt
	}

	return cfg, nil
}

func buildSolver(cfg *config.Config) (*solver.Integrator, error) {
	cloud, err := cfg.BuildCloud()
	if err != nil {
		return nil, err
	}
	mat := cfg.BuildMaterial()
	sim := solver.New(cloud, mat, cfg.BuildBoundary(cloud.N))
	sim.AddMetric(metrics.NewKineticEnergy(mat.Density, cloud.Volume))
	sim.AddMetric(metrics.NewMaxDisplacement())
	return sim, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	vtk, err := export.NewVTK(cfg.Run.Output)
	if err != nil {
		return err
	}
	sim.AddExporter(vtk)

	fmt.Println("running peridynamic bar simulation...")
	result, err := sim.Run(context.Background(), cfg.SolverConfig())
	if err != nil {
		return err
	}

	if err := export.WriteRunLog(cfg.Run.Output, result.Elapsed, result.Points, result.Bonds, result.Dt); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("points: %d\n", result.Points)
	fmt.Printf("bonds: %d\n", result.Bonds)
	fmt.Printf("dt: %.6g\n", result.Dt)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(sim, cfg.SolverConfig())
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func plotSnapshot(cmd *cobra.Command, args []string) error {
	snap, err := export.ReadSnapshot(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("step: %d\n", snap.Step)
	fmt.Printf("time: %.6g s\n", snap.Time)
	fmt.Printf("points: %d\n\n", len(snap.Position))

	graph := asciigraph.Plot(snap.Displacement,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("displacement along the bar"),
	)
	fmt.Println(graph)
	return nil
}
