// Package peri provides the core data model for 1D bond-based
// peridynamic simulation.
//
// The package defines the fundamental types shared by the rest of the
// module:
//
//   - [Field]: per-point scalar array (positions, volumes, kinematics)
//   - [PointCloud]: regular 1D discretization of a bar
//   - [Material]: bond-based material parameters
//   - [Metric]: per-step observer reporting a scalar at the end of a run
//
// # Example
//
//	cloud, _ := peri.NewBar(1.0, 0.01)
//	mat := peri.Material{Horizon: 0.0301, BondConstant: 1e9, Density: 8000}
//	s := solver.New(cloud, mat, nil)
//	result, _ := s.Run(ctx, cfg)
//
// # Thread Safety
//
// PointCloud and Material are immutable after construction. Fields are
// plain slices and carry no synchronization of their own.
package peri
