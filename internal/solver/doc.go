// Package solver implements the explicit time integrator for 1D
// bond-based peridynamics.
//
// Each step is a central-difference (velocity-Verlet family) update
// specialized to pairwise bond forces: half-step velocity, prescribed
// velocity overrides, position advance, bond-force accumulation,
// acceleration, and the final velocity correction. There is no
// implicit solve and no system assembly.
//
// An [Integrator] is not safe for concurrent use; a run owns its
// kinematic arrays exclusively and hands exporters copies at export
// boundaries.
package solver
