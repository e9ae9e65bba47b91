package bonds

import (
	"fmt"
	"math"

	"github.com/selmank/peribar/internal/peri"
)

// Safety margin below the theoretical stability bound.
const stableFactor = 0.7

// StableTimestep derives the explicit integration step from a CFL-like
// bound: per point, sum Volume[j]*bc/L over its bonds, take
// sqrt(2*rho/sum), and return 0.7 times the minimum over all points.
// Points with no bonds have an unbounded critical step and are skipped;
// if every point is bondless there is no finite bound and the
// configuration is rejected rather than letting a non-finite step
// propagate.
func StableTimestep(cloud *peri.PointCloud, mat peri.Material, topo *Topology) (float64, error) {
	min := math.Inf(1)
	for i := 0; i < cloud.N; i++ {
		lo, hi := topo.Range(i)
		if lo == hi {
			continue
		}
		dtsum := 0.0
		for b := lo; b < hi; b++ {
			j := topo.Neighbor[b]
			dtsum += cloud.Volume[j] * mat.BondConstant / topo.InitialLength[b]
		}
		crit := math.Sqrt(2 * mat.Density / dtsum)
		if crit < min {
			min = crit
		}
	}
	if math.IsInf(min, 1) {
		return 0, fmt.Errorf("%w: no point has any bond inside the horizon", peri.ErrDegenerateTopology)
	}
	return stableFactor * min, nil
}
