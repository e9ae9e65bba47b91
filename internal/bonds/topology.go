// Package bonds builds the pairwise interaction topology of a point
// cloud and derives the stable explicit time step from it.
package bonds

import (
	"fmt"
	"math"

	"github.com/selmank/peribar/internal/peri"
)

// Topology is a flat arena of directed bond records partitioned by
// per-point contiguous ranges. Point i owns the entries
// Neighbor[Start[i] : Start[i]+Count[i]], each naming the other
// endpoint, with InitialLength holding the matching reference length.
// Bonds are discovered by independent pairwise scan, so every bond
// appears once in each direction with equal reference length.
type Topology struct {
	Neighbor      []int
	InitialLength peri.Field
	Start         []int
	Count         []int
}

// Build scans every ordered pair of distinct points and records a bond
// wherever the reference distance is within the horizon, inclusive.
// O(n^2), run once per simulation. A point with no partner inside the
// horizon simply gets an empty range.
func Build(cloud *peri.PointCloud, horizon float64) (*Topology, error) {
	n := cloud.N
	topo := &Topology{
		Neighbor:      make([]int, 0, n*4),
		InitialLength: make(peri.Field, 0, n*4),
		Start:         make([]int, n),
		Count:         make([]int, n),
	}

	total := 0
	for i := 0; i < n; i++ {
		topo.Start[i] = len(topo.Neighbor)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			l := math.Abs(cloud.Position[j] - cloud.Position[i])
			if l <= horizon {
				topo.Neighbor = append(topo.Neighbor, j)
				topo.InitialLength = append(topo.InitialLength, l)
				topo.Count[i]++
				total++
			}
		}
	}

	if total != len(topo.Neighbor) {
		return nil, fmt.Errorf("%w: bond arena holds %d records, counted %d",
			peri.ErrDegenerateTopology, len(topo.Neighbor), total)
	}
	return topo, nil
}

// Total returns the number of directed bond records.
func (t *Topology) Total() int { return len(t.Neighbor) }

// Range returns the arena bounds of the bonds owned by point i.
func (t *Topology) Range(i int) (lo, hi int) {
	return t.Start[i], t.Start[i] + t.Count[i]
}
