package peri

import (
	"fmt"
	"math"
)

// PointCloud is a regular 1D discretization of a bar into cell-centered
// material points. Position is the immutable reference grid; kinematic
// state lives in the solver, not here.
type PointCloud struct {
	N        int
	Position Field
	Volume   Field
	Spacing  float64
}

// NewBar discretizes a bar of length lx into cell-centered points
// dx/2, 3dx/2, ..., lx-dx/2. Each point carries a volume of dx^3,
// the cubic-cell convention even though the problem is 1D. A spacing
// larger than the bar yields zero or one points; that is the caller's
// problem, not an error here.
func NewBar(lx, dx float64) (*PointCloud, error) {
	if lx <= 0 {
		return nil, fmt.Errorf("%w: bar length %g", ErrInvalidGeometry, lx)
	}
	if dx <= 0 {
		return nil, fmt.Errorf("%w: spacing %g", ErrInvalidGeometry, dx)
	}

	// Count by a tolerant floor rather than accumulating x, so lx/dx
	// ratios that are exact in decimal but not in binary still give
	// the full grid, while half-integer ratios do not gain a point
	// beyond lx - dx/2.
	n := int(math.Floor(lx/dx + 1e-9))
	if n < 0 {
		n = 0
	}

	pc := &PointCloud{
		N:        n,
		Position: make(Field, n),
		Volume:   make(Field, n),
		Spacing:  dx,
	}
	vol := dx * dx * dx
	for i := 0; i < n; i++ {
		pc.Position[i] = dx/2 + float64(i)*dx
		pc.Volume[i] = vol
	}
	return pc, nil
}
