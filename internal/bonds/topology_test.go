package bonds

import (
	"errors"
	"math"
	"testing"

	"github.com/selmank/peribar/internal/peri"
)

func TestBuildSymmetry(t *testing.T) {
	cloud, err := peri.NewBar(1.0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	topo, err := Build(cloud, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	// Every bond i->j must have a mirror j->i with the same reference
	// length, discovered independently rather than mirrored.
	for i := 0; i < cloud.N; i++ {
		lo, hi := topo.Range(i)
		for b := lo; b < hi; b++ {
			j := topo.Neighbor[b]
			if j == i {
				t.Fatalf("point %d bonded to itself", i)
			}
			jlo, jhi := topo.Range(j)
			found := false
			for bb := jlo; bb < jhi; bb++ {
				if topo.Neighbor[bb] == i {
					found = true
					if topo.InitialLength[bb] != topo.InitialLength[b] {
						t.Errorf("bond %d<->%d lengths differ: %g vs %g",
							i, j, topo.InitialLength[b], topo.InitialLength[bb])
					}
				}
			}
			if !found {
				t.Errorf("bond %d->%d has no mirror", i, j)
			}
		}
	}
}

func TestBuildPartition(t *testing.T) {
	cloud, err := peri.NewBar(1.0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	topo, err := Build(cloud, 0.35)
	if err != nil {
		t.Fatal(err)
	}

	// Per-point ranges must tile the arena exactly: no gaps, no
	// overlaps.
	offset := 0
	for i := 0; i < cloud.N; i++ {
		if topo.Start[i] != offset {
			t.Fatalf("point %d range starts at %d, expected %d", i, topo.Start[i], offset)
		}
		offset += topo.Count[i]
	}
	if offset != topo.Total() {
		t.Errorf("ranges cover %d records, arena holds %d", offset, topo.Total())
	}
	if len(topo.Neighbor) != len(topo.InitialLength) {
		t.Errorf("neighbor/length arrays diverge: %d vs %d", len(topo.Neighbor), len(topo.InitialLength))
	}
}

func TestBuildInclusiveHorizon(t *testing.T) {
	// Two points exactly one horizon apart still bond: the rule is
	// L <= horizon, inclusive.
	cloud := &peri.PointCloud{
		N:        2,
		Position: peri.Field{0, 0.1},
		Volume:   peri.Field{1, 1},
	}
	topo, err := Build(cloud, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if topo.Total() != 2 {
		t.Errorf("expected 2 directed bonds at exact horizon distance, got %d", topo.Total())
	}
}

func TestBuildNoBonds(t *testing.T) {
	cloud, err := peri.NewBar(1.0, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	topo, err := Build(cloud, 0.01)
	if err != nil {
		t.Fatalf("bondless topology must build, got %v", err)
	}
	if topo.Total() != 0 {
		t.Errorf("expected no bonds, got %d", topo.Total())
	}
}

func TestStableTimestepTwoPoints(t *testing.T) {
	cloud := &peri.PointCloud{
		N:        2,
		Position: peri.Field{0, 1},
		Volume:   peri.Field{1, 1},
	}
	mat := peri.Material{Horizon: 1.5, BondConstant: 1, Density: 1}
	topo, err := Build(cloud, mat.Horizon)
	if err != nil {
		t.Fatal(err)
	}

	dt, err := StableTimestep(cloud, mat, topo)
	if err != nil {
		t.Fatal(err)
	}

	// dtsum = 1*1/1 per point, critical step sqrt(2), margin 0.7.
	want := 0.7 * math.Sqrt2
	if math.Abs(dt-want) > 1e-12 {
		t.Errorf("dt = %g, expected %g", dt, want)
	}
}

func TestStableTimestepSkipsBondlessPoints(t *testing.T) {
	cloud := &peri.PointCloud{
		N:        3,
		Position: peri.Field{0, 1, 10},
		Volume:   peri.Field{1, 1, 1},
	}
	mat := peri.Material{Horizon: 1.5, BondConstant: 1, Density: 1}
	topo, err := Build(cloud, mat.Horizon)
	if err != nil {
		t.Fatal(err)
	}

	dt, err := StableTimestep(cloud, mat, topo)
	if err != nil {
		t.Fatalf("isolated point must not poison the estimate: %v", err)
	}
	if math.IsInf(dt, 0) || math.IsNaN(dt) || dt <= 0 {
		t.Errorf("dt = %g, expected a finite positive step", dt)
	}
}

func TestStableTimestepDegenerate(t *testing.T) {
	cloud, err := peri.NewBar(1.0, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	mat := peri.Material{Horizon: 0.01, BondConstant: 1, Density: 1}
	topo, err := Build(cloud, mat.Horizon)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := StableTimestep(cloud, mat, topo); !errors.Is(err, peri.ErrDegenerateTopology) {
		t.Errorf("got %v, expected ErrDegenerateTopology", err)
	}
}
