// Package export persists simulation snapshots as legacy-ASCII VTK
// point files and writes the end-of-run log. Only the field names and
// semantics are a contract; the exact bytes are not.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/selmank/peribar/internal/solver"
)

// VTK writes one unstructured-point file per snapshot into a directory,
// named by the zero-padded step index (peribar_0000.vtk and so on).
type VTK struct {
	dir string
}

func NewVTK(dir string) (*VTK, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &VTK{dir: dir}, nil
}

func (e *VTK) Path(step int) string {
	return filepath.Join(e.dir, fmt.Sprintf("peribar_%04d.vtk", step))
}

func (e *VTK) WriteSnapshot(s solver.Snapshot) error {
	file, err := os.Create(e.Path(s.Step))
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	n := len(s.Position)

	fmt.Fprintln(w, "# vtk DataFile Version 3.0")
	fmt.Fprintf(w, "peribar snapshot step %d\n", s.Step)
	fmt.Fprintln(w, "ASCII")
	fmt.Fprintln(w, "DATASET UNSTRUCTURED_GRID")
	fmt.Fprintln(w, "FIELD FieldData 1")
	fmt.Fprintln(w, "Time 1 1 double")
	fmt.Fprintf(w, "%.12g\n", s.Time)

	fmt.Fprintf(w, "POINTS %d double\n", n)
	for _, x := range s.Position {
		fmt.Fprintf(w, "%.12g 0 0\n", x)
	}

	fmt.Fprintf(w, "CELLS %d %d\n", n, 2*n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "1 %d\n", i)
	}
	fmt.Fprintf(w, "CELL_TYPES %d\n", n)
	for i := 0; i < n; i++ {
		fmt.Fprintln(w, "1")
	}

	fmt.Fprintf(w, "POINT_DATA %d\n", n)
	fmt.Fprintln(w, "SCALARS Displacement double 1")
	fmt.Fprintln(w, "LOOKUP_TABLE default")
	for _, d := range s.Displacement {
		fmt.Fprintf(w, "%.12g\n", d)
	}

	return w.Flush()
}

// ReadSnapshot parses a file written by WriteSnapshot back into a
// snapshot. Used by the plot command; it understands only the subset
// of legacy VTK this package writes.
func ReadSnapshot(path string) (solver.Snapshot, error) {
	var snap solver.Snapshot

	data, err := os.ReadFile(path)
	if err != nil {
		return snap, err
	}
	tok := strings.Fields(string(data))

	next := func(i int) (string, bool) {
		if i < len(tok) {
			return tok[i], true
		}
		return "", false
	}

	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case "step":
			// Title line: "peribar snapshot step <n>"
			if v, ok := next(i + 1); ok {
				snap.Step, err = strconv.Atoi(v)
				if err != nil {
					return snap, fmt.Errorf("parse %s: bad step index %q", path, v)
				}
			}
		case "Time":
			// "Time 1 1 double <value>"
			if v, ok := next(i + 4); ok {
				snap.Time, err = strconv.ParseFloat(v, 64)
				if err != nil {
					return snap, fmt.Errorf("parse %s: bad Time value %q", path, v)
				}
			}
		case "POINTS":
			count, ok := next(i + 1)
			if !ok {
				return snap, fmt.Errorf("parse %s: truncated POINTS header", path)
			}
			n, err := strconv.Atoi(count)
			if err != nil {
				return snap, fmt.Errorf("parse %s: bad point count %q", path, count)
			}
			snap.Position = make([]float64, n)
			base := i + 3
			for p := 0; p < n; p++ {
				v, ok := next(base + p*3)
				if !ok {
					return snap, fmt.Errorf("parse %s: truncated POINTS block", path)
				}
				snap.Position[p], err = strconv.ParseFloat(v, 64)
				if err != nil {
					return snap, fmt.Errorf("parse %s: bad coordinate %q", path, v)
				}
			}
		case "Displacement":
			n := len(snap.Position)
			snap.Displacement = make([]float64, n)
			// "SCALARS Displacement double 1 LOOKUP_TABLE default <values>"
			base := i + 5
			for p := 0; p < n; p++ {
				v, ok := next(base + p)
				if !ok {
					return snap, fmt.Errorf("parse %s: truncated Displacement block", path)
				}
				snap.Displacement[p], err = strconv.ParseFloat(v, 64)
				if err != nil {
					return snap, fmt.Errorf("parse %s: bad displacement %q", path, v)
				}
			}
		}
	}

	if snap.Position == nil {
		return snap, fmt.Errorf("parse %s: no POINTS block", path)
	}
	return snap, nil
}
