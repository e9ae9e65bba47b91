package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteRunLog writes logfile.log into dir after a successful run.
func WriteRunLog(dir string, elapsed time.Duration, points, bonds int, dt float64) error {
	file, err := os.Create(filepath.Join(dir, "logfile.log"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "duration: %v\n", elapsed)
	fmt.Fprintf(w, "points: %d\n", points)
	fmt.Fprintf(w, "bonds: %d\n", bonds)
	fmt.Fprintf(w, "stable timestep: %.12g\n", dt)
	return w.Flush()
}
