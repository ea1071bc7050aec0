package sim

import (
	"fmt"
	"math"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/sphere-md/davis/dynamics"
	"github.com/sphere-md/davis/geom"
)

// FibonacciSphere places n particles on a golden-angle spiral, the
// standard near-uniform point layout on the unit sphere. Velocities and
// accelerations start at zero, so the tangency constraint holds
// trivially. No two particles coincide.
func FibonacciSphere(n int) []dynamics.Particle {
	golden := math.Pi * (3.0 - math.Sqrt(5.0))

	ps := make([]dynamics.Particle, n)
	for i := range ps {
		z := 1.0 - 2.0*(float64(i)+0.5)/float64(n)
		rxy := math.Sqrt(1.0 - z*z)
		phi := golden * float64(i)

		ps[i].R = geom.Vec{rxy * math.Cos(phi), rxy * math.Sin(phi), z}
	}
	return ps
}

// ReadPositions loads particle positions from a whitespace-separated
// table with x, y, z in the first three columns, normalizing each row
// onto the unit sphere. Velocities start at zero. Files written by
// WritePositions read back unchanged.
func ReadPositions(file string) ([]dynamics.Particle, error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}
	xs, ys, zs := cols[0], cols[1], cols[2]

	ps := make([]dynamics.Particle, len(xs))
	for i := range ps {
		v := geom.Vec{xs[i], ys[i], zs[i]}
		norm := v.Norm()
		if norm == 0 {
			return nil, fmt.Errorf(
				"positions file %s: row %d is the zero vector", file, i,
			)
		}
		v.ScaleSelf(1.0 / norm)
		ps[i].R = v
	}
	return ps, nil
}

// WritePositions writes the particle positions as a whitespace table,
// one x y z row per particle.
func WritePositions(file string, ps []dynamics.Particle) error {
	buf := make([]float64, 3*len(ps))
	dynamics.FlattenPositions(ps, buf)

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	for i := 0; i < len(ps); i++ {
		_, err := fmt.Fprintf(
			f, "%.17g %.17g %.17g\n", buf[3*i], buf[3*i+1], buf[3*i+2],
		)
		if err != nil {
			return err
		}
	}
	return nil
}
