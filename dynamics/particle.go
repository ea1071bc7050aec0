/*package dynamics implements the molecular dynamics core: point
particles constrained to the unit sphere, interacting through a smoothed
Coulomb repulsion with a viscous damping term, a linked-cell neighbor
search, and a RATTLE-constrained velocity Verlet integrator.

The package is a strictly sequential kernel. It performs no I/O, holds no
global state, and does not validate caller preconditions (see the sim
package for the driving layer, which also supplies parallelism by running
force sweeps over disjoint ranges into private particle copies).
*/
package dynamics

import (
	"github.com/sphere-md/davis/geom"
)

// Particle is a point particle on the unit sphere. R is the position, V
// the velocity and A the acceleration accumulated by force sweeps.
//
// Between full time steps the integrator maintains |R| = 1 and
// R · V = 0. A is transient: cleared by Advance, filled by force sweeps,
// consumed by Correct. Next threads the particle into a cell's linked
// list; it is scratch state, meaningful only between Cells.Populate and
// the force sweep that consumes it.
type Particle struct {
	R, V, A geom.Vec
	Next    int
}

// Stats accumulates counters across force sweeps. Pairs counts candidate
// pairs handed to the kernel, CutoffPairs the pairs within the cutoff,
// and EPot the summed pair potential energy. Stats is owned by the
// caller, who zeroes it at the start of each measurement window.
type Stats struct {
	Pairs       int64
	CutoffPairs int64
	EPot        float64
}

// Add folds the counters of other into s. Used to merge the private
// Stats of parallel force sweeps.
func (s *Stats) Add(other *Stats) {
	s.Pairs += other.Pairs
	s.CutoffPairs += other.CutoffPairs
	s.EPot += other.EPot
}

// CopyParticles copies src into dst. The two slices must have the same
// length and must not overlap.
func CopyParticles(dst, src []Particle) {
	copy(dst, src)
}

// CollectForces adds the accelerations accumulated in part onto those in
// accu. Positions and velocities in part are ignored. Used to merge
// partial force sweeps that ran against private particle copies.
func CollectForces(accu, part []Particle) {
	for i := range accu {
		accu[i].A.AddSelf(&part[i].A)
	}
}

// FlattenPositions writes the particle positions into out as 3n
// interleaved doubles, x, y, z per particle. out must hold at least
// 3*len(ps) values.
func FlattenPositions(ps []Particle, out []float64) {
	for i := range ps {
		out[3*i] = ps[i].R[0]
		out[3*i+1] = ps[i].R[1]
		out[3*i+2] = ps[i].R[2]
	}
}
