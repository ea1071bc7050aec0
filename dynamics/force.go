package dynamics

import (
	"math"

	"github.com/sphere-md/davis/geom"
)

// pairForce applies the two-body interaction between p and q: a shifted
// Coulomb repulsion that vanishes continuously at the cutoff, plus a
// viscous damping force proportional to the velocity difference. The
// resulting force is added to p.A and subtracted from q.A, and stats is
// updated in place.
//
// The pair potential is 1/r + r/cutoff² - 2/cutoff, which is zero with
// zero gradient at r = cutoff. r = 0 is not guarded; callers must not
// pass coincident particles.
//
// The damping uses the velocities at the half step. To be exact it would
// need v(t+dt), which is not available here, but the term is only a
// cooling mechanism without physical meaning, so this does not matter.
func pairForce(p, q *Particle, cutoff, gamma float64, stats *Stats) {
	var dr geom.Vec
	p.R.SubAt(&q.R, &dr)
	r2 := dr.Norm2()
	stats.Pairs++
	cutoff2 := cutoff * cutoff
	if r2 >= cutoff2 {
		return
	}

	r := math.Sqrt(r2)
	stats.CutoffPairs++
	stats.EPot += 1.0/r + r/cutoff2 - 2.0/cutoff

	mag := (1.0/r2 - 1.0/cutoff2) / r
	var force geom.Vec
	for k := 0; k < 3; k++ {
		force[k] = mag*dr[k] - gamma*(p.V[k]-q.V[k])
	}

	p.A.AddSelf(&force)
	q.A.SubSelf(&force)
}

// CalcForces accumulates pair forces using the linked-cell lists in
// cells, visiting only pairs whose primary cell index lies in the
// half-open range [cell0, cell1). A fixed half stencil over the 27-cell
// neighborhood guarantees each unordered pair is visited exactly once.
// Passing [0, cells.Volume) sweeps every pair; disjoint ranges that tile
// that interval yield the exact same pair set split across calls.
//
// cells must have been populated from ps, and cells.Dr must be at least
// cutoff. There is no periodic wrap.
func CalcForces(
	ps []Particle, cells *Cells, cell0, cell1 int,
	cutoff, gamma float64, stats *Stats,
) {
	L := cells.Length

	for z := 0; z < L; z++ {
		for y := 0; y < L; y++ {
			for x := 0; x < L; x++ {
				thisCell := cells.Idx(x, y, z)
				if cells.Heads[thisCell] == -1 {
					continue
				}
				if thisCell < cell0 || thisCell >= cell1 {
					continue
				}

				for nz := max(0, z-1); nz < min(L, z+2); nz++ {
					for ny := max(0, y-1); ny < min(L, y+2); ny++ {
						for nx := max(0, x-1); nx < min(L, x+2); nx++ {
							otherCell := cells.Idx(nx, ny, nz)
							if thisCell > otherCell {
								// Each cell pair only once.
								continue
							}

							if thisCell == otherCell {
								for i := cells.Heads[thisCell]; i != -1; i = ps[i].Next {
									for j := ps[i].Next; j != -1; j = ps[j].Next {
										pairForce(&ps[i], &ps[j], cutoff, gamma, stats)
									}
								}
							} else {
								for i := cells.Heads[thisCell]; i != -1; i = ps[i].Next {
									for j := cells.Heads[otherCell]; j != -1; j = ps[j].Next {
										pairForce(&ps[i], &ps[j], cutoff, gamma, stats)
									}
								}
							}
						}
					}
				}
			}
		}
	}
}

// CalcBruteForces accumulates pair forces with an O(N²) upper-triangle
// sweep: every pair (i, j) with first <= i < last and i < j < len(ps).
// It is the reference path for verifying CalcForces and the cheaper
// option for tiny systems. Disjoint [first, last) ranges that tile
// [0, len(ps)) split the pair set across calls without double counting.
func CalcBruteForces(
	ps []Particle, first, last int,
	cutoff, gamma float64, stats *Stats,
) {
	for i := first; i < last; i++ {
		for j := i + 1; j < len(ps); j++ {
			pairForce(&ps[i], &ps[j], cutoff, gamma, stats)
		}
	}
}
