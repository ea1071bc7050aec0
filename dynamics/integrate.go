package dynamics

import (
	"math"

	"github.com/sphere-md/davis/geom"
)

// Advance performs the velocity Verlet predictor with the RATTLE
// position projection for the unit sphere: half kick, drift, then a
// Lagrange correction along the old position that puts the particle back
// on |r| = 1. Accelerations are zeroed so force sweeps can accumulate
// into them before Correct.
//
// The projection solves (r + λ r_old)² = 1. With |r_old| = 1 this is
// λ² + 2λ(r_old·r) + (|r|² - 1) = 0, and the root keeping r near r_old
// is λ = -(r_old·r) + sqrt(1 - |r|² + (r_old·r)²). The discriminant goes
// negative only when dt lets the drift leave the sphere's neighborhood
// entirely; that is a caller error, not a recoverable state.
func Advance(ps []Particle, dt float64) {
	dtHalf := 0.5 * dt
	for i := range ps {
		p := &ps[i]
		oldR := p.R

		p.V.AddScaledSelf(&p.A, dtHalf)
		p.R.AddScaledSelf(&p.V, dt)
		p.A = geom.Vec{}

		r0DotR := oldR.Dot(&p.R)
		r2 := p.R.Norm2()
		lambda := -r0DotR + math.Sqrt(1.0-r2+r0DotR*r0DotR)

		p.R.AddScaledSelf(&oldR, lambda)
		p.V.AddScaledSelf(&oldR, lambda/dt)
	}
}

// Correct performs the final velocity Verlet half kick and the RATTLE
// velocity projection, removing the radial velocity component so that
// r · v = 0 holds exactly given |r| = 1. Callers must run one or more
// force sweeps between Advance and Correct to fill the accelerations.
func Correct(ps []Particle, dt float64) {
	dtHalf := 0.5 * dt
	for i := range ps {
		p := &ps[i]

		p.V.AddScaledSelf(&p.A, dtHalf)

		lambda := -p.V.Dot(&p.R)
		p.V.AddScaledSelf(&p.R, lambda)
	}
}
