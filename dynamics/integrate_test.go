package dynamics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sphere-md/davis/geom"
)

// tangentVelocities gives every particle a random velocity in its
// tangent plane.
func tangentVelocities(ps []Particle, scale float64, seed int64) {
	gen := rand.New(rand.NewSource(seed))
	for i := range ps {
		p := &ps[i]
		v := geom.Vec{gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64()}
		v.AddScaledSelf(&p.R, -v.Dot(&p.R))
		v.ScaleSelf(scale)
		p.V = v
	}
}

func TestAdvanceKeepsParticlesOnSphere(t *testing.T) {
	ps := randomSphere(200, 10)
	tangentVelocities(ps, 0.3, 11)

	for step := 0; step < 50; step++ {
		Advance(ps, 1e-3)
		for i := range ps {
			assert.InDelta(t, 1.0, ps[i].R.Norm(), 1e-12,
				"step %d particle %d", step, i)
		}
		Correct(ps, 1e-3)
	}
}

func TestCorrectEnforcesTangency(t *testing.T) {
	ps := randomSphere(200, 12)
	tangentVelocities(ps, 0.3, 13)
	// Give the particles radial velocity contamination and accelerations
	// for the half kick to fold in.
	gen := rand.New(rand.NewSource(14))
	for i := range ps {
		ps[i].V.AddScaledSelf(&ps[i].R, 0.1*gen.Float64())
		ps[i].A = geom.Vec{gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64()}
	}

	Correct(ps, 1e-3)
	for i := range ps {
		p := &ps[i]
		assert.InDelta(t, 0, math.Abs(p.V.Dot(&p.R)), 1e-12*p.V.Norm(),
			"particle %d", i)
	}
}

func TestAdvanceClearsAccelerations(t *testing.T) {
	ps := randomSphere(10, 15)
	for i := range ps {
		ps[i].A = geom.Vec{1, 2, 3}
	}
	Advance(ps, 1e-3)
	for i := range ps {
		assert.Equal(t, geom.Vec{}, ps[i].A)
	}
}

func TestDistantPairStaysPut(t *testing.T) {
	// Antipodal particles at rest, separation 2 > cutoff 0.5: no force,
	// and one advance/correct cycle must leave them where they started.
	ps := []Particle{
		{R: geom.Vec{1, 0, 0}},
		{R: geom.Vec{-1, 0, 0}},
	}
	dt := 0.01

	Advance(ps, dt)
	CalcBruteForces(ps, 0, len(ps), 0.5, 0, &Stats{})
	Correct(ps, dt)

	assert.InDelta(t, 1.0, ps[0].R[0], 1e-14)
	assert.InDelta(t, -1.0, ps[1].R[0], 1e-14)
	for i := range ps {
		assert.InDelta(t, 0, ps[i].R[1], 1e-14)
		assert.InDelta(t, 0, ps[i].R[2], 1e-14)
		assert.InDelta(t, 0, ps[i].V.Norm(), 1e-14)
	}
}

func TestRepulsivePairSeparates(t *testing.T) {
	// Two nearby particles at rest must drift apart along the sphere.
	ps := []Particle{
		{R: geom.Vec{1, 0, 0}},
		{R: geom.Vec{math.Cos(0.1), math.Sin(0.1), 0}},
	}
	var sep geom.Vec
	ps[0].R.SubAt(&ps[1].R, &sep)
	before := sep.Norm()

	dt := 1e-3
	for step := 0; step < 100; step++ {
		Advance(ps, dt)
		CalcBruteForces(ps, 0, len(ps), 0.5, 0, &Stats{})
		Correct(ps, dt)
	}

	ps[0].R.SubAt(&ps[1].R, &sep)
	assert.Greater(t, sep.Norm(), before)
	for i := range ps {
		assert.InDelta(t, 1.0, ps[i].R.Norm(), 1e-12)
	}
}

func TestDampedSystemCools(t *testing.T) {
	// A damped run must lose kinetic energy once the initial repulsive
	// push has been dissipated.
	ps := randomSphere(300, 16)
	tangentVelocities(ps, 0.5, 17)

	kinetic := func(ps []Particle) float64 {
		sum := 0.0
		for i := range ps {
			sum += 0.5 * ps[i].V.Norm2()
		}
		return sum
	}

	dt := 1e-3
	cells := NewCells(6)
	step := func() {
		Advance(ps, dt)
		cells.Populate(ps)
		CalcForces(ps, cells, 0, cells.Volume, 0.3, 0.5, &Stats{})
		Correct(ps, dt)
	}

	for i := 0; i < 500; i++ {
		step()
	}
	mid := kinetic(ps)
	for i := 0; i < 500; i++ {
		step()
	}
	late := kinetic(ps)

	assert.Less(t, late, mid)
}

func BenchmarkAdvance(b *testing.B) {
	ps := randomSphere(1000, 18)
	tangentVelocities(ps, 0.1, 19)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Advance(ps, 1e-4)
	}
}
