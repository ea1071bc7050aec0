package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sphere-md/davis/dynamics"
	"github.com/sphere-md/davis/geom"
)

func TestKineticEnergy(t *testing.T) {
	ps := []dynamics.Particle{
		{V: geom.Vec{1, 0, 0}},
		{V: geom.Vec{0, 2, 0}},
		{V: geom.Vec{0, 0, 0}},
	}
	// ½(1) + ½(4) = 2.5
	assert.InDelta(t, 2.5, KineticEnergy(ps), 1e-15)
}

func TestSpeedStats(t *testing.T) {
	ps := []dynamics.Particle{
		{V: geom.Vec{3, 4, 0}},
		{V: geom.Vec{0, 0, 5}},
	}
	mean, sigma := SpeedStats(ps)
	assert.InDelta(t, 5.0, mean, 1e-15)
	assert.InDelta(t, 0.0, sigma, 1e-15)
}

func TestMaxRadiusDrift(t *testing.T) {
	ps := []dynamics.Particle{
		{R: geom.Vec{1, 0, 0}},
		{R: geom.Vec{0, 1.001, 0}},
		{R: geom.Vec{0, 0, 0.999}},
	}
	assert.InDelta(t, 0.001, MaxRadiusDrift(ps), 1e-12)
	assert.Equal(t, 0.0, MaxRadiusDrift(nil))
}

func TestManagerEnergiesMatchHelpers(t *testing.T) {
	ps := FibonacciSphere(100)
	tangentVelocities(ps, 0.3, 30)
	man := NewManager(ps, Params{
		Dt: 1e-3, Cutoff: 0.3, Gamma: 0.1, Binning: 6, Workers: 1,
	})
	man.Step()

	en := man.Energies()
	assert.InDelta(t, KineticEnergy(man.Particles()), en.Kinetic, 1e-12)
	assert.Equal(t, man.Stats().EPot, en.Potential)
	assert.InDelta(t, en.Kinetic+en.Potential, en.Total, 1e-12)
}
