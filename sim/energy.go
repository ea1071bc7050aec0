package sim

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sphere-md/davis/dynamics"
)

// Energies is a per-step energy summary. Kinetic uses unit masses;
// Potential is the shifted-Coulomb sum accumulated by the last force
// sweep. Under damping Total decreases over time.
type Energies struct {
	Kinetic   float64
	Potential float64
	Total     float64
}

// Energies returns the energy bookkeeping for the current state.
func (man *Manager) Energies() Energies {
	for i := range man.ps {
		man.speedBuf[i] = man.ps[i].V.Norm2()
	}
	kin := 0.5 * floats.Sum(man.speedBuf)

	return Energies{
		Kinetic:   kin,
		Potential: man.stats.EPot,
		Total:     kin + man.stats.EPot,
	}
}

// KineticEnergy computes the total kinetic energy of a particle slice,
// Σ ½|v|² with unit masses.
func KineticEnergy(ps []dynamics.Particle) float64 {
	v2 := make([]float64, len(ps))
	for i := range ps {
		v2[i] = ps[i].V.Norm2()
	}
	return 0.5 * floats.Sum(v2)
}

// SpeedStats returns the mean and standard deviation of the particle
// speeds, a cheap proxy for how far the damped system has cooled.
func SpeedStats(ps []dynamics.Particle) (mean, sigma float64) {
	speeds := make([]float64, len(ps))
	for i := range ps {
		speeds[i] = ps[i].V.Norm()
	}
	return stat.MeanStdDev(speeds, nil)
}

// MaxRadiusDrift returns the largest deviation of any particle from the
// unit sphere, max over i of | |r_i| - 1 |. It should stay at the
// projection tolerance (~1e-12) for a well-chosen time step.
func MaxRadiusDrift(ps []dynamics.Particle) float64 {
	if len(ps) == 0 {
		return 0
	}
	drifts := make([]float64, len(ps))
	for i := range ps {
		drifts[i] = math.Abs(ps[i].R.Norm() - 1.0)
	}
	return floats.Max(drifts)
}
