/*package sim drives the dynamics core through whole time steps: it owns
the authoritative particle array, the shared cell grid, and one private
workspace per worker, and it orchestrates the
advance / populate / sweep / collect / correct cycle.

Workers never share mutable state during a sweep. Each worker copies the
advanced particle array into its workspace, accumulates forces for its
own cell range (or particle range in brute-force mode) into that copy,
and the manager folds the partial accelerations back serially. The
ranges tile the index space exactly, so the merged pair set equals the
sequential one.
*/
package sim

import (
	"runtime"

	"github.com/sphere-md/davis/dynamics"
)

// Params collects the per-run physics and scheduling parameters.
type Params struct {
	Dt     float64
	Cutoff float64
	Gamma  float64
	// Binning is the cell count per box side. The caller must keep
	// 2/Binning >= Cutoff or the cell list will drop pairs.
	Binning int
	// Workers <= 0 means one worker per logical core.
	Workers int
	// Brute switches to the O(N²) reference sweep and partitions
	// particle ranges instead of cell ranges.
	Brute bool
}

// Manager owns the authoritative simulation state.
type Manager struct {
	ps    []dynamics.Particle
	cells *dynamics.Cells
	par   Params

	workspaces []workspace
	stats      dynamics.Stats

	steps int
	time  float64

	speedBuf []float64
}

type workspace struct {
	ps     []dynamics.Particle
	stats  dynamics.Stats
	lo, hi int
}

// NewManager returns a Manager driving the given particles. The slice is
// borrowed: the caller may read it between steps but must not mutate it
// while Step runs.
func NewManager(ps []dynamics.Particle, par Params) *Manager {
	if par.Workers <= 0 {
		par.Workers = runtime.NumCPU()
	}

	man := &Manager{ps: ps, par: par}
	if !par.Brute {
		man.cells = dynamics.NewCells(par.Binning)
	}

	man.workspaces = make([]workspace, par.Workers)
	for i := range man.workspaces {
		man.workspaces[i].ps = make([]dynamics.Particle, len(ps))
	}
	man.partition()

	man.speedBuf = make([]float64, len(ps))
	return man
}

// partition assigns each workspace its half-open sweep range: cell
// indices in cell-list mode, particle indices in brute mode. The ranges
// tile [0, total) without gaps or overlap.
func (man *Manager) partition() {
	total := len(man.ps)
	if !man.par.Brute {
		total = man.cells.Volume
	}

	n := len(man.workspaces)
	for i := range man.workspaces {
		man.workspaces[i].lo = i * total / n
		man.workspaces[i].hi = (i + 1) * total / n
	}
}

// Step advances the system by one time step.
func (man *Manager) Step() {
	dynamics.Advance(man.ps, man.par.Dt)
	if !man.par.Brute {
		man.cells.Populate(man.ps)
	}

	man.stats = dynamics.Stats{}
	if len(man.workspaces) == 1 {
		// Sequential fast path: sweep straight into the authoritative
		// array, no copy.
		w := &man.workspaces[0]
		w.stats = dynamics.Stats{}
		man.sweep(w, man.ps)
		man.stats = w.stats
	} else {
		// The copies happen serially, after Advance and Populate, so
		// every workspace sees the predicted positions, the threaded
		// cell lists, and zeroed accelerations. Once the sweeps start,
		// workers touch only their own workspace.
		for i := range man.workspaces {
			w := &man.workspaces[i]
			dynamics.CopyParticles(w.ps, man.ps)
			w.stats = dynamics.Stats{}
		}

		out := make(chan int, len(man.workspaces))
		for id := 0; id < len(man.workspaces)-1; id++ {
			go man.chanSweep(id, out)
		}
		man.chanSweep(len(man.workspaces)-1, out)

		for i := 0; i < len(man.workspaces); i++ {
			id := <-out
			w := &man.workspaces[id]
			dynamics.CollectForces(man.ps, w.ps)
			man.stats.Add(&w.stats)
		}
	}

	dynamics.Correct(man.ps, man.par.Dt)
	man.steps++
	man.time += man.par.Dt
}

// Run performs n consecutive steps.
func (man *Manager) Run(n int) {
	for i := 0; i < n; i++ {
		man.Step()
	}
}

func (man *Manager) chanSweep(id int, out chan<- int) {
	w := &man.workspaces[id]
	man.sweep(w, w.ps)
	out <- id
}

func (man *Manager) sweep(w *workspace, ps []dynamics.Particle) {
	if man.par.Brute {
		dynamics.CalcBruteForces(
			ps, w.lo, w.hi, man.par.Cutoff, man.par.Gamma, &w.stats,
		)
	} else {
		dynamics.CalcForces(
			ps, man.cells, w.lo, w.hi,
			man.par.Cutoff, man.par.Gamma, &w.stats,
		)
	}
}

// Particles returns the authoritative particle slice.
func (man *Manager) Particles() []dynamics.Particle { return man.ps }

// Stats returns the merged force-sweep counters of the last step.
func (man *Manager) Stats() dynamics.Stats { return man.stats }

// Steps returns the number of completed steps.
func (man *Manager) Steps() int { return man.steps }

// Time returns the accumulated simulation time.
func (man *Manager) Time() float64 { return man.time }
