/*package io handles run configuration for the davis binary.*/
package io

const (
	ExampleRunFile = `[Run]

#######################
# Required Parameters #
#######################

# Number of particles. Ignored when InitFile is set.
Particles = 1000

# Number of time steps to run.
Steps = 10000

# Time step. Keep it small enough that the sphere projection stays
# well-conditioned; 1e-3 is a safe starting point.
Dt = 1e-3

# Interaction cutoff distance. Pairs farther apart than this (as a chord
# through the sphere) do not interact at all.
Cutoff = 0.3

# Damping coefficient. Zero disables the viscous cooling term.
Gamma = 0.1

# Cells per side of the neighbor-search grid. The cell edge 2/Binning
# must be at least Cutoff or interacting pairs will be missed; the
# binary refuses configurations that violate this.
Binning = 6

# Directory which telemetry and snapshot files will be written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Initial positions file: a whitespace table with x, y, z columns, each
# row normalized onto the unit sphere. When unset, particles start on a
# Fibonacci spiral.
# InitFile = path/to/positions.dat

# Number of force workers. Default is the number of logical cores.
# Workers = 4

# Use the O(N²) reference sweep instead of the cell list. Only sensible
# for small systems or verification runs.
# BruteForce = false

# Write a positions snapshot every this many steps. 0 disables
# snapshots.
# SnapshotEvery = 1000

# Write a telemetry row every this many steps. Default is every 10.
# TelemetryEvery = 10

# Redirect the run log to a file instead of stderr.
# LogFile = log.out`
)

// RunConfig mirrors the [Run] section of a configuration file.
type RunConfig struct {
	// Required
	Particles int
	Steps     int
	Dt        float64
	Cutoff    float64
	Gamma     float64
	Binning   int
	Output    string

	// Optional
	InitFile       string
	Workers        int
	BruteForce     bool
	SnapshotEvery  int
	TelemetryEvery int
	LogFile        string
}

// RunWrapper is the gcfg wrapper type for RunConfig.
type RunWrapper struct {
	Run RunConfig
}

// DefaultRunWrapper returns a wrapper with the optional parameters set
// to their defaults.
func DefaultRunWrapper() *RunWrapper {
	con := RunConfig{}
	con.TelemetryEvery = 10
	return &RunWrapper{con}
}

func (con *RunConfig) ValidParticles() bool {
	return con.Particles > 1
}
func (con *RunConfig) ValidSteps() bool {
	return con.Steps > 0
}
func (con *RunConfig) ValidDt() bool {
	return con.Dt > 0
}
func (con *RunConfig) ValidCutoff() bool {
	return con.Cutoff > 0 && con.Cutoff <= 2
}

// ValidBinning also enforces the cell-list precondition: the cell edge
// 2/Binning must not be smaller than the cutoff.
func (con *RunConfig) ValidBinning() bool {
	if con.BruteForce {
		return true
	}
	return con.Binning >= 1 && 2.0/float64(con.Binning) >= con.Cutoff
}
func (con *RunConfig) ValidGamma() bool {
	return con.Gamma >= 0
}
func (con *RunConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *RunConfig) ValidInitFile() bool {
	return con.InitFile != ""
}
func (con *RunConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
