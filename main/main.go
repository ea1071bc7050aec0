package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"gopkg.in/gcfg.v1"

	"github.com/sphere-md/davis/dynamics"
	davisio "github.com/sphere-md/davis/io"
	"github.com/sphere-md/davis/sim"
)

func main() {
	var (
		runStr        string
		exampleConfig bool
	)

	flag.StringVar(
		&runStr, "Run", "",
		"Configuration file for [Run] mode.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Println(davisio.ExampleRunFile)

	case runStr != "":
		wrap := davisio.DefaultRunWrapper()
		err := gcfg.ReadFileInto(wrap, runStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Run

		if !con.ValidSteps() {
			log.Fatal("Invalid/non-existent 'Steps' value.")
		} else if !con.ValidDt() {
			log.Fatal("Invalid/non-existent 'Dt' value.")
		} else if !con.ValidCutoff() {
			log.Fatal("Invalid/non-existent 'Cutoff' value.")
		} else if !con.ValidGamma() {
			log.Fatal("Invalid 'Gamma' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidParticles() && !con.ValidInitFile() {
			log.Fatal("You must set either a valid 'Particles' or a " +
				"valid 'InitFile'.")
		}
		if !con.ValidBinning() {
			log.Fatal("Invalid 'Binning' value: the cell edge 2/Binning " +
				"must be at least 'Cutoff'.")
		}

		runMain(con)

	default:
		log.Fatal("You must select a mode. Run with -h for a list.")
	}
}

func runMain(con *davisio.RunConfig) {
	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := os.MkdirAll(con.Output, 0755); err != nil {
		log.Fatal(err.Error())
	}

	ps, err := initialParticles(con)
	if err != nil {
		log.Fatal(err.Error())
	}

	man := sim.NewManager(ps, sim.Params{
		Dt:      con.Dt,
		Cutoff:  con.Cutoff,
		Gamma:   con.Gamma,
		Binning: con.Binning,
		Workers: con.Workers,
		Brute:   con.BruteForce,
	})

	rec, err := sim.NewRecorder(path.Join(con.Output, "telemetry.csv"))
	if err != nil {
		log.Fatal(err.Error())
	}
	defer rec.Close()

	log.Printf(
		"Running %d particles for %d steps (dt = %g, cutoff = %g, gamma = %g)",
		len(ps), con.Steps, con.Dt, con.Cutoff, con.Gamma,
	)

	logEvery := con.Steps / 10
	if logEvery == 0 {
		logEvery = 1
	}

	for step := 1; step <= con.Steps; step++ {
		man.Step()

		if con.TelemetryEvery > 0 && step%con.TelemetryEvery == 0 {
			if err := rec.Write(man.Record()); err != nil {
				log.Fatal(err.Error())
			}
		}

		if con.SnapshotEvery > 0 && step%con.SnapshotEvery == 0 {
			file := path.Join(
				con.Output, fmt.Sprintf("snapshot_%06d.dat", step),
			)
			if err := sim.WritePositions(file, man.Particles()); err != nil {
				log.Fatal(err.Error())
			}
		}

		if step%logEvery == 0 {
			en := man.Energies()
			log.Printf(
				"step %7d: E_kin = %.6g, E_pot = %.6g, drift = %.2g",
				step, en.Kinetic, en.Potential,
				sim.MaxRadiusDrift(man.Particles()),
			)
		}
	}

	file := path.Join(con.Output, "final.dat")
	if err := sim.WritePositions(file, man.Particles()); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Done. Final positions written to %s", file)
}

func initialParticles(con *davisio.RunConfig) ([]dynamics.Particle, error) {
	if con.ValidInitFile() {
		return sim.ReadPositions(con.InitFile)
	}
	return sim.FibonacciSphere(con.Particles), nil
}
