package main

import (
	"flag"
	"log"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/sphere-md/davis/sim"
)

// Plots the energy history of a run from its telemetry file:
//
//	go run plot_energy.go -o energy.png path/to/telemetry.csv
func main() {
	var out string
	flag.StringVar(&out, "o", "energy.png", "Output image file.")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: plot_energy [-o out.png] telemetry.csv")
	}

	rows, err := sim.ReadRecords(flag.Arg(0))
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(rows) == 0 {
		log.Fatal("Telemetry file contains no records.")
	}

	ts := make([]float64, len(rows))
	ekin := make([]float64, len(rows))
	epot := make([]float64, len(rows))
	etot := make([]float64, len(rows))
	for i, r := range rows {
		ts[i] = r.Time
		ekin[i] = r.EKin
		epot[i] = r.EPot
		etot[i] = r.ETot
	}

	plt.Reset()
	plt.Figure()

	plt.Plot(ts, ekin, "b", plt.LW(2))
	plt.Plot(ts, epot, "r", plt.LW(2))
	plt.Plot(ts, etot, "k", plt.LW(2))

	plt.Title("blue: kinetic, red: potential, black: total")
	plt.XLabel("$t$", plt.FontSize(16))
	plt.YLabel("$E$", plt.FontSize(16))

	plt.SaveFig(out)
	plt.Execute()
}
