// Command evtol-fleet-sim runs a fixed-size eVTOL fleet against a shared
// charger pool for a bounded wall-clock duration and prints per-vehicle
// and per-manufacturer reports. This entry point, like the teacher
// project's main.go, is deliberately thin: flag parsing and wiring only,
// no simulation logic.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"evtol-fleet-sim/config"
	"evtol-fleet-sim/report"
	"evtol-fleet-sim/simulation"
)

func main() {
	os.Exit(run())
}

// run does the real work and returns a process exit code instead of
// calling os.Exit directly, so the single top-level recover below can
// still flush a diagnostic before the process exits non-zero - mirroring
// the original implementation's one top-level try/catch around the whole
// run.
func run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fatal error during simulation: %v\n", r)
			exitCode = 1
		}
	}()

	compensated := flag.Bool("compensated", false, "use COMPENSATED wall-clock timing instead of FIXED")
	flag.Parse()

	mode := simulation.Fixed
	if *compensated {
		mode = simulation.Compensated
	}

	log.Printf("eVTOL fleet simulation: %d aircraft, %d chargers, duration=%s, mode=%s",
		config.FleetSize, config.ChargerCount, config.RunDuration, mode)

	pool := simulation.NewChargerPool(config.ChargerCount)
	fleet := simulation.BuildFleet(config.FleetSize, config.FactorySeed, pool)
	log.Printf("built fleet of %d aircraft", len(fleet))

	driver := simulation.NewDriver(fleet, mode)
	driver.Run(config.RunDuration, report.PrintProgress)

	summaries := report.Aggregate(fleet)
	report.PrintFinalReport(fleet, summaries)

	log.Println("simulation finished")
	return 0
}
