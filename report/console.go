package report

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"evtol-fleet-sim/simulation"
)

// PrintProgress overwrites a single console line in place, roughly every
// config.ProgressInterval while the driver runs. This is the "console
// progress renderer" the spec treats as a narrow external collaborator:
// it holds no simulation logic of its own.
func PrintProgress(elapsed, total time.Duration) {
	fmt.Fprintf(os.Stdout, "\r[Simulating] %5.1fs / %5.1fs", elapsed.Seconds(), total.Seconds())
}

// PrintFinalReport writes the two end-of-run tables described by the
// spec: per-vehicle final state, then per-manufacturer summary.
func PrintFinalReport(fleet []*simulation.Aircraft, summaries []ManufacturerSummary) {
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "=== Per-vehicle final state ===")
	writeVehicleTable(os.Stdout, fleet)

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "=== Per-manufacturer summary ===")
	writeSummaryTable(os.Stdout, summaries)
}

func writeVehicleTable(w io.Writer, fleet []*simulation.Aircraft) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tFLIGHT(H)\tWAIT(H)\tCHARGE(H)\tBATTERY(KWH)\tTICKS")
	for _, aircraft := range fleet {
		stats := aircraft.Stats()
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.3f\t%.3f\t%.2f\t%d\n",
			aircraft.ID(), aircraft.Name(),
			stats.FlightTimeHours, stats.WaitTimeHours, stats.ChargeTimeHours,
			aircraft.Battery(), stats.CompletedTicks)
	}
	tw.Flush()
}

func writeSummaryTable(w io.Writer, summaries []ManufacturerSummary) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tQTY\tAVG FLIGHT(H)\tAVG WAIT(H)\tAVG CHARGE(H)\tMAX FAULTS\tTOTAL PAX-MI\tAVG TICKS")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%d\t%.1f\t%.1f\n",
			s.Type, s.Count, s.AvgFlightTimeHours, s.AvgWaitTimeHours, s.AvgChargeTimeHours,
			s.MaxFaultCount, s.TotalPassengerMiles, s.AvgCompletedTicks)
	}
	tw.Flush()
}
