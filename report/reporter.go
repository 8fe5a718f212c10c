// Package report is the Reporter component: purely read-only aggregation
// over each aircraft's final stats, run once after the tick driver has
// joined every worker. It never touches aircraft state directly.
package report

import "evtol-fleet-sim/simulation"

// ManufacturerSummary is the per-manufacturer aggregate the spec's report
// contract calls for: averages for flight/wait/charge time and completed
// ticks, a sum for passenger-miles, and a maximum (not a mean) for fault
// count.
type ManufacturerSummary struct {
	Type                simulation.ManufacturerType
	Count               int
	AvgFlightTimeHours  float64
	AvgWaitTimeHours    float64
	AvgChargeTimeHours  float64
	MaxFaultCount       int
	TotalPassengerMiles float64
	AvgCompletedTicks   float64
}

// Aggregate groups the fleet by manufacturer type and computes one
// ManufacturerSummary per type that has at least one aircraft, in catalog
// order.
func Aggregate(fleet []*simulation.Aircraft) []ManufacturerSummary {
	type accumulator struct {
		count          int
		flightHours    float64
		waitHours      float64
		chargeHours    float64
		maxFaults      int
		passengerMiles float64
		completedTicks int
	}

	byType := make(map[simulation.ManufacturerType]*accumulator)
	for _, aircraft := range fleet {
		stats := aircraft.Stats()
		acc, ok := byType[aircraft.Type()]
		if !ok {
			acc = &accumulator{}
			byType[aircraft.Type()] = acc
		}
		acc.count++
		acc.flightHours += stats.FlightTimeHours
		acc.waitHours += stats.WaitTimeHours
		acc.chargeHours += stats.ChargeTimeHours
		acc.passengerMiles += stats.PassengerMiles
		acc.completedTicks += stats.CompletedTicks
		if stats.FaultCount > acc.maxFaults {
			acc.maxFaults = stats.FaultCount
		}
	}

	var summaries []ManufacturerSummary
	for _, t := range simulation.ManufacturerTypes() {
		acc, ok := byType[t]
		if !ok {
			continue
		}
		n := float64(acc.count)
		summaries = append(summaries, ManufacturerSummary{
			Type:                t,
			Count:               acc.count,
			AvgFlightTimeHours:  acc.flightHours / n,
			AvgWaitTimeHours:    acc.waitHours / n,
			AvgChargeTimeHours:  acc.chargeHours / n,
			MaxFaultCount:       acc.maxFaults,
			TotalPassengerMiles: acc.passengerMiles,
			AvgCompletedTicks:   float64(acc.completedTicks) / n,
		})
	}
	return summaries
}
