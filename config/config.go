// Package config centralizes every tunable the simulation core reads, the
// same way the original communication simulator kept its timing and protocol
// constants in one place instead of scattering literals through the driver
// and fleet factory.
package config

import "time"

// ===================================================================
//                         Fleet & run parameters
// ===================================================================

const (
	// FleetSize is the number of aircraft generated for a run.
	FleetSize = 20

	// ChargerCount is the shared charger pool's capacity.
	ChargerCount = 3

	// RunDuration is how long the simulation runs in wall-clock time.
	RunDuration = 3 * time.Minute

	// FactorySeed seeds the deterministic manufacturer-type draw. Fixed by
	// contract: changing it changes the fleet composition across every run.
	FactorySeed = 12345
)

// ===================================================================
//                           Tick timing
// ===================================================================

const (
	// TickMillis is the wall-clock tick quantum for FIXED timing mode.
	TickMillis = 10

	// SimSpeedup is how many simulated hours one wall-clock hour represents
	// under COMPENSATED timing: 60 means one wall-second is one sim-minute.
	SimSpeedup = 60.0

	// FixedSimDtHours is the constant simulated delta passed to every
	// aircraft on each tick in FIXED mode: (TickMillis/1000)*SimSpeedup/3600.
	FixedSimDtHours = (float64(TickMillis) / 1000.0) * SimSpeedup / 3600.0

	// ProgressInterval is how often the console progress line is refreshed.
	ProgressInterval = 100 * time.Millisecond
)

// ===================================================================
//                       Numerical hygiene
// ===================================================================

const (
	// TimeEpsilonHours bounds the precision loop's sub-step termination;
	// below this remaining duration is considered fully consumed.
	TimeEpsilonHours = 1e-7

	// BatteryEpsilonKWh is the clamping tolerance for "empty" and "full"
	// battery comparisons, absorbing floating-point drift from repeated
	// sub-step accumulation.
	BatteryEpsilonKWh = 1e-4
)
