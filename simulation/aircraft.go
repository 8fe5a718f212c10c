package simulation

import (
	"fmt"

	"evtol-fleet-sim/config"
)

// AircraftState is one of the three states an Aircraft can occupy.
type AircraftState int

const (
	Flying AircraftState = iota
	Waiting
	Charging
)

func (s AircraftState) String() string {
	switch s {
	case Flying:
		return "Flying"
	case Waiting:
		return "Waiting"
	case Charging:
		return "Charging"
	default:
		return fmt.Sprintf("AircraftState(%d)", int(s))
	}
}

// Aircraft is a single eVTOL's state machine: its state, battery, and
// accumulated stats. It is created once at simulation start, mutated
// exclusively by its owning tick-driver worker goroutine, and read
// read-only by the reporter after every worker has been joined.
type Aircraft struct {
	id   string
	kind ManufacturerType
	spec ManufacturerSpec
	pool *ChargerPool
	rng  *rngStream

	state      AircraftState
	batteryKWh float64
	stats      AircraftStats
}

// NewAircraft constructs an aircraft of the given manufacturer type,
// sharing the given charger pool. Its private RNG is seeded from a
// non-shared entropy source. Initial state is Flying at full battery.
func NewAircraft(id string, kind ManufacturerType, pool *ChargerPool) *Aircraft {
	spec := SpecOf(kind)
	return &Aircraft{
		id:         id,
		kind:       kind,
		spec:       spec,
		pool:       pool,
		rng:        newRNGStream(entropySeed()),
		state:      Flying,
		batteryKWh: spec.BatteryCapacityKWh,
	}
}

// ID returns the aircraft's stable identifier.
func (a *Aircraft) ID() string { return a.id }

// Type returns the aircraft's manufacturer type.
func (a *Aircraft) Type() ManufacturerType { return a.kind }

// Name returns the manufacturer's display name.
func (a *Aircraft) Name() string { return a.spec.Name }

// State returns the aircraft's current state.
func (a *Aircraft) State() AircraftState { return a.state }

// Battery returns the current battery level in kWh, in [0, capacity].
func (a *Aircraft) Battery() float64 { return a.batteryKWh }

// Stats returns a snapshot copy of the aircraft's accumulated KPIs.
func (a *Aircraft) Stats() AircraftStats { return a.stats }

// Update advances this aircraft by exactly dtHours of simulation time,
// crossing state boundaries as needed within this single call. This is
// the precision loop: each sub-step dispatches to the current state's
// processor, which reports the time it actually consumed (<= what's
// left), and the loop continues in whatever state that processor left
// the aircraft in. A state change mid-tick (e.g. battery depletion 40%
// through the step) is handled within this same call, not deferred to
// the next one.
func (a *Aircraft) Update(dtHours float64) {
	remaining := dtHours
	for remaining > config.TimeEpsilonHours {
		var consumed float64
		switch a.state {
		case Flying:
			consumed = a.processFlying(remaining)
		case Waiting:
			consumed = a.processWaiting(remaining)
		case Charging:
			consumed = a.processCharging(remaining)
		default:
			panic(fmt.Sprintf("simulation: aircraft %s in unknown state %d", a.id, a.state))
		}
		remaining -= consumed
	}
	a.stats.CompletedTicks++
}

// processFlying consumes battery at cruise power for as long as the
// battery or the available time allows, accrues flight time and
// passenger-miles, and transitions to Waiting once the battery is
// depleted.
func (a *Aircraft) processFlying(available float64) float64 {
	powerKW := a.spec.EnergyUseKWhPerMile * a.spec.CruiseSpeedMPH
	enduranceHours := a.batteryKWh / powerKW
	actual := minFloat(available, enduranceHours)

	a.stats.FlightTimeHours += actual
	a.stats.PassengerMiles += actual * a.spec.CruiseSpeedMPH * float64(a.spec.PassengerCount)
	a.batteryKWh -= powerKW * actual

	a.checkFaults(actual)

	if a.batteryKWh <= config.BatteryEpsilonKWh {
		a.batteryKWh = 0
		a.state = Waiting
	}
	return actual
}

// processWaiting attempts to acquire a charger. A successful acquire
// transitions to Charging and consumes zero time, so the very same
// Update call continues on into the Charging branch with this tick's
// full remainder: an aircraft that starts a tick Waiting and acquires a
// charger 40% through the tick must still spend the other 60% charging,
// not carry it over into the next tick. A failed acquire spends the
// whole sub-step waiting.
func (a *Aircraft) processWaiting(available float64) float64 {
	if a.pool.TryAcquire() {
		a.state = Charging
		return 0.0
	}
	a.stats.WaitTimeHours += available
	return available
}

// processCharging restores battery at a linear rate for as long as the
// deficit or the available time allows, accrues charge time, and
// transitions back to Flying (releasing the charger) once full.
func (a *Aircraft) processCharging(available float64) float64 {
	rateKW := a.spec.BatteryCapacityKWh / a.spec.TimeToChargeHours
	deficitKWh := a.spec.BatteryCapacityKWh - a.batteryKWh
	timeToFull := deficitKWh / rateKW
	actual := minFloat(available, timeToFull)

	a.stats.ChargeTimeHours += actual
	a.batteryKWh += rateKW * actual

	if a.batteryKWh >= a.spec.BatteryCapacityKWh-config.BatteryEpsilonKWh {
		a.batteryKWh = a.spec.BatteryCapacityKWh
		a.state = Flying
		a.pool.Release()
	}
	return actual
}

// checkFaults draws one uniform deviate per flight sub-step and counts a
// fault iff it falls below fault_prob_per_hour * dt. This is a Bernoulli
// approximation of a Poisson process whose expected count over an
// interval is fault_prob_per_hour * total flight time; it is intentionally
// sampled once per sub-step rather than once per flight-hour.
func (a *Aircraft) checkFaults(dtHours float64) {
	if a.rng.Float64() < a.spec.FaultProbPerHour*dtHours {
		a.stats.FaultCount++
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
