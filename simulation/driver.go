package simulation

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"evtol-fleet-sim/config"
)

// TimingMode selects how a Driver paces simulated time against the wall
// clock.
type TimingMode int

const (
	// Fixed passes a constant simulated delta to every aircraft each tick
	// and sleeps off whatever wall-clock time is left in the tick quantum.
	// Simulated time can drift from wall-clock time under scheduler
	// jitter.
	Fixed TimingMode = iota

	// Compensated measures the actual wall-clock elapsed since the
	// previous wake and converts it to a simulated delta via SimSpeedup,
	// so total simulated time tracks wall-clock time regardless of
	// jitter.
	Compensated
)

func (m TimingMode) String() string {
	if m == Compensated {
		return "COMPENSATED"
	}
	return "FIXED"
}

// Driver is the concurrency substrate: one goroutine per aircraft, paced
// against a wall clock, until the configured duration elapses. It is the
// "thin shell" wall-clock pacing loop the spec treats as a narrow-contract
// external collaborator to the aircraft core, not a place for additional
// precision logic.
type Driver struct {
	fleet []*Aircraft
	mode  TimingMode

	running atomic.Bool
}

// NewDriver builds a driver over the given fleet using the given timing
// strategy.
func NewDriver(fleet []*Aircraft, mode TimingMode) *Driver {
	return &Driver{fleet: fleet, mode: mode}
}

// ProgressFunc is called roughly every config.ProgressInterval while the
// driver runs, so a caller (the console renderer) can paint a progress
// line without polling internal driver state.
type ProgressFunc func(elapsed, total time.Duration)

// Run starts one worker per aircraft, waits for the configured wall-clock
// duration to elapse, then clears the shared running flag and blocks
// until every worker has observed it and exited. No in-flight Update call
// is interrupted: preemption granularity is one tick.
func (d *Driver) Run(duration time.Duration, onProgress ProgressFunc) {
	d.running.Store(true)

	var eg errgroup.Group
	for _, aircraft := range d.fleet {
		aircraft := aircraft
		eg.Go(func() error {
			d.runWorker(aircraft)
			return nil
		})
	}

	start := time.Now()
	ticker := time.NewTicker(config.ProgressInterval)
	defer ticker.Stop()
	for {
		elapsed := time.Since(start)
		if onProgress != nil {
			onProgress(elapsed, duration)
		}
		if elapsed >= duration {
			break
		}
		<-ticker.C
	}

	d.running.Store(false)
	_ = eg.Wait()
}

// runWorker is the per-aircraft tick loop. It suspends only at the
// intra-tick pacing sleep and at reads of the shared running flag.
func (d *Driver) runWorker(aircraft *Aircraft) {
	tickDuration := time.Duration(config.TickMillis) * time.Millisecond
	lastWake := time.Now()

	for d.running.Load() {
		switch d.mode {
		case Fixed:
			start := time.Now()
			aircraft.Update(config.FixedSimDtHours)
			elapsed := time.Since(start)
			if sleep := tickDuration - elapsed; sleep > 0 {
				time.Sleep(sleep)
			}

		case Compensated:
			now := time.Now()
			dtWall := now.Sub(lastWake)
			lastWake = now
			simDtHours := dtWall.Seconds() * config.SimSpeedup / 3600.0
			aircraft.Update(simDtHours)
			time.Sleep(tickDuration)
		}
	}
}
