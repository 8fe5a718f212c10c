package simulation

import (
	"fmt"
	"sync/atomic"
)

// ChargerPool is a bounded counting resource shared by the whole fleet. It
// is a permit counter, not a queue: it makes no FIFO promise across
// contending acquirers, so starvation under heavy contention is possible
// and acceptable given the simulation horizon.
type ChargerPool struct {
	capacity  int32
	available atomic.Int32
}

// NewChargerPool creates a pool with the given capacity. A negative
// capacity is a configuration error and is fatal at construction.
func NewChargerPool(capacity int) *ChargerPool {
	if capacity < 0 {
		panic(fmt.Sprintf("simulation: charger pool capacity must be >= 0, got %d", capacity))
	}
	p := &ChargerPool{capacity: int32(capacity)}
	p.available.Store(int32(capacity))
	return p
}

// TryAcquire atomically decrements the available count if positive and
// returns true; otherwise it leaves the count unchanged and returns false.
// It never blocks.
func (p *ChargerPool) TryAcquire() bool {
	for {
		cur := p.available.Load()
		if cur <= 0 {
			return false
		}
		if p.available.CompareAndSwap(cur, cur-1) {
			return true
		}
	}
}

// Release atomically increments the available count. The caller must have
// previously obtained a successful TryAcquire that has not yet been
// released; calling Release without a matching acquire is a programming
// error. A Release that would raise the available count above capacity
// panics; an unmatched Release while other chargers are still held is not
// detected.
func (p *ChargerPool) Release() {
	if p.available.Add(1) > p.capacity {
		panic("simulation: charger pool Release without a matching TryAcquire")
	}
}

// Available returns the current number of free chargers.
func (p *ChargerPool) Available() int {
	return int(p.available.Load())
}

// Capacity returns the pool's total capacity.
func (p *ChargerPool) Capacity() int {
	return int(p.capacity)
}
