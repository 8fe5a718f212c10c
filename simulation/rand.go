package simulation

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/MichaelTJones/pcg"
)

// rngStream is a private, non-shared uniform-deviate source. Each Aircraft
// owns one; it is never shared across goroutines. The sequence constant
// just needs to differ from the factory's so that two streams seeded from
// the same value still diverge; the PCG32 generator interleaves seed and
// sequence into distinct output streams.
type rngStream struct {
	gen *pcg.PCG32
}

const aircraftRNGSequence = 0x9e3779b97f4a7c15

func newRNGStream(seed uint64) *rngStream {
	gen := pcg.NewPCG32()
	gen.Seed(seed, aircraftRNGSequence)
	return &rngStream{gen: gen}
}

// Float64 returns a uniform deviate in [0, 1).
func (r *rngStream) Float64() float64 {
	return float64(r.gen.Random()) / (1 << 32)
}

// entropySeed draws a 64-bit seed from a non-shared entropy source
// (crypto/rand), independent of the deterministic factory stream, so
// fault draws across aircraft are statistically independent even when two
// aircraft are constructed in the same instant.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("simulation: failed to read entropy for aircraft RNG seed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
