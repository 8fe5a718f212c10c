package simulation

import (
	"github.com/MichaelTJones/pcg"
	"github.com/google/uuid"
)

// factorySequence just needs to differ from the per-aircraft RNG's
// sequence constant so the two streams never alias.
const factorySequence = 0xda3e39cb94b95bdb

// BuildFleet generates count aircraft sharing the given charger pool.
// Manufacturer types are drawn from a deterministic uniform distribution
// over the five defined types, seeded with the fixed constant seed: this
// determinism is a contract the factory must honor so that fleet
// composition is reproducible across runs. Each aircraft is given a
// stable UUID identity and its own private, entropy-seeded fault RNG (see
// rand.go) independent of this deterministic assignment stream.
func BuildFleet(count int, seed uint64, pool *ChargerPool) []*Aircraft {
	assign := pcg.NewPCG32()
	assign.Seed(seed, factorySequence)

	types := ManufacturerTypes()
	fleet := make([]*Aircraft, 0, count)
	for i := 0; i < count; i++ {
		idx := assign.Bounded(uint32(len(types)))
		kind := types[idx]
		fleet = append(fleet, NewAircraft(uuid.NewString(), kind, pool))
	}
	return fleet
}
