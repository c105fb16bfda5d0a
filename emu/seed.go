package emu

import (
	"fmt"
	"math/rand/v2"
)

// RandomizeRegisters fills every register with a value in [1,50].
func RandomizeRegisters(rf *RegFile, rng *rand.Rand) {
	for i := range rf.R {
		rf.R[i] = 1 + rng.Uint32N(50)
	}
}

// RandomizeRegion fills every word of the named region with a value in
// [1,1000].
func RandomizeRegion(m *Memory, name string, rng *rand.Rand) error {
	r, ok := m.RegionByName(name)
	if !ok {
		return fmt.Errorf("no region named %q", name)
	}

	for off := uint32(0); off+WordSize <= r.Size; off += WordSize {
		m.Write32(r.Start+off, 1+rng.Uint32N(1000))
	}

	return nil
}
