// Package emu provides functional emulation of the MIPS subset.
package emu

// LoadStoreUnit implements word loads and stores.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory

	// discardLoads leaves the loaded value out of the committed state.
	discardLoads bool
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory, discardLoads bool) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile:      regFile,
		memory:       memory,
		discardLoads: discardLoads,
	}
}

// EffectiveAddr computes base + sign-extended offset with 32-bit wraparound.
func EffectiveAddr(base uint32, offset int32) uint32 {
	return base + uint32(offset)
}

// LW performs a word load: rt = mem[rs + offset]
func (lsu *LoadStoreUnit) LW(c *Cycle, rt, rs uint8, offset int32) {
	addr := EffectiveAddr(lsu.regFile.ReadReg(rs), offset)
	value := lsu.memory.Read32(addr)

	if lsu.discardLoads {
		return
	}
	c.WriteReg(rt, value)
}

// SW performs a word store: mem[rs + offset] = rt
func (lsu *LoadStoreUnit) SW(c *Cycle, rt, rs uint8, offset int32) {
	addr := EffectiveAddr(lsu.regFile.ReadReg(rs), offset)
	c.Store(addr, lsu.regFile.ReadReg(rt))
}
