package emu

import "github.com/sarchlab/mipssim/insts"

// RegWrite records a register result produced by an instruction.
type RegWrite struct {
	Reg   uint8
	Value uint32
}

// MemWrite records a word stored by an instruction.
type MemWrite struct {
	Addr  uint32
	Value uint32
}

// Cycle holds the in-flight effects of a single instruction. Next starts
// as a snapshot of the committed state; execution units read operands from
// the committed state and write only into the cycle. The emulator applies
// the cycle atomically when the instruction commits.
type Cycle struct {
	PC   uint32
	Inst *insts.Instruction
	Next RegFile

	RegWrites []RegWrite
	MemWrites []MemWrite
}

func newCycle(current *RegFile, inst *insts.Instruction) *Cycle {
	return &Cycle{
		PC:   current.PC,
		Inst: inst,
		Next: current.Snapshot(),
	}
}

// WriteReg stages a register write.
func (c *Cycle) WriteReg(reg uint8, value uint32) {
	if !insts.Executable(reg) {
		return
	}
	c.Next.WriteReg(reg, value)
	c.RegWrites = append(c.RegWrites, RegWrite{Reg: reg, Value: value})
}

// Store stages a memory write.
func (c *Cycle) Store(addr, value uint32) {
	c.MemWrites = append(c.MemWrites, MemWrite{Addr: addr, Value: value})
}
