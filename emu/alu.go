// Package emu provides functional emulation of the MIPS subset.
package emu

// ALU implements the register-register operations.
type ALU struct {
	regFile *RegFile

	// conventional selects rd = rs + rt for ADD instead of the
	// accumulating rd = rd + rs + rt form.
	conventional bool
}

// NewALU creates a new ALU reading operands from the given register file.
func NewALU(regFile *RegFile, conventionalAdd bool) *ALU {
	return &ALU{regFile: regFile, conventional: conventionalAdd}
}

// ADD performs rd = rd + (rs + rt).
// With conventional addition it performs rd = rs + rt.
func (a *ALU) ADD(c *Cycle, rd, rs, rt uint8) {
	sum := a.regFile.ReadReg(rs) + a.regFile.ReadReg(rt)
	if !a.conventional {
		sum += a.regFile.ReadReg(rd)
	}

	c.WriteReg(rd, sum)
}

// SUB performs rd = rd - (rs + rt).
func (a *ALU) SUB(c *Cycle, rd, rs, rt uint8) {
	op := a.regFile.ReadReg(rs) + a.regFile.ReadReg(rt)
	result := a.regFile.ReadReg(rd) - op

	c.WriteReg(rd, result)
}

// OR performs rd = rs | rt.
func (a *ALU) OR(c *Cycle, rd, rs, rt uint8) {
	result := a.regFile.ReadReg(rs) | a.regFile.ReadReg(rt)

	c.WriteReg(rd, result)
}
