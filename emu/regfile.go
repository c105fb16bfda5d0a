// Package emu provides functional emulation of the MIPS subset.
package emu

import "github.com/sarchlab/mipssim/insts"

// RegFile represents the processor state: 32 general-purpose registers and
// the program counter. It is a plain value so a snapshot is a copy.
type RegFile struct {
	// R holds general-purpose registers $0-$31.
	R [insts.NumRegs]uint32

	// PC is the program counter.
	PC uint32
}

// ReadReg reads a register value. Indices outside the register file
// (e.g., the insts.NoReg sentinel) return 0.
func (r *RegFile) ReadReg(reg uint8) uint32 {
	if !insts.Executable(reg) {
		return 0
	}
	return r.R[reg]
}

// WriteReg writes a value to a register. Writes outside the register file
// are ignored.
func (r *RegFile) WriteReg(reg uint8, value uint32) {
	if !insts.Executable(reg) {
		return
	}
	r.R[reg] = value
}

// Snapshot returns a copy of the register file.
func (r *RegFile) Snapshot() RegFile {
	return *r
}
