package emu

import "github.com/sarchlab/akita/v4/sim"

var (
	// HookPosInstRetired is invoked after an instruction commits. The hook
	// item is the *Cycle of the instruction.
	HookPosInstRetired = &sim.HookPos{Name: "InstRetired"}

	// HookPosUndefined is invoked when an instruction is treated as
	// undefined. The hook item is the *insts.Instruction.
	HookPosUndefined = &sim.HookPos{Name: "UndefinedInst"}
)
