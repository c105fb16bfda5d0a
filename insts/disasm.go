package insts

import "fmt"

// String returns the assembler form of the instruction.
func (i *Instruction) String() string {
	switch i.Op {
	case OpADD, OpSUB, OpOR:
		return fmt.Sprintf("%s %s, %s, %s", i.Op, RegName(i.Rd), RegName(i.Rs), RegName(i.Rt))
	case OpLW, OpSW:
		return fmt.Sprintf("%s %s, %d(%s)", i.Op, RegName(i.Rt), i.Imm, RegName(i.Rs))
	case OpUndefined:
		return fmt.Sprintf("undefined 0x%08X", i.Word)
	default:
		return "nop"
	}
}
