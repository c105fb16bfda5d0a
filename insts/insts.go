// Package insts provides MIPS instruction definitions and decoding.
//
// This package implements decoding of 32-bit MIPS machine words into
// structured instruction representations. It supports:
//   - R-format (opcode 0): ADD, SUB, OR selected by the funct field
//   - I-format: LW, SW with a sign-extended 16-bit offset
//
// Any other encoding decodes to OpUndefined rather than failing.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x02108820) // add $s1, $s0, $s0
//	fmt.Printf("Op: %v, Rd: %d, Rs: %d, Rt: %d\n", inst.Op, inst.Rd, inst.Rs, inst.Rt)
package insts
