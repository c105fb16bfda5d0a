// Package insts provides MIPS instruction definitions and decoding.
package insts

// Op represents a decoded operation.
type Op uint8

// Operations. OpNone marks an empty instruction slot and is the zero value.
const (
	OpNone Op = iota
	OpUndefined
	OpADD
	OpSUB
	OpOR
	OpLW
	OpSW
)

var opNames = [...]string{
	OpNone:      "none",
	OpUndefined: "undefined",
	OpADD:       "add",
	OpSUB:       "sub",
	OpOR:        "or",
	OpLW:        "lw",
	OpSW:        "sw",
}

// String returns the assembler mnemonic of the op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "invalid"
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR              // opcode == 0, operation in funct
	FormatI              // two registers and a 16-bit immediate
)

// Primary opcode and funct values.
const (
	OpcodeSpecial = 0x00
	OpcodeLW      = 0x23 // 35
	OpcodeSW      = 0x2B // 43

	FunctADD = 0x20 // 32
	FunctSUB = 0x22 // 34
	FunctOR  = 0x25 // 37
)

// NoReg is the register sentinel for operand fields that were not decoded.
const NoReg uint8 = 0xFF

// Instruction represents a decoded MIPS instruction.
type Instruction struct {
	Op     Op     // Operation
	Format Format // Encoding format
	Word   uint32 // Raw instruction word

	Opcode uint8 // bits [31:26]
	Funct  uint8 // bits [5:0], R-format only

	Rs uint8 // bits [25:21]
	Rt uint8 // bits [20:16]
	Rd uint8 // bits [15:11], R-format only

	// Imm is the sign-extended 16-bit immediate (I-format only).
	Imm int32

	// OutsideWindow is set when an R-format operand lies outside the
	// $t/$s register windows. The instruction is still executable.
	OutsideWindow bool
}

// Empty returns an instruction slot holding no instruction.
func Empty() Instruction {
	return Instruction{Op: OpNone, Rs: NoReg, Rt: NoReg, Rd: NoReg}
}

// Defined reports whether the instruction carries an executable operation.
func (i *Instruction) Defined() bool {
	return i.Op != OpNone && i.Op != OpUndefined
}

// Decoder decodes MIPS machine words into instructions.
type Decoder struct{}

// NewDecoder creates a new instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit instruction word. It never fails: encodings
// outside the supported subset yield an OpUndefined instruction.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := Empty()
	inst.Word = word
	inst.Opcode = uint8((word >> 26) & 0x3F) // bits [31:26]

	if inst.Opcode == OpcodeSpecial {
		d.decodeR(word, &inst)
	} else {
		d.decodeI(word, &inst)
	}

	return &inst
}

// decodeR decodes register-register instructions.
// Format: opcode(6)=0 | rs(5) | rt(5) | rd(5) | shamt(5) | funct(6)
func (d *Decoder) decodeR(word uint32, inst *Instruction) {
	inst.Format = FormatR
	inst.Funct = uint8(word & 0x3F)

	switch inst.Funct {
	case FunctADD:
		inst.Op = OpADD
	case FunctSUB:
		inst.Op = OpSUB
	case FunctOR:
		inst.Op = OpOR
	default:
		inst.Op = OpUndefined
		return
	}

	inst.Rs = uint8((word >> 21) & 0x1F)
	inst.Rt = uint8((word >> 16) & 0x1F)
	inst.Rd = uint8((word >> 11) & 0x1F)

	inst.OutsideWindow = !InWindow(inst.Rs) || !InWindow(inst.Rt) || !InWindow(inst.Rd)
}

// decodeI decodes load/store instructions.
// Format: opcode(6) | rs(5) | rt(5) | imm(16)
func (d *Decoder) decodeI(word uint32, inst *Instruction) {
	inst.Format = FormatI

	switch inst.Opcode {
	case OpcodeLW:
		inst.Op = OpLW
	case OpcodeSW:
		inst.Op = OpSW
	default:
		inst.Op = OpUndefined
		return
	}

	inst.Rs = uint8((word >> 21) & 0x1F)
	inst.Rt = uint8((word >> 16) & 0x1F)
	inst.Imm = int32(int16(word & 0xFFFF))
}
