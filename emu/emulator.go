// Package emu provides functional emulation of the MIPS subset.
package emu

import (
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipssim/insts"
)

var (
	// ErrMaxInstructions is returned once the instruction limit is reached.
	ErrMaxInstructions = errors.New("max instructions reached")
	// ErrProgramTooLarge is returned when a program does not fit in the
	// instruction region.
	ErrProgramTooLarge = errors.New("program does not fit in instruction region")
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Inst is the instruction that was executed, nil if none was.
	Inst *insts.Instruction

	// Halted is true once the PC has reached the terminal PC.
	Halted bool

	// Err is set if an error occurred during execution.
	Err error
}

// Emulator executes instructions functionally. It owns the processor state
// and memory; nothing is shared between emulators.
type Emulator struct {
	*sim.HookableBase

	config  *Config
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder
	log     logrus.FieldLogger

	// Execution units
	alu *ALU
	lsu *LoadStoreUnit

	// Execution state
	entryPC          uint32
	lastPC           uint32
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithConfig sets the memory layout and execution switches.
func WithConfig(config *Config) EmulatorOption {
	return func(e *Emulator) {
		e.config = config.Clone()
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(log logrus.FieldLogger) EmulatorOption {
	return func(e *Emulator) {
		e.log = log
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit. It overrides Config.MaxInstructions.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// NewEmulator creates a new emulator with zeroed registers and memory.
func NewEmulator(opts ...EmulatorOption) (*Emulator, error) {
	e := &Emulator{
		HookableBase: sim.NewHookableBase(),
		config:       DefaultConfig(),
		regFile:      &RegFile{},
		decoder:      insts.NewDecoder(),
		log:          logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if e.maxInstructions == 0 {
		e.maxInstructions = e.config.MaxInstructions
	}

	if err := e.Reset(); err != nil {
		return nil, err
	}

	return e, nil
}

// Config returns a copy of the emulator's configuration.
func (e *Emulator) Config() *Config {
	return e.config.Clone()
}

// RegFile returns the emulator's committed register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// DataRegion returns the configured data region.
func (e *Emulator) DataRegion() *Region {
	r, _ := e.memory.RegionByName(e.config.DataRegion)
	return r
}

// InstructionRegion returns the configured instruction region.
func (e *Emulator) InstructionRegion() *Region {
	r, _ := e.memory.RegionByName(e.config.InstructionRegion)
	return r
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// EntryPC returns the address of the first loaded instruction.
func (e *Emulator) EntryPC() uint32 {
	return e.entryPC
}

// LastPC returns the terminal PC at which execution stops.
func (e *Emulator) LastPC() uint32 {
	return e.lastPC
}

// Halted reports whether the PC has reached the terminal PC.
func (e *Emulator) Halted() bool {
	return e.regFile.PC >= e.lastPC
}

// Reset zeroes the registers, recreates memory and forgets any loaded
// program.
func (e *Emulator) Reset() error {
	memory, err := NewMemory(e.config.Regions...)
	if err != nil {
		return err
	}

	*e.regFile = RegFile{}
	e.memory = memory
	e.instructionCount = 0

	e.entryPC = e.InstructionRegion().Start
	e.lastPC = e.entryPC
	e.regFile.PC = e.entryPC

	// Recreate execution units
	e.alu = NewALU(e.regFile, e.config.ConventionalAdd)
	e.lsu = NewLoadStoreUnit(e.regFile, e.memory, e.config.DiscardLoadResult)

	return nil
}

// LoadProgram writes the words consecutively from the base of the
// instruction region, points the PC at the first one and records the
// terminal PC after the last one.
func (e *Emulator) LoadProgram(words []uint32) error {
	region := e.InstructionRegion()
	if uint64(len(words))*WordSize > uint64(region.Size) {
		return fmt.Errorf("%w: %d words, %d bytes available",
			ErrProgramTooLarge, len(words), region.Size)
	}

	addr := region.Start
	for _, w := range words {
		e.memory.Write32(addr, w)
		addr += WordSize
	}

	e.entryPC = region.Start
	e.lastPC = addr
	e.regFile.PC = region.Start

	return nil
}

// Step executes a single instruction.
// Returns a StepResult indicating whether execution should continue.
func (e *Emulator) Step() StepResult {
	if e.Halted() {
		return StepResult{Halted: true}
	}

	// Check instruction limit before executing
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: ErrMaxInstructions}
	}

	// 1. Fetch
	word := e.memory.Read32(e.regFile.PC)

	// 2. Decode
	inst := e.decoder.Decode(word)

	// 3. Execute
	c := e.execute(inst)

	// 4. Commit
	e.commit(c)

	e.instructionCount++

	return StepResult{Inst: inst, Halted: e.Halted()}
}

// Run executes instructions until the PC reaches the terminal PC or an
// error occurs.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Err != nil {
			return result.Err
		}
		if result.Halted {
			return nil
		}
	}
}

// execute computes the effects of inst without touching committed state.
func (e *Emulator) execute(inst *insts.Instruction) *Cycle {
	c := newCycle(e.regFile, inst)
	c.Next.PC = c.PC + WordSize

	e.log.WithFields(logrus.Fields{
		"pc":   fmt.Sprintf("0x%08X", c.PC),
		"word": fmt.Sprintf("0x%08X", inst.Word),
	}).Debugf("step %s", inst)

	if inst.Defined() && inst.OutsideWindow {
		fields := logrus.Fields{
			"pc": fmt.Sprintf("0x%08X", c.PC),
			"rs": inst.Rs,
			"rt": inst.Rt,
			"rd": inst.Rd,
		}
		if e.config.StrictRegisters {
			e.log.WithFields(fields).Warn("operand outside register windows, not executed")
			e.undefined(c)
			return c
		}
		e.log.WithFields(fields).Warn("operand outside register windows")
	}

	switch inst.Op {
	case insts.OpADD:
		e.alu.ADD(c, inst.Rd, inst.Rs, inst.Rt)
	case insts.OpSUB:
		e.alu.SUB(c, inst.Rd, inst.Rs, inst.Rt)
	case insts.OpOR:
		e.alu.OR(c, inst.Rd, inst.Rs, inst.Rt)
	case insts.OpLW:
		e.lsu.LW(c, inst.Rt, inst.Rs, inst.Imm)
	case insts.OpSW:
		e.lsu.SW(c, inst.Rt, inst.Rs, inst.Imm)
	default:
		e.log.WithFields(logrus.Fields{
			"pc":   fmt.Sprintf("0x%08X", c.PC),
			"word": fmt.Sprintf("0x%08X", inst.Word),
		}).Warn("undefined instruction")
		e.undefined(c)
	}

	return c
}

func (e *Emulator) undefined(c *Cycle) {
	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosUndefined,
		Item:   c.Inst,
	})
}

// commit makes the effects of c visible.
func (e *Emulator) commit(c *Cycle) {
	*e.regFile = c.Next

	for _, w := range c.MemWrites {
		e.memory.Write32(w.Addr, w.Value)
	}

	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosInstRetired,
		Item:   c,
	})
}
