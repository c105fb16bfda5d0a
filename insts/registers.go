package insts

import "fmt"

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

// Register windows used for naming.
const (
	TempBase  = 8  // $t0..$t7 are registers 8..15
	SavedBase = 16 // $s0..$s7 are registers 16..23
	windowEnd = 23
)

// InWindow reports whether reg falls in the $t or $s window [8,23].
func InWindow(reg uint8) bool {
	return reg >= TempBase && reg <= windowEnd
}

// Executable reports whether reg indexes the register file.
func Executable(reg uint8) bool {
	return reg < NumRegs
}

// RegName returns the display name of a register.
func RegName(reg uint8) string {
	switch {
	case reg == 0:
		return "$0"
	case reg >= TempBase && reg < SavedBase:
		return fmt.Sprintf("$t%d", reg-TempBase)
	case reg >= SavedBase && reg <= windowEnd:
		return fmt.Sprintf("$s%d", reg-SavedBase)
	case reg == NoReg:
		return "$?"
	default:
		return fmt.Sprintf("$%d", reg)
	}
}
