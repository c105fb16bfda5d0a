// Package report renders processor state and memory for inspection. It only
// reads emulator state and never feeds back into a simulation.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/sarchlab/mipssim/emu"
	"github.com/sarchlab/mipssim/insts"
)

// Registers writes one line per register followed by the PC.
func Registers(w io.Writer, rf *emu.RegFile) error {
	for i, v := range rf.R {
		if _, err := fmt.Fprintf(w, "R%-2d %-4s 0x%08X\n", i, insts.RegName(uint8(i)), v); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "PC  0x%08X\n", rf.PC)
	return err
}

// Memory writes the words of a region in 4-byte strides, one line per word
// prefixed by its running word index.
func Memory(w io.Writer, m *emu.Memory, r *emu.Region) error {
	for off := uint32(0); off+emu.WordSize <= r.Size; off += emu.WordSize {
		value := m.Read32(r.Start + off)
		if _, err := fmt.Fprintf(w, "%3d: 0x%08X\n", off/emu.WordSize, value); err != nil {
			return err
		}
	}

	return nil
}

// Dump pretty-prints values for debugging. Output is colored only when w is
// a terminal.
func Dump(w io.Writer, a ...interface{}) error {
	printer := pp.New()
	printer.SetColoringEnabled(isTerminal(w))

	_, err := printer.Fprintln(w, a...)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
