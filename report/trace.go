package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mipssim/emu"
	"github.com/sarchlab/mipssim/insts"
)

// Trace is a hook that prints every retired instruction with the values it
// wrote.
type Trace struct {
	w io.Writer
}

// NewTrace creates a Trace writing to w.
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// Func implements sim.Hook.
func (t *Trace) Func(ctx sim.HookCtx) {
	if ctx.Pos != emu.HookPosInstRetired {
		return
	}

	c, ok := ctx.Item.(*emu.Cycle)
	if !ok {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "0x%08X  %08X  %-24s", c.PC, c.Inst.Word, c.Inst)
	for _, rw := range c.RegWrites {
		fmt.Fprintf(&b, " %s=0x%08X", insts.RegName(rw.Reg), rw.Value)
	}
	for _, mw := range c.MemWrites {
		fmt.Fprintf(&b, " [0x%08X]=0x%08X", mw.Addr, mw.Value)
	}

	_, _ = fmt.Fprintln(t.w, strings.TrimRight(b.String(), " "))
}
