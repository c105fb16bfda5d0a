package report_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipssim/emu"
	"github.com/sarchlab/mipssim/report"
)

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

var _ = Describe("Report", func() {
	var (
		buf *bytes.Buffer
		e   *emu.Emulator
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}

		logger := logrus.New()
		logger.SetOutput(io.Discard)

		var err error
		e, err = emu.NewEmulator(emu.WithLogger(logger))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Registers", func() {
		It("should write one line per register and the PC", func() {
			e.RegFile().WriteReg(17, 10)

			Expect(report.Registers(buf, e.RegFile())).To(Succeed())

			out := lines(buf)
			Expect(out).To(HaveLen(33))
			Expect(out[0]).To(Equal("R0  $0   0x00000000"))
			Expect(out[8]).To(Equal("R8  $t0  0x00000000"))
			Expect(out[17]).To(Equal("R17 $s1  0x0000000A"))
			Expect(out[31]).To(Equal("R31 $31  0x00000000"))
			Expect(out[32]).To(Equal("PC  0x00000100"))
		})
	})

	Describe("Memory", func() {
		It("should write each word with its index", func() {
			e.Memory().Write32(0x14, 0xFF)

			Expect(report.Memory(buf, e.Memory(), e.DataRegion())).To(Succeed())

			out := lines(buf)
			Expect(out).To(HaveLen(64))
			Expect(out[0]).To(Equal("  0: 0x00000000"))
			Expect(out[5]).To(Equal("  5: 0x000000FF"))
			Expect(out[63]).To(Equal(" 63: 0x00000000"))
		})
	})

	Describe("Trace", func() {
		It("should print each retired instruction with its effects", func() {
			e.AcceptHook(report.NewTrace(buf))
			e.RegFile().WriteReg(16, 5)
			e.RegFile().WriteReg(8, 0x10)
			Expect(e.LoadProgram([]uint32{
				0x02108820, // add $s1, $s0, $s0
				0xAD110004, // sw $s1, 4($t0)
				0x0210883F, // undefined
			})).To(Succeed())

			Expect(e.Run()).To(Succeed())

			out := lines(buf)
			Expect(out).To(HaveLen(3))
			Expect(out[0]).To(HavePrefix("0x00000100  02108820  add $s1, $s0, $s0"))
			Expect(out[0]).To(HaveSuffix("$s1=0x0000000A"))
			Expect(out[1]).To(ContainSubstring("sw $s1, 4($t0)"))
			Expect(out[1]).To(HaveSuffix("[0x00000014]=0x0000000A"))
			Expect(out[2]).To(Equal("0x00000108  0210883F  undefined 0x0210883F"))
		})
	})

	Describe("Dump", func() {
		It("should pretty-print without color to a buffer", func() {
			Expect(report.Dump(buf, e.RegFile())).To(Succeed())

			Expect(buf.String()).To(ContainSubstring("PC"))
			Expect(buf.String()).NotTo(ContainSubstring("\x1b["))
		})
	})
})
