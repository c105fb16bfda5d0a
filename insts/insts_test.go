package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipssim/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an empty zero Op", func() {
		var i insts.Instruction
		Expect(i.Op).To(Equal(insts.OpNone))
		Expect(i.Defined()).To(BeFalse())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	It("should mark every operand of an empty slot with the sentinel", func() {
		i := insts.Empty()
		Expect(i.Op).To(Equal(insts.OpNone))
		Expect(i.Rs).To(Equal(insts.NoReg))
		Expect(i.Rt).To(Equal(insts.NoReg))
		Expect(i.Rd).To(Equal(insts.NoReg))
		Expect(i.String()).To(Equal("nop"))
	})

	Describe("Register windows", func() {
		It("should accept only registers 8 through 23", func() {
			Expect(insts.InWindow(7)).To(BeFalse())
			Expect(insts.InWindow(8)).To(BeTrue())
			Expect(insts.InWindow(23)).To(BeTrue())
			Expect(insts.InWindow(24)).To(BeFalse())
		})

		It("should treat every 5-bit index as executable", func() {
			for r := uint8(0); r < 32; r++ {
				Expect(insts.Executable(r)).To(BeTrue())
			}
			Expect(insts.Executable(32)).To(BeFalse())
			Expect(insts.Executable(insts.NoReg)).To(BeFalse())
		})

		DescribeTable("RegName",
			func(reg uint8, name string) {
				Expect(insts.RegName(reg)).To(Equal(name))
			},
			Entry("zero", uint8(0), "$0"),
			Entry("first temp", uint8(8), "$t0"),
			Entry("last temp", uint8(15), "$t7"),
			Entry("first saved", uint8(16), "$s0"),
			Entry("last saved", uint8(23), "$s7"),
			Entry("outside windows", uint8(31), "$31"),
			Entry("sentinel", insts.NoReg, "$?"),
		)
	})

	Describe("Op", func() {
		It("should name every op", func() {
			Expect(insts.OpADD.String()).To(Equal("add"))
			Expect(insts.OpSUB.String()).To(Equal("sub"))
			Expect(insts.OpOR.String()).To(Equal("or"))
			Expect(insts.OpLW.String()).To(Equal("lw"))
			Expect(insts.OpSW.String()).To(Equal("sw"))
			Expect(insts.OpUndefined.String()).To(Equal("undefined"))
			Expect(insts.Op(200).String()).To(Equal("invalid"))
		})
	})
})
