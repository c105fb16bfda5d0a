package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipssim/emu"
)

var _ = Describe("Memory", func() {
	var m *emu.Memory

	BeforeEach(func() {
		var err error
		m, err = emu.NewMemory(emu.DefaultConfig().Regions...)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewMemory", func() {
		It("should create the regions in order", func() {
			regions := m.Regions()
			Expect(regions).To(HaveLen(2))
			Expect(regions[0].Name).To(Equal(emu.DataRegionName))
			Expect(regions[1].Name).To(Equal(emu.InstructionRegionName))
			Expect(regions[1].Start).To(Equal(uint32(0x100)))
			Expect(regions[1].Size).To(Equal(uint32(0x80)))
		})

		It("should zero-initialize every region", func() {
			for addr := uint32(0); addr < 0x180; addr += 4 {
				Expect(m.Read32(addr)).To(BeZero())
			}
		})

		It("should reject overlapping regions", func() {
			_, err := emu.NewMemory(
				emu.RegionConfig{Name: "a", Start: 0x00, Size: 0x20},
				emu.RegionConfig{Name: "b", Start: 0x1C, Size: 0x20},
			)
			Expect(err).To(MatchError(emu.ErrRegionOverlap))
		})

		It("should reject empty regions", func() {
			_, err := emu.NewMemory(emu.RegionConfig{Name: "a", Start: 0x40})
			Expect(err).To(MatchError(emu.ErrEmptyRegion))
		})

		It("should accept adjacent regions", func() {
			_, err := emu.NewMemory(
				emu.RegionConfig{Name: "a", Start: 0x00, Size: 0x20},
				emu.RegionConfig{Name: "b", Start: 0x20, Size: 0x20},
			)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Region lookup", func() {
		It("should map the start address and unmap the end address", func() {
			r, ok := m.Region(0x100)
			Expect(ok).To(BeTrue())
			Expect(r.Name).To(Equal(emu.InstructionRegionName))

			r, ok = m.Region(0xFF)
			Expect(ok).To(BeTrue())
			Expect(r.Name).To(Equal(emu.DataRegionName))

			_, ok = m.Region(0x17F)
			Expect(ok).To(BeTrue())

			_, ok = m.Region(0x180)
			Expect(ok).To(BeFalse())
		})

		It("should find regions by name", func() {
			r, ok := m.RegionByName(emu.DataRegionName)
			Expect(ok).To(BeTrue())
			Expect(r.Start).To(BeZero())

			_, ok = m.RegionByName("stack")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Read32/Write32", func() {
		DescribeTable("round trip",
			func(addr uint32, value uint32) {
				m.Write32(addr, value)
				Expect(m.Read32(addr)).To(Equal(value))
			},
			Entry("zero at data start", uint32(0x00), uint32(0)),
			Entry("max at data start", uint32(0x00), uint32(0xFFFFFFFF)),
			Entry("pattern in data", uint32(0x14), uint32(0xDEADBEEF)),
			Entry("last data word", uint32(0xFC), uint32(0x80000001)),
			Entry("instruction start", uint32(0x100), uint32(0x02108820)),
			Entry("last instruction word", uint32(0x17C), uint32(0x12345678)),
		)

		It("should store words little-endian", func() {
			m.Write32(0x10, 0x11223344)

			Expect(m.Read8(0x10)).To(Equal(byte(0x44)))
			Expect(m.Read8(0x11)).To(Equal(byte(0x33)))
			Expect(m.Read8(0x12)).To(Equal(byte(0x22)))
			Expect(m.Read8(0x13)).To(Equal(byte(0x11)))
		})

		It("should assemble words from bytes little-endian", func() {
			m.Write8(0x20, 0xEF)
			m.Write8(0x21, 0xBE)
			m.Write8(0x22, 0xAD)
			m.Write8(0x23, 0xDE)

			Expect(m.Read32(0x20)).To(Equal(uint32(0xDEADBEEF)))
		})

		It("should drop writes to unmapped addresses", func() {
			m.Write32(0x180, 0xFFFFFFFF)
			m.Write32(0x10000, 0xFFFFFFFF)

			Expect(m.Read32(0x180)).To(BeZero())
			Expect(m.Read32(0x10000)).To(BeZero())
			Expect(m.Read32(0x17C)).To(BeZero())
		})

		It("should access unaligned addresses at the byte offset", func() {
			m.Write32(0x01, 0xAABBCCDD)

			Expect(m.Read32(0x01)).To(Equal(uint32(0xAABBCCDD)))
			Expect(m.Read32(0x00)).To(Equal(uint32(0xBBCCDD00)))
			Expect(m.Read8(0x04)).To(Equal(byte(0xAA)))
		})

		It("should clamp a word straddling the end of its region", func() {
			m.Write32(0xFE, 0x11223344)

			Expect(m.Read8(0xFE)).To(Equal(byte(0x44)))
			Expect(m.Read8(0xFF)).To(Equal(byte(0x33)))
			Expect(m.Read8(0x100)).To(BeZero())
			Expect(m.Read32(0xFE)).To(Equal(uint32(0x00003344)))
		})
	})
})
