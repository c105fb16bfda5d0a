// Package emu provides functional emulation of the MIPS subset.
package emu

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/mem/mem"
)

// WordSize is the width of an instruction or data word in bytes.
const WordSize = 4

var (
	// ErrRegionOverlap is returned when two regions share an address.
	ErrRegionOverlap = errors.New("memory regions overlap")
	// ErrEmptyRegion is returned for a region with zero size.
	ErrEmptyRegion = errors.New("memory region has zero size")
)

// RegionConfig describes one address region.
type RegionConfig struct {
	Name  string `json:"name"`
	Start uint32 `json:"start"`
	Size  uint32 `json:"size"`
}

// End returns the first address past the region.
func (c RegionConfig) End() uint64 {
	return uint64(c.Start) + uint64(c.Size)
}

// Region is a contiguous slice of the address space backed by its own
// storage.
type Region struct {
	RegionConfig
	storage *mem.Storage
}

// Contains reports whether addr falls in the region.
func (r *Region) Contains(addr uint32) bool {
	return addr >= r.Start && uint64(addr) < r.End()
}

// Memory is a byte-addressable memory made of named, non-overlapping
// regions. Accesses outside every region are ignored.
type Memory struct {
	regions []*Region
}

// NewMemory creates a memory with the given regions, zero-initialized.
func NewMemory(configs ...RegionConfig) (*Memory, error) {
	m := &Memory{}

	for _, c := range configs {
		if c.Size == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyRegion, c.Name)
		}

		for _, r := range m.regions {
			if uint64(c.Start) < r.End() && uint64(r.Start) < c.End() {
				return nil, fmt.Errorf("%w: %q and %q", ErrRegionOverlap, r.Name, c.Name)
			}
		}

		m.regions = append(m.regions, &Region{
			RegionConfig: c,
			storage:      mem.NewStorage(uint64(c.Size)),
		})
	}

	return m, nil
}

// Regions returns the regions in declaration order.
func (m *Memory) Regions() []*Region {
	return m.regions
}

// Region returns the region owning addr.
func (m *Memory) Region(addr uint32) (*Region, bool) {
	for _, r := range m.regions {
		if r.Contains(addr) {
			return r, true
		}
	}
	return nil, false
}

// RegionByName returns the region with the given name.
func (m *Memory) RegionByName(name string) (*Region, bool) {
	for _, r := range m.regions {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// span returns the owning region, the offset of addr in it and how many of
// the n bytes starting at addr lie inside the region.
func (m *Memory) span(addr uint32, n uint32) (*Region, uint64, uint64) {
	r, ok := m.Region(addr)
	if !ok {
		return nil, 0, 0
	}

	offset := uint64(addr - r.Start)
	count := uint64(n)
	if offset+count > uint64(r.Size) {
		count = uint64(r.Size) - offset
	}

	return r, offset, count
}

// Read32 reads a little-endian 32-bit word. Unmapped addresses read as 0
// and bytes past the end of the owning region read as 0.
func (m *Memory) Read32(addr uint32) uint32 {
	r, offset, count := m.span(addr, WordSize)
	if r == nil {
		return 0
	}

	var buf [WordSize]byte
	data, err := r.storage.Read(offset, count)
	if err != nil {
		return 0
	}
	copy(buf[:], data)

	return binary.LittleEndian.Uint32(buf[:])
}

// Write32 writes a little-endian 32-bit word. Writes to unmapped addresses
// are dropped, as are bytes past the end of the owning region.
func (m *Memory) Write32(addr uint32, value uint32) {
	r, offset, count := m.span(addr, WordSize)
	if r == nil {
		return
	}

	var buf [WordSize]byte
	binary.LittleEndian.PutUint32(buf[:], value)

	_ = r.storage.Write(offset, buf[:count])
}

// Read8 reads a single byte.
func (m *Memory) Read8(addr uint32) byte {
	r, offset, count := m.span(addr, 1)
	if r == nil || count == 0 {
		return 0
	}

	data, err := r.storage.Read(offset, 1)
	if err != nil {
		return 0
	}
	return data[0]
}

// Write8 writes a single byte.
func (m *Memory) Write8(addr uint32, value byte) {
	r, offset, _ := m.span(addr, 1)
	if r == nil {
		return
	}

	_ = r.storage.Write(offset, []byte{value})
}
