// Package duovm implements the instruction-interpretation core of the
// DuoVM toy machine: a flat 64KiB address space split into a read-only
// ROM region and a writable SRAM region, a single-step CPU, and the two
// collaborator interfaces (Display, InputSource) the driver wires up.
package duovm

import "github.com/golang/glog"

const (
	// MemSize is the full 16-bit address space.
	MemSize = 1 << 16
	// SRAMStart is the first writable address; everything below is ROM.
	SRAMStart = 0xE000
)

// Memory is the machine's single 65536-byte address space. Addresses
// below SRAMStart are ROM: loaded once and never written again for the
// life of the session.
type Memory struct {
	bytes [MemSize]byte
}

// NewMemory returns a zeroed memory image.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the byte at addr. addr is a uint16 so it can never be out
// of range, and Read performs no bounds check.
func (m *Memory) Read(addr uint16) byte {
	return m.bytes[addr]
}

// Read16 reads a little-endian word at addr, addr+1.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := m.Read(addr)
	hi := m.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Write stores v at addr. Writing into the ROM region is a fatal error:
// the VM has no recovery path for a program that corrupts its own code.
func (m *Memory) Write(addr uint16, v byte) {
	if addr < SRAMStart {
		glog.Fatalf("duovm: write to ROM address %04X", addr)
	}
	m.bytes[addr] = v
}

// LoadAt copies data into memory starting at addr, without the ROM-write
// check. Used only by loaders to populate the initial image.
func (m *Memory) LoadAt(addr uint16, data []byte) {
	if int(addr)+len(data) > MemSize {
		glog.Fatalf("duovm: load record at %04X overruns the address space", addr)
	}
	for i, b := range data {
		m.bytes[int(addr)+i] = b
	}
}
