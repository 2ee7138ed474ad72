package nes

import "github.com/golang/glog"

// Status flag bit positions (spec.md §4.3).
const (
	flagC byte = 1 << 0
	flagZ byte = 1 << 1
	flagI byte = 1 << 2
	flagD byte = 1 << 3
	flagB byte = 1 << 4
	flagU byte = 1 << 5
	flagV byte = 1 << 6
	flagN byte = 1 << 7
)

const stackBase uint16 = 0x0100

// CPU is a partial MOS 6502 interpreter executing one whole instruction
// per Step call (spec.md §4.3). Step returns the instruction's cycle count
// and adds it to Cycles; the frame driver does not use that count and runs
// three PPU cycles per instruction.
type CPU struct {
	A, X, Y, SP byte
	P           byte
	PC          uint16
	Cycles      uint64

	Bus *Bus
}

// NewCPU builds a CPU wired to bus and immediately resets it.
func NewCPU(bus *Bus) *CPU {
	c := &CPU{Bus: bus}
	c.Reset()
	return c
}

// Reset loads PC from the reset vector and establishes power-on register
// state (spec.md §3).
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = 0x24
	c.PC = c.Bus.Read16(0xFFFC)
	c.Cycles = 7
}

// NMI services a non-maskable interrupt: push PC and P (B cleared), set I,
// and vector through 0xFFFA/FFFB (spec.md §4.3).
func (c *CPU) NMI() {
	c.push16(c.PC)
	c.push(c.P &^ flagB | flagU)
	c.setFlag(flagI, true)
	c.PC = c.Bus.Read16(0xFFFA)
	c.Cycles += 7
}

func (c *CPU) setFlag(flag byte, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *CPU) flag(flag byte) bool {
	return c.P&flag != 0
}

func (c *CPU) setZN(v byte) {
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, v&0x80 != 0)
}

func (c *CPU) push(v byte) {
	c.Bus.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.Bus.Read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}

// Step decodes and executes one instruction, returning the number of
// cycles it consumed (base cycles plus any page-cross/branch penalty).
func (c *CPU) Step() int {
	opcode := c.Bus.Read(c.PC)
	c.PC++

	entry := opcodeTable[opcode]
	if entry.op == nil {
		glog.V(1).Infof("nes: unknown opcode %02X at %04X, charged 2 cycles", opcode, c.PC-1)
		c.Cycles += 2
		return 2
	}

	var result AddrResult
	if entry.mode != nil {
		result = entry.mode(c)
	}

	extra := entry.op(c, result)
	cycles := entry.cycles + extra
	if entry.pageCrossPenalty && result.PageCrossed {
		cycles++
	}

	c.Cycles += uint64(cycles)
	return cycles
}
