package nes

// AddrResult is the outcome of resolving an addressing mode: the effective
// address and whether resolving it crossed a page boundary (spec.md §3).
// Accumulator is set only by addrAccumulator, so a memory operand at
// address 0 is never confused with the accumulator-form shift/rotate
// opcodes (0x0A/0x4A/0x2A/0x6A), whose effective AddrResult would otherwise
// be indistinguishable from the zero value.
type AddrResult struct {
	Addr        uint16
	PageCrossed bool
	Accumulator bool
}

// addrMode resolves one operand for the instruction at the CPU's current
// PC, advancing PC past the operand bytes it consumes.
type addrMode func(c *CPU) AddrResult

func crossesPage(base, result uint16) bool {
	return base&0xFF00 != result&0xFF00
}

// addrAccumulator is the addressing mode for the accumulator forms of
// ASL/LSR/ROL/ROR (0x0A/0x4A/0x2A/0x6A); it consumes no operand bytes.
func addrAccumulator(c *CPU) AddrResult {
	return AddrResult{Accumulator: true}
}

func addrImmediate(c *CPU) AddrResult {
	a := c.PC
	c.PC++
	return AddrResult{Addr: a}
}

func addrZeroPage(c *CPU) AddrResult {
	a := uint16(c.Bus.Read(c.PC))
	c.PC++
	return AddrResult{Addr: a}
}

func addrZeroPageX(c *CPU) AddrResult {
	base := c.Bus.Read(c.PC)
	c.PC++
	return AddrResult{Addr: uint16(base + c.X)}
}

func addrZeroPageY(c *CPU) AddrResult {
	base := c.Bus.Read(c.PC)
	c.PC++
	return AddrResult{Addr: uint16(base + c.Y)}
}

func addrAbsolute(c *CPU) AddrResult {
	a := c.Bus.Read16(c.PC)
	c.PC += 2
	return AddrResult{Addr: a}
}

func addrAbsoluteX(c *CPU) AddrResult {
	base := c.Bus.Read16(c.PC)
	c.PC += 2
	result := base + uint16(c.X)
	return AddrResult{Addr: result, PageCrossed: crossesPage(base, result)}
}

func addrAbsoluteY(c *CPU) AddrResult {
	base := c.Bus.Read16(c.PC)
	c.PC += 2
	result := base + uint16(c.Y)
	return AddrResult{Addr: result, PageCrossed: crossesPage(base, result)}
}

// addrIndirect implements JMP's indirect mode, including the page-wrap bug
// where the high byte is fetched from the start of the same page rather
// than from ptr+1 when the low byte is 0xFF (spec.md §4.3, scenario 7).
func addrIndirect(c *CPU) AddrResult {
	ptr := c.Bus.Read16(c.PC)
	c.PC += 2
	lo := uint16(c.Bus.Read(ptr))
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	hi := uint16(c.Bus.Read(hiAddr))
	return AddrResult{Addr: lo | hi<<8}
}

func addrIndexedIndirect(c *CPU) AddrResult {
	operand := c.Bus.Read(c.PC)
	c.PC++
	ptr := operand + c.X
	lo := uint16(c.Bus.Read(uint16(ptr)))
	hi := uint16(c.Bus.Read(uint16(ptr + 1)))
	return AddrResult{Addr: lo | hi<<8}
}

func addrIndirectIndexed(c *CPU) AddrResult {
	ptr := c.Bus.Read(c.PC)
	c.PC++
	lo := uint16(c.Bus.Read(uint16(ptr)))
	hi := uint16(c.Bus.Read(uint16(ptr + 1)))
	base := lo | hi<<8
	result := base + uint16(c.Y)
	return AddrResult{Addr: result, PageCrossed: crossesPage(base, result)}
}
