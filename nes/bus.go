package nes

// Bus is the CPU-visible address space (spec.md §4.2): a single
// read/write capability implemented by the machine aggregate, rather than
// the scattered globals the design notes warn against (spec.md §9).
type Bus struct {
	RAM  [0x800]byte
	PPU  *PPU
	Cart *Cartridge
}

// NewBus wires RAM, the PPU, and the cartridge into one address space.
func NewBus(ppu *PPU, cart *Cartridge) *Bus {
	return &Bus{PPU: ppu, Cart: cart}
}

// Read implements the Nessy CPU bus map (spec.md §4.2).
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.RAM[addr%0x800]
	case addr < 0x4000:
		return b.PPU.ReadRegister(addr % 8)
	case addr >= 0x8000:
		return b.Cart.ReadPRG(addr)
	default:
		return 0
	}
}

// Read16 reads a little-endian word, with no page-wrap special case
// (callers needing the indirect-JMP bug use addrIndirect instead).
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return lo | hi<<8
}

// Write implements the Nessy CPU bus map (spec.md §4.2).
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr < 0x2000:
		b.RAM[addr%0x800] = v
	case addr < 0x4000:
		b.PPU.WriteRegister(addr%8, v)
	default:
		// No APU, no persistent I/O registers, no mapper bank select.
	}
}
