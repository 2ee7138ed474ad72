package nes

// PPU is a cycle-timed picture processing unit: it tracks the scanline
// clock, VBlank/NMI edge, and the register-level side effects a CPU bus
// read/write produces, but does not run a background/sprite rendering
// pipeline (spec.md §4.4, Non-goals).
type PPU struct {
	Ctrl     byte
	Mask     byte
	Status   byte
	OAMAddr  byte
	OAM      [256]byte
	VRAM     [0x800]byte
	Palette  [32]byte
	Frame    [256 * 240]byte

	vramAddr   uint16 // v
	tempAddr   uint16 // t
	fineX      byte
	addrLatch  bool // shared write toggle for registers 5 and 6
	readBuffer byte

	Scanline int
	Cycle    int

	nmiTriggered bool
	lastScanline int

	Cart *Cartridge
}

// NewPPU builds a PPU wired to cart and sets the reset-time register state
// (spec.md §3: "reset zeroes all, then sets status=0xA0").
func NewPPU(cart *Cartridge) *PPU {
	p := &PPU{Cart: cart}
	p.Reset()
	return p
}

func (p *PPU) Reset() {
	*p = PPU{Cart: p.Cart}
	p.Status = 0xA0
	p.lastScanline = -1
}

// Step advances the PPU clock by one cycle, generating VBlank/NMI edges
// per spec.md §4.4.
func (p *PPU) Step() {
	p.lastScanline = p.Scanline

	p.Cycle++
	if p.Cycle >= 341 {
		p.Cycle = 0
		p.Scanline++
		if p.Scanline >= 262 {
			p.Scanline = 0
		}
	}

	if p.Scanline == 241 && p.Cycle == 0 {
		p.Status |= 0x80
		if p.Ctrl&0x80 != 0 {
			p.nmiTriggered = true
		}
	}
	if p.lastScanline == 261 && p.Scanline == 0 {
		p.Status &^= 0x80
		p.nmiTriggered = false
	}
}

// FrameComplete reports whether the scanline counter just wrapped from
// 261 to 0, the frame boundary the driver uses to flush an image
// (spec.md §4.1/§5).
func (p *PPU) FrameComplete() bool {
	return p.lastScanline == 261 && p.Scanline == 0
}

// TakeNMI consumes the one-shot NMI edge; the driver polls this between
// CPU instructions rather than the PPU holding a CPU back-reference
// (spec.md §9).
func (p *PPU) TakeNMI() bool {
	if !p.nmiTriggered {
		return false
	}
	p.nmiTriggered = false
	return true
}

// ReadRegister implements the CPU-visible register file at addr&7
// (spec.md §4.4).
func (p *PPU) ReadRegister(reg uint16) byte {
	switch reg {
	case 2:
		v := p.Status
		p.Status &^= 0x80
		p.addrLatch = false
		return v
	case 4:
		return p.OAM[p.OAMAddr]
	case 7:
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister implements the CPU-visible register file at addr&7
// (spec.md §4.4). Registers 5 and 6 share one write-order latch, the
// merge called for in the design notes (spec.md §9).
func (p *PPU) WriteRegister(reg uint16, v byte) {
	switch reg {
	case 0:
		p.Ctrl = v
	case 1:
		p.Mask = v
	case 3:
		p.OAMAddr = v
	case 4:
		p.OAM[p.OAMAddr] = v
		p.OAMAddr++
	case 5:
		p.writeScroll(v)
	case 6:
		p.writeAddr(v)
	case 7:
		p.writeData(v)
	}
}

func (p *PPU) writeScroll(v byte) {
	if !p.addrLatch {
		p.fineX = v & 0x07
		p.tempAddr = p.tempAddr&^0x001F | uint16(v>>3)
	} else {
		p.tempAddr = p.tempAddr&^0x73E0 | uint16(v&0x07)<<12 | uint16(v&0xF8)<<2
	}
	p.addrLatch = !p.addrLatch
}

func (p *PPU) writeAddr(v byte) {
	if !p.addrLatch {
		p.tempAddr = p.tempAddr&^0xFF00 | uint16(v&0x3F)<<8
	} else {
		p.tempAddr = p.tempAddr&^0x00FF | uint16(v)
		p.vramAddr = p.tempAddr
	}
	p.addrLatch = !p.addrLatch
}

func (p *PPU) addrIncrement() uint16 {
	if p.Ctrl&0x04 != 0 {
		return 32
	}
	return 1
}

func (p *PPU) readData() byte {
	addr := p.vramAddr & 0x3FFF
	var v byte
	if addr >= 0x3F00 {
		v = p.readBus(addr)
		p.readBuffer = p.readBus(addr - 0x1000)
	} else {
		v = p.readBuffer
		p.readBuffer = p.readBus(addr)
	}
	p.vramAddr += p.addrIncrement()
	return v
}

func (p *PPU) writeData(v byte) {
	p.writeBus(p.vramAddr&0x3FFF, v)
	p.vramAddr += p.addrIncrement()
}

// readBus/writeBus implement the PPU's own address space (spec.md §4.4):
// CHR bus, 2 KiB nametable VRAM (no mirroring distinction, open question),
// and the 32-byte palette mirror.
func (p *PPU) readBus(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return p.Cart.ReadCHR(addr)
	case addr < 0x3F00:
		return p.VRAM[addr&0x7FF]
	default:
		return p.Palette[addr&0x1F]
	}
}

func (p *PPU) writeBus(addr uint16, v byte) {
	switch {
	case addr < 0x2000:
		p.Cart.WriteCHR(addr, v)
	case addr < 0x3F00:
		p.VRAM[addr&0x7FF] = v
	default:
		p.Palette[addr&0x1F] = v
	}
}
