package nes

import (
	"io"

	"github.com/pkg/errors"
)

// Console aggregates one cartridge's CPU, PPU, and bus into the single
// owner the concurrency model requires (spec.md §5: "memory arrays are
// exclusively owned by the emulator instance").
type Console struct {
	CPU  *CPU
	PPU  *PPU
	Bus  *Bus
	Cart *Cartridge
}

// NewConsole loads r as an iNES image and wires up a ready-to-run machine.
func NewConsole(r io.Reader) (*Console, error) {
	cart, err := LoadCartridge(r)
	if err != nil {
		return nil, errors.Wrap(err, "nes: loading cartridge")
	}

	ppu := NewPPU(cart)
	bus := NewBus(ppu, cart)
	cpu := NewCPU(bus)

	return &Console{CPU: cpu, PPU: ppu, Bus: bus, Cart: cart}, nil
}

// StepInstruction executes exactly the canonical ordering from spec.md §5:
// (1) service a pending NMI, (2) run one CPU instruction, (3) run three
// PPU cycles. It reports whether this step crossed a frame boundary.
func (c *Console) StepInstruction() (frameDone bool) {
	if c.PPU.TakeNMI() {
		c.CPU.NMI()
	}

	c.CPU.Step()

	for i := 0; i < 3; i++ {
		c.PPU.Step()
		if c.PPU.FrameComplete() {
			frameDone = true
		}
	}

	return frameDone
}

// RunFrames drives the console until n full frames have elapsed.
func (c *Console) RunFrames(n int) {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		c.RunOneFrame()
	}
}

// RunOneFrame drives the console until exactly one more frame boundary is
// crossed (the scanline 261 → 0 edge, spec.md §5).
func (c *Console) RunOneFrame() {
	for !c.StepInstruction() {
	}
}
