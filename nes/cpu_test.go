package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestADCSignedOverflow(t *testing.T) {
	// scenario 3: A=0x50, M=0x50, C=0 -> A=0xA0, C=0, V=1, N=1, Z=0
	c := newTestCPU()
	c.load(0x69, 0x50) // ADC #$50
	c.A = 0x50
	c.setFlag(flagC, false)

	c.Step()

	assert.Equal(t, byte(0xA0), c.A)
	assert.False(t, c.flag(flagC))
	assert.True(t, c.flag(flagV))
	assert.True(t, c.flag(flagN))
	assert.False(t, c.flag(flagZ))
}

func TestSBCBorrow(t *testing.T) {
	// scenario 4: A=0x50, M=0xB0, C=1 -> A=0xA0, C=0, V=1, N=1, Z=0
	c := newTestCPU()
	c.load(0xE9, 0xB0) // SBC #$B0
	c.A = 0x50
	c.setFlag(flagC, true)

	c.Step()

	assert.Equal(t, byte(0xA0), c.A)
	assert.False(t, c.flag(flagC))
	assert.True(t, c.flag(flagV))
	assert.True(t, c.flag(flagN))
	assert.False(t, c.flag(flagZ))
}

func TestSBCIsADCOfComplement(t *testing.T) {
	cases := []struct {
		a, m  byte
		carry bool
	}{
		{0x50, 0x50, false},
		{0x00, 0x01, true},
		{0x7F, 0x80, true},
		{0xFF, 0xFF, false},
	}
	for _, tc := range cases {
		sbc := newTestCPU()
		sbc.A = tc.a
		sbc.setFlag(flagC, tc.carry)
		sbc.load(0xE9, tc.m) // SBC #$m
		sbc.Step()

		adc := newTestCPU()
		adc.A = tc.a
		adc.setFlag(flagC, tc.carry)
		adc.adc(^tc.m)

		assert.Equal(t, adc.A, sbc.A)
		assert.Equal(t, adc.flag(flagC), sbc.flag(flagC))
		assert.Equal(t, adc.flag(flagV), sbc.flag(flagV))
		assert.Equal(t, adc.flag(flagZ), sbc.flag(flagZ))
		assert.Equal(t, adc.flag(flagN), sbc.flag(flagN))
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	// scenario 5: JSR pushes (PC_after_operand - 1); RTS restores
	// PC_after_operand, and SP returns to its pre-JSR value.
	c := newTestCPU()
	c.load(0x20, 0x10, 0x00) // JSR $0010
	c.Bus.Write(0x0010, 0x60) // RTS
	startSP := c.SP

	c.Step() // JSR
	assert.Equal(t, uint16(0x0010), c.PC)
	assert.NotEqual(t, startSP, c.SP)

	c.Step() // RTS
	assert.Equal(t, uint16(0x0003), c.PC)
	assert.Equal(t, startSP, c.SP)
}

func TestBRKAndRTI(t *testing.T) {
	c := newTestCPU()
	c.Bus.Cart.PRG[0x7FFE] = 0x00
	c.Bus.Cart.PRG[0x7FFF] = 0x90 // IRQ vector -> 0x9000
	c.load(0x00)                 // BRK
	startSP := c.SP

	c.Step()
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.flag(flagI))

	c.PC = 0
	c.load(0x40) // RTI
	c.Step()
	assert.Equal(t, startSP, c.SP)
	assert.True(t, c.flag(flagU))
}

func TestBranchCycleCounts(t *testing.T) {
	// untaken: +0, taken same page: +1, taken crossing page: +2.
	untaken := newTestCPU()
	untaken.load(0xD0, 0x05) // BNE +5
	untaken.setFlag(flagZ, true)
	assert.Equal(t, 2, untaken.Step())

	taken := newTestCPU()
	taken.load(0xD0, 0x05) // BNE +5, same page
	taken.setFlag(flagZ, false)
	assert.Equal(t, 3, taken.Step())

	crossing := newTestCPU()
	crossing.PC = 0x00F0
	crossing.Bus.Write(0x00F0, 0xD0)
	crossing.Bus.Write(0x00F1, 0x10) // PC lands at 0x00F2, +0x10 crosses into page 1
	crossing.setFlag(flagZ, false)
	assert.Equal(t, 4, crossing.Step())
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	// scenario 7: operand 0x10FF, mem[0x10FF]=0x34, mem[0x1000]=0x12,
	// mem[0x1100]=0x56 -> PC = 0x1234, not 0x5634.
	// The JMP sits at 0x0200: 0x1000 mirrors RAM address 0, so code planted
	// there would be overwritten by the pointer's high byte.
	c := newTestCPU()
	c.PC = 0x0200
	c.Bus.Write(0x0200, 0x6C) // JMP ($10FF)
	c.Bus.Write(0x0201, 0xFF)
	c.Bus.Write(0x0202, 0x10)
	c.Bus.Write(0x10FF, 0x34)
	c.Bus.Write(0x1000, 0x12)
	c.Bus.Write(0x1100, 0x56)

	c.Step()

	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestAbsoluteXPageCrossPenalty(t *testing.T) {
	noCross := newTestCPU()
	noCross.load(0xBD, 0x00, 0x00) // LDA $0000,X
	noCross.X = 0x01
	assert.Equal(t, 4, noCross.Step())

	cross := newTestCPU()
	cross.load(0xBD, 0xFF, 0x00) // LDA $00FF,X
	cross.X = 0x01
	assert.Equal(t, 5, cross.Step())
}

func TestStatusUnusedBitAlwaysSet(t *testing.T) {
	c := newTestCPU()
	c.load(0xA9, 0x00) // LDA #$00
	c.Step()
	assert.Equal(t, flagU, c.P&flagU)
}

func TestUnknownOpcodeChargesTwoCyclesAndContinues(t *testing.T) {
	c := newTestCPU()
	c.load(0x02) // not in opcodeTable
	cycles := c.Step()
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint16(1), c.PC)
}

func TestStackPointerWrapsModulo256(t *testing.T) {
	c := newTestCPU()
	c.SP = 0x00
	c.push(0xAB)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0xAB), c.Bus.Read(0x0100))
}

// TestShiftZeroPageAddressTargetsMemoryNotAccumulator guards against
// treating a zero-page operand of $00 as the accumulator form: ASL $00
// must shift mem[0], leaving A untouched. The instruction is planted at
// 0x0200 so it does not overwrite mem[0].
func TestShiftZeroPageAddressTargetsMemoryNotAccumulator(t *testing.T) {
	c := newTestCPU()
	c.A = 0xFF
	c.Bus.Write(0x0000, 0x01)
	c.PC = 0x0200
	c.Bus.Write(0x0200, 0x06) // ASL $00
	c.Bus.Write(0x0201, 0x00)

	c.Step()

	assert.Equal(t, byte(0x02), c.Bus.Read(0x0000))
	assert.Equal(t, byte(0xFF), c.A)
}

func TestShiftAccumulatorFormTargetsARegister(t *testing.T) {
	c := newTestCPU()
	c.A = 0x01
	c.Bus.Write(0x0000, 0xFF)
	c.PC = 0x0200
	c.Bus.Write(0x0200, 0x0A) // ASL A, planted away from mem[0]

	c.Step()

	assert.Equal(t, byte(0x02), c.A)
	assert.Equal(t, byte(0xFF), c.Bus.Read(0x0000))
}
