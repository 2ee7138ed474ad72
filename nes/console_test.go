package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testROM() []byte {
	data := buildINES(2, 1, 0, false)
	// reset vector -> 0x8000, a tight NOP / JMP $8000 loop so the console
	// makes forward progress without depending on unrelated opcodes.
	data[16+0x7FFC] = 0x00
	data[16+0x7FFD] = 0x80
	data[16+0x0000] = 0xEA // NOP at 0x8000
	data[16+0x0001] = 0x4C // JMP $8000
	data[16+0x0002] = 0x00
	data[16+0x0003] = 0x80
	return data
}

func TestConsoleRunOneFrameTerminates(t *testing.T) {
	console, err := NewConsole(bytes.NewReader(testROM()))
	require.NoError(t, err)

	console.RunOneFrame()

	// The 261 -> 0 wrap lands on PPU cycle 341*262 = 89342, the second of
	// instruction 29781's three PPU steps; the third step leaves Cycle at 1.
	assert.Equal(t, 0, console.PPU.Scanline)
	assert.Equal(t, 1, console.PPU.Cycle)
}

func TestConsoleRunFramesEndsOnFrameBoundary(t *testing.T) {
	console, err := NewConsole(bytes.NewReader(testROM()))
	require.NoError(t, err)

	console.RunFrames(2)

	assert.Equal(t, 0, console.PPU.Scanline)
}

func TestConsoleServicesNMIBetweenInstructions(t *testing.T) {
	rom := testROM()
	rom[16+0x7FFA] = 0x02 // NMI vector -> 0x8002
	rom[16+0x7FFB] = 0x80
	console, err := NewConsole(bytes.NewReader(rom))
	require.NoError(t, err)
	console.PPU.Ctrl = 0x80

	for i := 0; i < 341*241+10; i++ {
		if console.PPU.TakeNMI() {
			console.CPU.NMI()
			break
		}
		console.PPU.Step()
	}

	assert.Equal(t, uint16(0x8002), console.CPU.PC)
}
