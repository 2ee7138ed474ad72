package nes

import (
	"fmt"
	"reflect"
)

// Disassemble renders the instruction at addr as a mnemonic and its raw
// operand bytes, without mutating the bus. Grounded on the same
// opcode table Step uses, so the two can never drift apart; useful for
// test failure messages and manual ROM inspection.
func Disassemble(bus *Bus, addr uint16) string {
	opcode := bus.Read(addr)
	entry := opcodeTable[opcode]
	if entry.op == nil {
		return fmt.Sprintf("%04X: $%02X (unknown)", addr, opcode)
	}

	width := operandWidth(entry.mode)
	operand := make([]byte, width)
	for i := range operand {
		operand[i] = bus.Read(addr + 1 + uint16(i))
	}

	return fmt.Sprintf("%04X: %s %02X % X", addr, entry.name, opcode, operand)
}

// InstructionLength returns the total byte length (opcode plus operand) of
// the instruction at addr, for callers walking a disassembly listing.
func InstructionLength(bus *Bus, addr uint16) uint16 {
	opcode := bus.Read(addr)
	entry := opcodeTable[opcode]
	if entry.op == nil {
		return 1
	}
	return 1 + uint16(operandWidth(entry.mode))
}

// twoByteModes identifies the addressing modes that consume a 16-bit
// operand, compared by function identity since Go forbids == between
// non-nil func values directly.
var twoByteModes = map[uintptr]bool{
	funcPtr(addrAbsolute):  true,
	funcPtr(addrAbsoluteX): true,
	funcPtr(addrAbsoluteY): true,
	funcPtr(addrIndirect):  true,
}

func funcPtr(mode addrMode) uintptr {
	return reflect.ValueOf(mode).Pointer()
}

func operandWidth(mode addrMode) int {
	if mode == nil || funcPtr(mode) == funcPtr(addrAccumulator) {
		return 0
	}
	if twoByteModes[funcPtr(mode)] {
		return 2
	}
	return 1
}
