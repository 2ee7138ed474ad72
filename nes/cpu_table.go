package nes

// instruction is the (operation, addressing mode, base cycles, page-cross
// penalty) tuple the design notes call for (spec.md §9), replacing a
// switch over the raw opcode byte.
type instruction struct {
	name             string
	mode             addrMode
	op               opFunc
	cycles           int
	pageCrossPenalty bool
}

// opcodeTable is indexed directly by opcode byte; entries left zero-valued
// (op == nil) are unknown/undocumented opcodes, silently charged 2 cycles
// by CPU.Step (spec.md §4.3: "must not halt").
var opcodeTable [256]instruction

func init() {
	for _, e := range opcodeEntries {
		opcodeTable[e.opcode] = instruction{
			name:             e.name,
			mode:             e.mode,
			op:               e.op,
			cycles:           e.cycles,
			pageCrossPenalty: e.pageCrossPenalty,
		}
	}
}

var opcodeEntries = []struct {
	opcode           byte
	name             string
	mode             addrMode
	op               opFunc
	cycles           int
	pageCrossPenalty bool
}{
	// ORA
	{0x09, "ORA", addrImmediate, opORA, 2, false},
	{0x05, "ORA", addrZeroPage, opORA, 3, false},
	{0x15, "ORA", addrZeroPageX, opORA, 4, false},
	{0x0D, "ORA", addrAbsolute, opORA, 4, false},
	{0x1D, "ORA", addrAbsoluteX, opORA, 4, true},
	{0x19, "ORA", addrAbsoluteY, opORA, 4, true},
	{0x01, "ORA", addrIndexedIndirect, opORA, 6, false},
	{0x11, "ORA", addrIndirectIndexed, opORA, 5, true},

	// AND
	{0x29, "AND", addrImmediate, opAND, 2, false},
	{0x25, "AND", addrZeroPage, opAND, 3, false},
	{0x35, "AND", addrZeroPageX, opAND, 4, false},
	{0x2D, "AND", addrAbsolute, opAND, 4, false},
	{0x3D, "AND", addrAbsoluteX, opAND, 4, true},
	{0x39, "AND", addrAbsoluteY, opAND, 4, true},
	{0x21, "AND", addrIndexedIndirect, opAND, 6, false},
	{0x31, "AND", addrIndirectIndexed, opAND, 5, true},

	// EOR
	{0x49, "EOR", addrImmediate, opEOR, 2, false},
	{0x45, "EOR", addrZeroPage, opEOR, 3, false},
	{0x55, "EOR", addrZeroPageX, opEOR, 4, false},
	{0x4D, "EOR", addrAbsolute, opEOR, 4, false},
	{0x5D, "EOR", addrAbsoluteX, opEOR, 4, true},
	{0x59, "EOR", addrAbsoluteY, opEOR, 4, true},
	{0x41, "EOR", addrIndexedIndirect, opEOR, 6, false},
	{0x51, "EOR", addrIndirectIndexed, opEOR, 5, true},

	// ADC
	{0x69, "ADC", addrImmediate, opADC, 2, false},
	{0x65, "ADC", addrZeroPage, opADC, 3, false},
	{0x75, "ADC", addrZeroPageX, opADC, 4, false},
	{0x6D, "ADC", addrAbsolute, opADC, 4, false},
	{0x7D, "ADC", addrAbsoluteX, opADC, 4, true},
	{0x79, "ADC", addrAbsoluteY, opADC, 4, true},
	{0x61, "ADC", addrIndexedIndirect, opADC, 6, false},
	{0x71, "ADC", addrIndirectIndexed, opADC, 5, true},

	// SBC
	{0xE9, "SBC", addrImmediate, opSBC, 2, false},
	{0xE5, "SBC", addrZeroPage, opSBC, 3, false},
	{0xF5, "SBC", addrZeroPageX, opSBC, 4, false},
	{0xED, "SBC", addrAbsolute, opSBC, 4, false},
	{0xFD, "SBC", addrAbsoluteX, opSBC, 4, true},
	{0xF9, "SBC", addrAbsoluteY, opSBC, 4, true},
	{0xE1, "SBC", addrIndexedIndirect, opSBC, 6, false},
	{0xF1, "SBC", addrIndirectIndexed, opSBC, 5, true},

	// CMP
	{0xC9, "CMP", addrImmediate, opCMP, 2, false},
	{0xC5, "CMP", addrZeroPage, opCMP, 3, false},
	{0xD5, "CMP", addrZeroPageX, opCMP, 4, false},
	{0xCD, "CMP", addrAbsolute, opCMP, 4, false},
	{0xDD, "CMP", addrAbsoluteX, opCMP, 4, true},
	{0xD9, "CMP", addrAbsoluteY, opCMP, 4, true},
	{0xC1, "CMP", addrIndexedIndirect, opCMP, 6, false},
	{0xD1, "CMP", addrIndirectIndexed, opCMP, 5, true},

	// LDA
	{0xA9, "LDA", addrImmediate, opLDA, 2, false},
	{0xA5, "LDA", addrZeroPage, opLDA, 3, false},
	{0xB5, "LDA", addrZeroPageX, opLDA, 4, false},
	{0xAD, "LDA", addrAbsolute, opLDA, 4, false},
	{0xBD, "LDA", addrAbsoluteX, opLDA, 4, true},
	{0xB9, "LDA", addrAbsoluteY, opLDA, 4, true},
	{0xA1, "LDA", addrIndexedIndirect, opLDA, 6, false},
	{0xB1, "LDA", addrIndirectIndexed, opLDA, 5, true},

	// STA (no page-cross penalty on stores)
	{0x85, "STA", addrZeroPage, opSTA, 3, false},
	{0x95, "STA", addrZeroPageX, opSTA, 4, false},
	{0x8D, "STA", addrAbsolute, opSTA, 4, false},
	{0x9D, "STA", addrAbsoluteX, opSTA, 5, false},
	{0x99, "STA", addrAbsoluteY, opSTA, 5, false},
	{0x81, "STA", addrIndexedIndirect, opSTA, 6, false},
	{0x91, "STA", addrIndirectIndexed, opSTA, 6, false},

	// LDX / STX
	{0xA2, "LDX", addrImmediate, opLDX, 2, false},
	{0xA6, "LDX", addrZeroPage, opLDX, 3, false},
	{0xB6, "LDX", addrZeroPageY, opLDX, 4, false},
	{0xAE, "LDX", addrAbsolute, opLDX, 4, false},
	{0xBE, "LDX", addrAbsoluteY, opLDX, 4, true},
	{0x86, "STX", addrZeroPage, opSTX, 3, false},
	{0x96, "STX", addrZeroPageY, opSTX, 4, false},
	{0x8E, "STX", addrAbsolute, opSTX, 4, false},

	// LDY / STY
	{0xA0, "LDY", addrImmediate, opLDY, 2, false},
	{0xA4, "LDY", addrZeroPage, opLDY, 3, false},
	{0xB4, "LDY", addrZeroPageX, opLDY, 4, false},
	{0xAC, "LDY", addrAbsolute, opLDY, 4, false},
	{0xBC, "LDY", addrAbsoluteX, opLDY, 4, true},
	{0x84, "STY", addrZeroPage, opSTY, 3, false},
	{0x94, "STY", addrZeroPageX, opSTY, 4, false},
	{0x8C, "STY", addrAbsolute, opSTY, 4, false},

	// INC / DEC
	{0xE6, "INC", addrZeroPage, opINC, 5, false},
	{0xF6, "INC", addrZeroPageX, opINC, 6, false},
	{0xEE, "INC", addrAbsolute, opINC, 6, false},
	{0xFE, "INC", addrAbsoluteX, opINC, 7, false},
	{0xC6, "DEC", addrZeroPage, opDEC, 5, false},
	{0xD6, "DEC", addrZeroPageX, opDEC, 6, false},
	{0xCE, "DEC", addrAbsolute, opDEC, 6, false},
	{0xDE, "DEC", addrAbsoluteX, opDEC, 7, false},

	// ASL / LSR / ROL / ROR — accumulator forms use addrAccumulator, which
	// sets AddrResult.Accumulator explicitly rather than relying on a nil
	// mode or a zero-value AddrResult (a memory operand at address 0 is a
	// legal, distinct case from the accumulator form).
	{0x0A, "ASL", addrAccumulator, opASL, 2, false},
	{0x06, "ASL", addrZeroPage, opASL, 5, false},
	{0x16, "ASL", addrZeroPageX, opASL, 6, false},
	{0x0E, "ASL", addrAbsolute, opASL, 6, false},
	{0x1E, "ASL", addrAbsoluteX, opASL, 7, false},
	{0x4A, "LSR", addrAccumulator, opLSR, 2, false},
	{0x46, "LSR", addrZeroPage, opLSR, 5, false},
	{0x56, "LSR", addrZeroPageX, opLSR, 6, false},
	{0x4E, "LSR", addrAbsolute, opLSR, 6, false},
	{0x5E, "LSR", addrAbsoluteX, opLSR, 7, false},
	{0x2A, "ROL", addrAccumulator, opROL, 2, false},
	{0x26, "ROL", addrZeroPage, opROL, 5, false},
	{0x36, "ROL", addrZeroPageX, opROL, 6, false},
	{0x2E, "ROL", addrAbsolute, opROL, 6, false},
	{0x3E, "ROL", addrAbsoluteX, opROL, 7, false},
	{0x6A, "ROR", addrAccumulator, opROR, 2, false},
	{0x66, "ROR", addrZeroPage, opROR, 5, false},
	{0x76, "ROR", addrZeroPageX, opROR, 6, false},
	{0x6E, "ROR", addrAbsolute, opROR, 6, false},
	{0x7E, "ROR", addrAbsoluteX, opROR, 7, false},

	// register transfers / increments
	{0xAA, "TAX", nil, opTAX, 2, false},
	{0xA8, "TAY", nil, opTAY, 2, false},
	{0x8A, "TXA", nil, opTXA, 2, false},
	{0x98, "TYA", nil, opTYA, 2, false},
	{0xBA, "TSX", nil, opTSX, 2, false},
	{0x9A, "TXS", nil, opTXS, 2, false},
	{0xE8, "INX", nil, opINX, 2, false},
	{0xC8, "INY", nil, opINY, 2, false},
	{0xCA, "DEX", nil, opDEX, 2, false},
	{0x88, "DEY", nil, opDEY, 2, false},

	// branches: mode is addrImmediate so PC lands past the relative byte,
	// and the op reads it back via r.Addr (spec.md §4.3 branch cycle rules).
	{0x10, "BPL", addrImmediate, opBPL, 2, false},
	{0x30, "BMI", addrImmediate, opBMI, 2, false},
	{0x50, "BVC", addrImmediate, opBVC, 2, false},
	{0x70, "BVS", addrImmediate, opBVS, 2, false},
	{0x90, "BCC", addrImmediate, opBCC, 2, false},
	{0xB0, "BCS", addrImmediate, opBCS, 2, false},
	{0xD0, "BNE", addrImmediate, opBNE, 2, false},
	{0xF0, "BEQ", addrImmediate, opBEQ, 2, false},

	// flags
	{0x18, "CLC", nil, opCLC, 2, false},
	{0x38, "SEC", nil, opSEC, 2, false},
	{0x58, "CLI", nil, opCLI, 2, false},
	{0x78, "SEI", nil, opSEI, 2, false},
	{0xD8, "CLD", nil, opCLD, 2, false},
	{0xF8, "SED", nil, opSED, 2, false},
	{0xB8, "CLV", nil, opCLV, 2, false},

	// jumps / subroutines / interrupts
	{0x4C, "JMP", addrAbsolute, opJMP, 3, false},
	{0x6C, "JMP", addrIndirect, opJMP, 5, false},
	{0x20, "JSR", addrAbsolute, opJSR, 6, false},
	{0x60, "RTS", nil, opRTS, 6, false},
	{0x00, "BRK", nil, opBRK, 7, false},
	{0x40, "RTI", nil, opRTI, 6, false},

	// stack
	{0x48, "PHA", nil, opPHA, 3, false},
	{0x68, "PLA", nil, opPLA, 4, false},
	{0x08, "PHP", nil, opPHP, 3, false},
	{0x28, "PLP", nil, opPLP, 4, false},

	// BIT / CPX / CPY
	{0x24, "BIT", addrZeroPage, opBIT, 3, false},
	{0x2C, "BIT", addrAbsolute, opBIT, 4, false},
	{0xE0, "CPX", addrImmediate, opCPX, 2, false},
	{0xE4, "CPX", addrZeroPage, opCPX, 3, false},
	{0xEC, "CPX", addrAbsolute, opCPX, 4, false},
	{0xC0, "CPY", addrImmediate, opCPY, 2, false},
	{0xC4, "CPY", addrZeroPage, opCPY, 3, false},
	{0xCC, "CPY", addrAbsolute, opCPY, 4, false},

	// NOP
	{0xEA, "NOP", nil, opNOP, 2, false},
}
