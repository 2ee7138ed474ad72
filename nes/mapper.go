package nes

// Mapper translates CPU/PPU-visible addresses into offsets within a
// cartridge's PRG/CHR banks. Only mapper 0 (NROM) is implemented; the
// interface exists so Cartridge stays agnostic of the translation (spec.md
// §4.2 names this as the extension point, even though no other mapper
// ships).
type Mapper interface {
	// MapPRG translates a CPU address in [0x8000,0x10000) into a PRG-ROM
	// byte offset, before the caller applies the bank-size mirror.
	MapPRG(addr uint16) int
}

// Mapper0 implements NROM: PRG is 16KiB or 32KiB, mirrored when 16KiB;
// CHR is a single fixed 8KiB bank (or CHR-RAM of the same size).
type Mapper0 struct {
	prgSize int
	chrSize int
}

// NewMapper0 builds a Mapper0 for the given PRG/CHR sizes in bytes.
func NewMapper0(prgSize, chrSize int) *Mapper0 {
	return &Mapper0{prgSize: prgSize, chrSize: chrSize}
}

// MapPRG implements Mapper. addr is a full CPU address; the caller
// (Cartridge.ReadPRG) reduces the result modulo the PRG size to realize
// the 16KiB mirror.
func (m *Mapper0) MapPRG(addr uint16) int {
	return int(addr - 0x8000)
}
