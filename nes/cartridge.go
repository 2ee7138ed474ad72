package nes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
	trainerSize = 512
)

// iNESHeader is the 16-byte iNES file header (spec.md §6).
type iNESHeader struct {
	Magic     [4]byte
	PRGBanks  byte
	CHRBanks  byte
	Flags6    byte
	Flags7    byte
	PRGRAM    byte
	TVSystem1 byte
	TVSystem2 byte
	_         [5]byte
}

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

// Cartridge holds a parsed iNES image: an immutable PRG-ROM and an
// optionally writable CHR-ROM (spec.md §3). Only mapper 0 is supported;
// anything else is a fatal load error (spec.md §6).
type Cartridge struct {
	PRG []byte
	CHR []byte

	// Mirroring is the iNES flags6 bit 0 nametable mirroring hint, parsed
	// and stored for completeness. nes.PPU's VRAM indexing does not
	// currently consult it (spec.md §9, open question).
	Mirroring Mirroring

	Mapper Mapper
}

// Mirroring is the cartridge-declared nametable layout.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

// LoadCartridge parses an iNES ROM image from r.
func LoadCartridge(r io.Reader) (*Cartridge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "nes: reading ROM image")
	}

	if len(data) < 16 {
		return nil, errors.New("nes: ROM image shorter than an iNES header")
	}

	var header iNESHeader
	if err := binary.Read(bytes.NewReader(data[:16]), binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "nes: parsing iNES header")
	}
	if header.Magic != inesMagic {
		return nil, errors.New("nes: missing iNES magic bytes")
	}

	mapperID := (header.Flags7 & 0xF0) | (header.Flags6 >> 4)
	if mapperID != 0 {
		return nil, errors.Errorf("nes: unsupported mapper %d, only mapper 0 is implemented", mapperID)
	}

	offset := 16
	if header.Flags6&0x04 != 0 {
		offset += trainerSize
	}

	prgSize := int(header.PRGBanks) * prgBankSize
	chrSize := int(header.CHRBanks) * chrBankSize
	if len(data) < offset+prgSize+chrSize {
		return nil, errors.New("nes: ROM image truncated, smaller than header declares")
	}

	cart := &Cartridge{
		PRG: append([]byte(nil), data[offset:offset+prgSize]...),
	}
	offset += prgSize
	if chrSize > 0 {
		cart.CHR = append([]byte(nil), data[offset:offset+chrSize]...)
	}
	if header.Flags6&0x01 != 0 {
		cart.Mirroring = MirrorVertical
	}
	cart.Mapper = NewMapper0(len(cart.PRG), len(cart.CHR))

	return cart, nil
}

// ReadPRG reads a PRG-ROM byte through the mapper's translation, with the
// 16KiB mirror rule from spec.md §4.2 applied by Mapper0.
func (c *Cartridge) ReadPRG(addr uint16) byte {
	return c.PRG[c.Mapper.MapPRG(addr)%len(c.PRG)]
}

// ReadCHR reads a CHR byte, returning 0 when the cartridge has none.
func (c *Cartridge) ReadCHR(addr uint16) byte {
	if len(c.CHR) == 0 {
		return 0
	}
	return c.CHR[int(addr)%len(c.CHR)]
}

// WriteCHR writes a CHR byte whenever the cartridge has CHR data, treating
// it as CHR-RAM; it is a no-op on carts with no CHR (spec.md §4.4).
func (c *Cartridge) WriteCHR(addr uint16, v byte) {
	if len(c.CHR) == 0 {
		return
	}
	c.CHR[int(addr)%len(c.CHR)] = v
}
