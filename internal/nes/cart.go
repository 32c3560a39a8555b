package nes

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/nevisdale/nescore/internal/bus"
	"github.com/pkg/errors"
)

const (
	inesMagic        = 0x1a53454e
	trainerSizeBytes = 512
)

// Mirroring is the nametable layout wired on the cartridge.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

func (m Mirroring) String() string {
	if m == MirrorVertical {
		return "vertical"
	}
	return "horizontal"
}

type Cart struct {
	prgMem []uint8
	chrMem []uint8

	prgBanks uint8
	chrBanks uint8
	mapperID uint8
	mirror   Mirroring
}

// NewCartFromFile reads a .nes file and returns a Cart struct.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open the file")
	}
	defer file.Close()

	cart, err := NewCart(file)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't load %s", path)
	}
	return cart, nil
}

// NewCart parses an iNES image. Only mapper 0 (NROM) is supported.
func NewCart(r io.Reader) (*Cart, error) {
	var header struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		Flags8     uint8
		Flags9     uint8
		Flags10    uint8
		_          [5]uint8 // unused
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "couldn't read the header")
	}
	if header.Magic != inesMagic {
		return nil, errors.New("invalid header")
	}
	// the second bit of flags6 is the trainer flag
	if header.Flags6&0x4 != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSizeBytes); err != nil {
			return nil, errors.Wrap(err, "couldn't skip the trainer")
		}
	}

	// flag6 and flag7 contain part of the mapper ID in 4 high bits
	// flag6: lower 4 bits of mapper ID
	// flag7: upper 4 bits of mapper ID
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)
	if mapperID != 0 {
		return nil, errors.Errorf("unsupported mapper %d", mapperID)
	}
	if header.PrgRomSize == 0 {
		return nil, errors.New("no PRG ROM")
	}

	cart := &Cart{
		prgMem:   make([]uint8, int(header.PrgRomSize)*bus.PRGBlockSize),
		chrMem:   make([]uint8, int(header.ChrRomSize)*bus.CHRBlockSize),
		prgBanks: header.PrgRomSize,
		chrBanks: header.ChrRomSize,
		mapperID: mapperID,
		mirror:   Mirroring(header.Flags6 & 0x1),
	}

	if _, err := io.ReadFull(r, cart.prgMem); err != nil {
		return nil, errors.Wrapf(err, "couldn't read PRG ROM, expected %d bytes", len(cart.prgMem))
	}
	if _, err := io.ReadFull(r, cart.chrMem); err != nil {
		return nil, errors.Wrapf(err, "couldn't read CHR ROM, expected %d bytes", len(cart.chrMem))
	}

	return cart, nil
}

func (c *Cart) Mirroring() Mirroring {
	return c.mirror
}

// HasCHRRAM reports whether the cartridge ships without CHR ROM and
// gets writable pattern memory instead.
func (c *Cart) HasCHRRAM() bool {
	return c.chrBanks == 0
}

// newBus lays the cartridge out in a fresh CPU address space.
func (c *Cart) newBus() *bus.Bus {
	b := bus.New(int(c.prgBanks), int(c.chrBanks))
	b.LoadPRG(c.prgMem)
	b.LoadCHR(c.chrMem)
	return b
}
