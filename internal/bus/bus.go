package bus

const (
	// Detailed Memory Map:
	//
	// $0000-$07FF: Internal RAM
	//   2KB of working RAM. $0100-$01FF is the stack page.
	//
	// $0800-$1FFF: Mirrors of $0000-$07FF
	//   Three mirrors folded onto the same cells by masking the address with $07FF.
	//
	// $2000-$2007: PPU Registers
	//   $2000: PPUCTRL
	//   $2001: PPUMASK
	//   $2002: PPUSTATUS
	//   $2003: OAMADDR
	//   $2004: OAMDATA
	//   $2005: PPUSCROLL
	//   $2006: PPUADDR
	//   $2007: PPUDATA
	//
	// $2008-$3FFF: Mirrors of $2000-$2007 every 8 bytes.
	//
	// $4000-$401F: APU and I/O registers. $4014 requests an OAM DMA,
	//   $4016/$4017 are the pads.
	//
	// $4020-$5FFF: Expansion area, not mapped.
	//
	// $6000-$7FFF: Cartridge RAM
	//
	// $8000-$BFFF: PRG-ROM bank one
	// $C000-$FFFF: PRG-ROM bank two, mirrors bank one on 16KB carts
	ramSizeBytes    = 0x800
	ramMirrorEnd    = 0x1fff
	ppuRegsEnd      = 0x3fff
	apuIOStart      = 0x4000
	apuIOEnd        = 0x401f
	prgRAMStart     = 0x6000
	prgRAMEnd       = 0x7fff
	prgRAMSizeBytes = 0x2000
	romBankOneStart = 0x8000
	romBankTwoStart = 0xc000

	StackPage = uint16(0x0100)

	PRGBlockSize = 0x4000
	CHRBlockSize = 0x2000

	oamDMAAddr = 0x4014
)

// PPU register offsets inside the $2000 block.
const (
	PPUCtrl uint8 = iota
	PPUMask
	PPUStatus
	OAMAddr
	OAMData
	PPUScroll
	PPUAddr
	PPUData

	ppuRegCount
)

type region uint8

const (
	regionRAM region = iota + 1
	regionPPU
	regionAPUIO
	regionPRGRAM
	regionROMBankOne
	regionROMBankTwo
)

// Bus is the CPU address space: RAM, the PPU register block, I/O latches,
// cartridge RAM and the PRG-ROM banks.
type Bus struct {
	ram    [ramSizeBytes]uint8
	apuIO  [apuIOEnd - apuIOStart + 1]uint8
	prgRAM [prgRAMSizeBytes]uint8

	ppuRegs    [ppuRegCount]uint8
	ppuWritten uint8 // bit n set when register n was written since ClearAccess
	ppuRead    uint8 // bit n set when register n was read since ClearAccess

	dmaPage    uint8
	dmaPending bool

	prg []uint8
	chr []uint8
}

// New allocates a bus for a cartridge with the given number of
// 16KB program blocks and 8KB character blocks. Without character blocks
// the cartridge gets 8KB of CHR-RAM.
func New(prgBlocks, chrBlocks int) *Bus {
	if chrBlocks == 0 {
		chrBlocks = 1
	}
	return &Bus{
		prg: make([]uint8, prgBlocks*PRGBlockSize),
		chr: make([]uint8, chrBlocks*CHRBlockSize),
	}
}

// LoadPRG copies program data into PRG-ROM.
func (b *Bus) LoadPRG(data []uint8) {
	copy(b.prg, data)
}

// LoadCHR copies character data into CHR memory.
func (b *Bus) LoadCHR(data []uint8) {
	copy(b.chr, data)
}

func classify(addr uint16) (region, bool) {
	switch {
	case addr <= ramMirrorEnd:
		return regionRAM, true
	case addr <= ppuRegsEnd:
		return regionPPU, true
	case addr >= apuIOStart && addr <= apuIOEnd:
		return regionAPUIO, true
	case addr >= prgRAMStart && addr <= prgRAMEnd:
		return regionPRGRAM, true
	case addr >= romBankOneStart && addr < romBankTwoStart:
		return regionROMBankOne, true
	case addr >= romBankTwoStart:
		return regionROMBankTwo, true
	}
	return 0, false
}

// romOffset maps a bank address into PRG-ROM. Bank two is the last
// 16KB block, which is bank one itself on single block carts.
func (b *Bus) romOffset(addr uint16, op string) int {
	if len(b.prg) == 0 {
		panic(newAddressError(op, addr))
	}
	if addr < romBankTwoStart {
		return int(addr - romBankOneStart)
	}
	return len(b.prg) - PRGBlockSize + int(addr-romBankTwoStart)
}

// cell returns the backing byte of a non PPU address.
func (b *Bus) cell(addr uint16, op string) *uint8 {
	r, ok := classify(addr)
	if !ok {
		panic(newAddressError(op, addr))
	}

	switch r {
	case regionRAM:
		return &b.ram[addr&(ramSizeBytes-1)]
	case regionAPUIO:
		return &b.apuIO[addr-apuIOStart]
	case regionPRGRAM:
		return &b.prgRAM[addr-prgRAMStart]
	case regionROMBankOne, regionROMBankTwo:
		return &b.prg[b.romOffset(addr, op)]
	}
	panic(newAddressError(op, addr))
}

func isPPU(addr uint16) bool {
	return addr > ramMirrorEnd && addr <= ppuRegsEnd
}

func (b *Bus) Read8(addr uint16) uint8 {
	if isPPU(addr) {
		reg := uint8(addr & 0x7)
		b.ppuRead |= 1 << reg
		return b.ppuRegs[reg]
	}
	// pads are not wired, read as released
	if addr == 0x4016 || addr == 0x4017 {
		return 0
	}
	return *b.cell(addr, "read")
}

// Writes into PRG-ROM land in the backing store, there is no mapper
// register behind them.
func (b *Bus) Write8(addr uint16, data uint8) {
	if isPPU(addr) {
		reg := uint8(addr & 0x7)
		b.ppuWritten |= 1 << reg
		b.ppuRegs[reg] = data
		return
	}
	if addr == oamDMAAddr {
		b.dmaPage = data
		b.dmaPending = true
	}
	*b.cell(addr, "write") = data
}

// Read16 reads a little-endian word.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return lo | hi<<8
}

// Write16 stores the low byte at addr and the high byte at addr+1.
func (b *Bus) Write16(addr uint16, data uint16) {
	b.Write8(addr, uint8(data))
	b.Write8(addr+1, uint8(data>>8))
}
