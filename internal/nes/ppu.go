package nes

import "github.com/nevisdale/nescore/internal/bus"

const (
	ppuCyclesPerLine = 341
	ppuLinesPerFrame = 262
	vblankLine       = 241
	preRenderLine    = 261
	paletteStart     = 0x3f00
	oamSizeBytes     = 0x100
)

// PPUCTRL bits
const (
	ctrlIncrement32 = 1 << 2
	ctrlNMIEnable   = 1 << 7
)

// PPUSTATUS bits
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVBlank         = 1 << 7
)

// registers is the part of the bus the PPU watches.
type registers interface {
	WasWritten(reg uint8) bool
	WasRead(reg uint8) bool
	ClearAccess()
	Register(reg uint8) uint8
	SetRegister(reg uint8, data uint8)
}

// PPU keeps the register side of the picture unit in step with the CPU.
// It tracks timing, vblank, VRAM/OAM access and raises NMI; it does not
// render.
type PPU struct {
	regs registers
	mem  *vram
	oam  [oamSizeBytes]uint8

	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8
	scrollX uint8
	scrollY uint8
	addr    uint16
	latch   bool // second write of PPUSCROLL/PPUADDR
	buffer  uint8

	cycles   uint16
	scanLine uint16
	frame    uint64
	nmi      bool
}

func NewPPU(regs registers, mem *vram) *PPU {
	return &PPU{
		regs: regs,
		mem:  mem,
	}
}

func (p *PPU) increment() uint16 {
	if p.ctrl&ctrlIncrement32 != 0 {
		return 32
	}
	return 1
}

// sync applies the register accesses the CPU made since the last tick and
// refreshes the values the CPU will read next.
func (p *PPU) sync() {
	r := p.regs

	if r.WasWritten(bus.PPUCtrl) {
		prev := p.ctrl
		p.ctrl = r.Register(bus.PPUCtrl)
		// enabling NMI during vblank fires it right away
		if prev&ctrlNMIEnable == 0 && p.ctrl&ctrlNMIEnable != 0 && p.status&statusVBlank != 0 {
			p.nmi = true
		}
	}
	if r.WasWritten(bus.PPUMask) {
		p.mask = r.Register(bus.PPUMask)
	}
	if r.WasRead(bus.PPUStatus) {
		p.status &^= statusVBlank
		p.latch = false
	}
	if r.WasWritten(bus.OAMAddr) {
		p.oamAddr = r.Register(bus.OAMAddr)
	}
	if r.WasWritten(bus.OAMData) {
		p.oam[p.oamAddr] = r.Register(bus.OAMData)
		p.oamAddr++
	}
	if r.WasWritten(bus.PPUScroll) {
		v := r.Register(bus.PPUScroll)
		if !p.latch {
			p.scrollX = v
		} else {
			p.scrollY = v
		}
		p.latch = !p.latch
	}
	if r.WasWritten(bus.PPUAddr) {
		v := uint16(r.Register(bus.PPUAddr))
		if !p.latch {
			p.addr = p.addr&0x00ff | (v&0x3f)<<8
		} else {
			p.addr = p.addr&0xff00 | v
		}
		p.latch = !p.latch
	}
	if r.WasWritten(bus.PPUData) {
		p.mem.Write8(p.addr, r.Register(bus.PPUData))
		p.addr = (p.addr + p.increment()) & 0x3fff
	}
	if r.WasRead(bus.PPUData) {
		// reads below the palette come out of the internal buffer one access late
		if p.addr < paletteStart {
			p.buffer = p.mem.Read8(p.addr)
		} else {
			p.buffer = p.mem.Read8(p.addr - 0x1000)
		}
		p.addr = (p.addr + p.increment()) & 0x3fff
	}
	r.ClearAccess()

	p.publish()
}

// publish puts the values the CPU reads into the register latches.
func (p *PPU) publish() {
	p.regs.SetRegister(bus.PPUStatus, p.status)
	p.regs.SetRegister(bus.OAMData, p.oam[p.oamAddr])
	if p.addr >= paletteStart {
		p.regs.SetRegister(bus.PPUData, p.mem.Read8(p.addr))
	} else {
		p.regs.SetRegister(bus.PPUData, p.buffer)
	}
}

// Tic advances the PPU by one dot.
func (p *PPU) Tic() {
	p.sync()

	p.cycles++
	if p.cycles >= ppuCyclesPerLine {
		p.cycles = 0
		p.scanLine++

		if p.scanLine >= ppuLinesPerFrame {
			p.scanLine = 0
			p.frame++
		}
	}

	if p.cycles != 1 {
		return
	}
	switch p.scanLine {
	case vblankLine:
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmi = true
		}
		p.publish()
	case preRenderLine:
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
		p.publish()
	}
}

// TakeNMI reports a pending NMI and clears it.
func (p *PPU) TakeNMI() bool {
	nmi := p.nmi
	p.nmi = false
	return nmi
}

// WriteOAM copies a DMA page into OAM starting at OAMADDR.
func (p *PPU) WriteOAM(page [oamSizeBytes]uint8) {
	for _, v := range page {
		p.oam[p.oamAddr] = v
		p.oamAddr++
	}
	p.publish()
}

func (p *PPU) Frame() uint64 {
	return p.frame
}

func (p *PPU) ScanLine() uint16 {
	return p.scanLine
}

func (p *PPU) Cycle() uint16 {
	return p.cycles
}

// Scroll returns the last PPUSCROLL pair.
func (p *PPU) Scroll() (uint8, uint8) {
	return p.scrollX, p.scrollY
}

func (p *PPU) VRAMAddr() uint16 {
	return p.addr
}
