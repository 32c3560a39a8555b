package nes

const (
	nametableSizeBytes = 0x400
	paletteSizeBytes   = 0x20

	patternEnd   = 0x1fff
	nametableEnd = 0x3eff
)

// patternMemory is the cartridge side of the PPU address space.
type patternMemory interface {
	CHR8(addr uint16) uint8
	SetCHR8(addr uint16, data uint8)
}

// $0000-$0FFF: Pattern table 0
// $1000-$1FFF: Pattern table 1
// $2000-$23FF: Nametable 0
// $2400-$27FF: Nametable 1
// $2800-$2BFF: Nametable 2
// $2C00-$2FFF: Nametable 3
// $3000-$3EFF: Mirrors of $2000-$2FFF
// $3F00-$3F1F: Palette RAM indexes
// $3F20-$3FFF: Mirrors of $3F00-$3F1F
type vram struct {
	patterns    patternMemory
	chrWritable bool
	mirror      Mirroring

	nametables [2][nametableSizeBytes]uint8
	palette    [paletteSizeBytes]uint8
}

func newVRAM(patterns patternMemory, chrWritable bool, mirror Mirroring) *vram {
	return &vram{
		patterns:    patterns,
		chrWritable: chrWritable,
		mirror:      mirror,
	}
}

// nametable folds the four logical nametables onto the two physical ones.
func (v *vram) nametable(addr uint16) (*[nametableSizeBytes]uint8, uint16) {
	a := (addr - 0x2000) & 0x0fff
	table := a / nametableSizeBytes
	if v.mirror == MirrorVertical {
		table %= 2
	} else {
		table /= 2
	}
	return &v.nametables[table], a % nametableSizeBytes
}

// $3F10/$3F14/$3F18/$3F1C mirror the background entries below them.
func paletteIndex(addr uint16) uint16 {
	i := addr & (paletteSizeBytes - 1)
	if i&0x13 == 0x10 {
		i &^= 0x10
	}
	return i
}

func (v *vram) Read8(addr uint16) uint8 {
	addr &= 0x3fff
	switch {
	case addr <= patternEnd:
		return v.patterns.CHR8(addr)
	case addr <= nametableEnd:
		table, offset := v.nametable(addr)
		return table[offset]
	}
	return v.palette[paletteIndex(addr)]
}

func (v *vram) Write8(addr uint16, data uint8) {
	addr &= 0x3fff
	switch {
	case addr <= patternEnd:
		// CHR ROM ignores writes
		if v.chrWritable {
			v.patterns.SetCHR8(addr, data)
		}
	case addr <= nametableEnd:
		table, offset := v.nametable(addr)
		table[offset] = data
	default:
		v.palette[paletteIndex(addr)] = data
	}
}
