package bus

// The PPU side of the register block. These accessors never mark a
// register as read or written.

// WasWritten reports whether the CPU wrote reg since the last ClearAccess.
func (b *Bus) WasWritten(reg uint8) bool {
	return b.ppuWritten&(1<<reg) != 0
}

// WasRead reports whether the CPU read reg since the last ClearAccess.
func (b *Bus) WasRead(reg uint8) bool {
	return b.ppuRead&(1<<reg) != 0
}

// ClearAccess forgets every tracked register access.
func (b *Bus) ClearAccess() {
	b.ppuWritten = 0
	b.ppuRead = 0
}

func (b *Bus) Register(reg uint8) uint8 {
	return b.ppuRegs[reg&0x7]
}

func (b *Bus) SetRegister(reg uint8, data uint8) {
	b.ppuRegs[reg&0x7] = data
}

// CHR8 reads the pattern memory, $0000-$1FFF of the PPU address space.
func (b *Bus) CHR8(addr uint16) uint8 {
	return b.chr[int(addr)%len(b.chr)]
}

func (b *Bus) SetCHR8(addr uint16, data uint8) {
	b.chr[int(addr)%len(b.chr)] = data
}

// TakeDMA returns the page of a pending OAM DMA request and clears it.
func (b *Bus) TakeDMA() (uint8, bool) {
	if !b.dmaPending {
		return 0, false
	}
	b.dmaPending = false
	return b.dmaPage, true
}
