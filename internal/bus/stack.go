package bus

// The stack grows down inside $0100-$01FF. SP points at the next free
// slot: a push writes then decrements, a pop increments then reads.
// Running off either end of the page is fatal. A push with SP at $00 is
// an overflow, so $0100 is never written and the stack holds 255 bytes.

func (b *Bus) Push8(sp *uint8, data uint8) {
	if *sp == 0x00 {
		panic(newStackError(ErrStackOverflow, *sp))
	}
	b.ram[StackPage|uint16(*sp)] = data
	*sp--
}

func (b *Bus) Pop8(sp *uint8) uint8 {
	if *sp == 0xff {
		panic(newStackError(ErrStackUnderflow, *sp))
	}
	*sp++
	return b.ram[StackPage|uint16(*sp)]
}

// Push16 pushes the high byte first so the word reads little-endian in memory.
func (b *Bus) Push16(sp *uint8, data uint16) {
	b.Push8(sp, uint8(data>>8))
	b.Push8(sp, uint8(data))
}

func (b *Bus) Pop16(sp *uint8) uint16 {
	lo := uint16(b.Pop8(sp))
	hi := uint16(b.Pop8(sp))
	return lo | hi<<8
}
