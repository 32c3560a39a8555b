package cpu

import "fmt"

type addrMode uint8

const (
	// Immediate
	// Operand is a constant value.
	// Example: LDA #$10
	addrModeIMM addrMode = iota + 1

	// Zero Page
	// Operand is located in the first 256 bytes of memory.
	// Example: LDA $10
	addrModeZP

	// Zero Page, X
	// Zero page address plus X, wrapping inside page zero.
	// Example: LDA $10,X
	addrModeZPX

	// Zero Page, Y
	// Zero page address plus Y, wrapping inside page zero.
	// Example: LDX $10,Y
	addrModeZPY

	// Absolute
	// Full 16-bit address.
	// Example: LDA $1234
	addrModeABS

	// Absolute, X
	// Full 16-bit address plus X. May cross a page.
	// Example: LDA $1234,X
	addrModeABSX

	// Absolute, Y
	// Full 16-bit address plus Y. May cross a page.
	// Example: LDA $1234,Y
	addrModeABSY

	// Indirect
	// Target is read from a pointer. Only JMP uses it.
	// Example: JMP ($1234)
	addrModeIND

	// Indexed Indirect (X)
	// X is added to the zero page operand, the pointer is read from there.
	// Example: LDA ($10,X)
	addrModeINDX

	// Indirect Indexed (Y)
	// The pointer is read from the zero page operand, then Y is added to it.
	// Example: LDA ($10),Y
	addrModeINDY

	// Relative
	// Signed 8-bit displacement used by branches.
	// Example: BNE $10
	addrModeREL

	// Accumulator
	// Example: LSR A
	addrModeACC

	// Implied
	// Example: CLC
	addrModeIMP
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// size is the encoded length of an instruction using this mode, opcode included.
func (mode addrMode) size() uint8 {
	switch mode {
	case addrModeACC, addrModeIMP:
		return 1
	case addrModeABS, addrModeABSX, addrModeABSY, addrModeIND:
		return 3
	}
	return 2
}

// operand is what the dispatcher decoded for a single instruction.
type operand struct {
	mode   addrMode
	raw    uint16 // bytes following the opcode, little-endian
	cycles uint8  // base cost of the opcode
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func zeroPageIndexed(base, index uint8) uint16 {
	return uint16(base + index)
}

func absoluteIndexed(base uint16, index uint8) (uint16, bool) {
	addr := base + uint16(index)
	return addr, isDiffPage(base, addr)
}

// zeroPagePointer reads a little-endian pointer whose high byte wraps
// around to $00 when the low byte sits at $FF.
func zeroPagePointer(mem Memory, zp uint8) uint16 {
	lo := uint16(mem.Read8(uint16(zp)))
	hi := uint16(mem.Read8(uint16(zp + 1)))
	return lo | hi<<8
}

func indexedIndirect(mem Memory, zp, x uint8) uint16 {
	return zeroPagePointer(mem, zp+x)
}

func indirectIndexed(mem Memory, zp, y uint8) (uint16, bool) {
	return absoluteIndexed(zeroPagePointer(mem, zp), y)
}

// indirect reproduces the JMP ($xxFF) bug: the high byte of the target
// is fetched from the start of the same page.
func indirect(mem Memory, ptr uint16) uint16 {
	lo := uint16(mem.Read8(ptr))
	hi := uint16(mem.Read8(ptr&0xff00 | uint16(uint8(ptr)+1)))
	return lo | hi<<8
}

// resolve returns the effective address of op and whether indexing crossed a page.
func resolve(r *Registers, mem Memory, op operand) (uint16, bool) {
	switch op.mode {
	case addrModeZP:
		return uint16(uint8(op.raw)), false
	case addrModeZPX:
		return zeroPageIndexed(uint8(op.raw), r.X), false
	case addrModeZPY:
		return zeroPageIndexed(uint8(op.raw), r.Y), false
	case addrModeABS:
		return op.raw, false
	case addrModeABSX:
		return absoluteIndexed(op.raw, r.X)
	case addrModeABSY:
		return absoluteIndexed(op.raw, r.Y)
	case addrModeIND:
		return indirect(mem, op.raw), false
	case addrModeINDX:
		return indexedIndirect(mem, uint8(op.raw), r.X), false
	case addrModeINDY:
		return indirectIndexed(mem, uint8(op.raw), r.Y)
	}
	panic(fmt.Sprintf("cpu: addressing mode %s has no effective address", op.mode))
}

// load fetches the value op refers to.
func load(r *Registers, mem Memory, op operand) (uint8, bool) {
	switch op.mode {
	case addrModeIMM:
		return uint8(op.raw), false
	case addrModeACC:
		return r.A, false
	}
	addr, crossed := resolve(r, mem, op)
	return mem.Read8(addr), crossed
}

// Operation selects the rule used to combine a register with an operand.
type Operation uint8

const (
	OpAdd Operation = iota
	OpSub
	OpAnd
	OpEor
	OpOr
)

func (k Operation) String() string {
	switch k {
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpAnd:
		return "AND"
	case OpEor:
		return "EOR"
	case OpOr:
		return "OR"
	}
	return "???"
}

// Compute combines in and value without touching any flag. carry is the
// carry-in for OpAdd and OpSub and is ignored otherwise.
func (k Operation) Compute(in, value uint8, carry bool) uint8 {
	r, _ := k.compute(in, value, carry)
	return r
}

// Apply combines in and value and updates p: Z and N for every kind,
// C and V for OpAdd and OpSub. The carry-in is taken from p.
func (k Operation) Apply(in, value uint8, p *Status) uint8 {
	r, carry := k.compute(in, value, p.Test(FlagC))
	p.setZN(r)
	switch k {
	case OpAdd:
		p.Assign(FlagC, carry)
		p.Assign(FlagV, isSameSign(in, value) && !isSameSign(in, r))
	case OpSub:
		p.Assign(FlagC, carry)
		p.Assign(FlagV, !isSameSign(in, value) && !isSameSign(in, r))
	}
	return r
}

func (k Operation) compute(in, value uint8, carry bool) (uint8, bool) {
	switch k {
	case OpSub:
		// A - M - (1 - C) == A + ^M + C
		value = ^value
		fallthrough
	case OpAdd:
		r16 := uint16(in) + uint16(value)
		if carry {
			r16++
		}
		return uint8(r16), r16 > 0xff
	case OpAnd:
		return in & value, false
	case OpEor:
		return in ^ value, false
	case OpOr:
		return in | value, false
	}
	panic(fmt.Sprintf("cpu: unknown operation %d", k))
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

// combine fetches the operand of op and folds it into the accumulator.
// It returns the new accumulator and whether the fetch crossed a page.
func combine(r *Registers, mem Memory, op operand, kind Operation) (uint8, bool) {
	value, crossed := load(r, mem, op)
	return kind.Apply(r.A, value, &r.P), crossed
}
