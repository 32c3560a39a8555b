package cpu

import "fmt"

// Registers is the 6502 register file together with the cycle countdown
// of the instruction in flight.
type Registers struct {
	A      uint8  // accumulator
	X      uint8  // index register X
	Y      uint8  // index register Y
	P      Status // processor status
	SP     uint8  // offset into the stack page
	PC     uint16 // address of the next instruction
	Cycles uint8  // ticks left before the next fetch
}

// Memory is the CPU view of the address space.
type Memory interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
	Read16(addr uint16) uint16
	Write16(addr uint16, data uint16)

	Push8(sp *uint8, data uint8)
	Pop8(sp *uint8) uint8
	Push16(sp *uint8, data uint16)
	Pop16(sp *uint8) uint16
}

// next moves PC past the instruction and loads its cost into the countdown.
// penalty adds the extra cycle of a read that crossed a page.
func (r *Registers) next(op operand, penalty bool) {
	r.PC += uint16(op.mode.size())
	r.Cycles = op.cycles
	if penalty {
		r.Cycles++
	}
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X", r.A, r.X, r.Y, uint8(r.P), r.SP)
}

// UnimplementedOpcodeError is raised when the dispatcher meets an opcode
// without a handler.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unimplemented opcode $%02X at $%04X", e.Opcode, e.PC)
}
