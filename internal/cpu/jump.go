package cpu

const (
	vectorNMI   = uint16(0xfffa)
	vectorReset = uint16(0xfffc)
	vectorIRQ   = uint16(0xfffe)
)

// Jump, absolute and indirect. The indirect form goes through resolve and
// therefore keeps the page wrap bug.
func jmp(r *Registers, mem Memory, op operand) {
	addr, _ := resolve(r, mem, op)
	r.PC = addr
	r.Cycles = op.cycles
}

// Jump to Subroutine
// The pushed return address is the last byte of the JSR itself.
func jsr(r *Registers, mem Memory, op operand) {
	mem.Push16(&r.SP, r.PC+2)
	r.PC = op.raw
	r.Cycles = op.cycles
}

// Return from Subroutine
func rts(r *Registers, mem Memory, op operand) {
	r.PC = mem.Pop16(&r.SP) + 1
	r.Cycles = op.cycles
}

// Return from Interrupt
// Status is restored first with bit 5 forced set and B dropped, then PC.
func rti(r *Registers, mem Memory, op operand) {
	r.P = restoreStatus(mem.Pop8(&r.SP))
	r.PC = mem.Pop16(&r.SP)
	r.Cycles = op.cycles
}

func restoreStatus(v uint8) Status {
	s := Status(v)
	s.Set(FlagU)
	s.Clear(FlagB)
	return s
}
