package cpu

// Push Accumulator
func pha(r *Registers, mem Memory, op operand) {
	mem.Push8(&r.SP, r.A)
	r.next(op, false)
}

// Push Processor Status
// The pushed copy always has B and bit 5 set.
func php(r *Registers, mem Memory, op operand) {
	p := r.P
	p.Set(FlagB)
	p.Set(FlagU)
	mem.Push8(&r.SP, uint8(p))
	r.next(op, false)
}

// Pull Accumulator
func pla(r *Registers, mem Memory, op operand) {
	r.A = mem.Pop8(&r.SP)
	r.P.setZN(r.A)
	r.next(op, false)
}

// Pull Processor Status
func plp(r *Registers, mem Memory, op operand) {
	r.P = restoreStatus(mem.Pop8(&r.SP))
	r.next(op, false)
}
