package cpu

// compare computes reg - value without storing it.
// C = reg >= value, Z = reg == value, N = bit 7 of the difference.
func compare(p *Status, reg, value uint8) {
	diff := OpSub.Compute(reg, value, true)
	p.Assign(FlagC, reg >= value)
	p.setZN(diff)
}

// Compare Accumulator
func cmp(r *Registers, mem Memory, op operand) {
	m, crossed := load(r, mem, op)
	compare(&r.P, r.A, m)
	r.next(op, crossed)
}

// Compare X Register
func cpx(r *Registers, mem Memory, op operand) {
	m, _ := load(r, mem, op)
	compare(&r.P, r.X, m)
	r.next(op, false)
}

// Compare Y Register
func cpy(r *Registers, mem Memory, op operand) {
	m, _ := load(r, mem, op)
	compare(&r.P, r.Y, m)
	r.next(op, false)
}
