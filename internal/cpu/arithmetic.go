package cpu

// Add with Carry
// A = A + M + C
//
// Flags affected: C, Z, N, V
//
// Decimal mode is not implemented: the 2A03 has no BCD unit.
func adc(r *Registers, mem Memory, op operand) {
	a, crossed := combine(r, mem, op, OpAdd)
	r.A = a
	r.next(op, crossed)
}

// Subtract with Carry
// A = A - M - (1 - C)
//
// Flags affected: C, Z, N, V
func sbc(r *Registers, mem Memory, op operand) {
	a, crossed := combine(r, mem, op, OpSub)
	r.A = a
	r.next(op, crossed)
}
