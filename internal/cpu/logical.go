package cpu

// Logical AND
// A = A & M
//
// Flags affected: Z, N
func and(r *Registers, mem Memory, op operand) {
	a, crossed := combine(r, mem, op, OpAnd)
	r.A = a
	r.next(op, crossed)
}

// Logical Inclusive OR
// A = A | M
//
// Flags affected: Z, N
func ora(r *Registers, mem Memory, op operand) {
	a, crossed := combine(r, mem, op, OpOr)
	r.A = a
	r.next(op, crossed)
}

// Exclusive OR
// A = A ^ M
//
// Flags affected: Z, N
func eor(r *Registers, mem Memory, op operand) {
	a, crossed := combine(r, mem, op, OpEor)
	r.A = a
	r.next(op, crossed)
}

// Bit Test
// Z = A & M == 0, N = M7, V = M6
func bit(r *Registers, mem Memory, op operand) {
	m, _ := load(r, mem, op)
	r.P.Assign(FlagZ, r.A&m == 0)
	r.P.Assign(FlagN, m&0x80 != 0)
	r.P.Assign(FlagV, m&0x40 != 0)
	r.next(op, false)
}
