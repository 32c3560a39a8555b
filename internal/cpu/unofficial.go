package cpu

// Stable unofficial opcodes exercised by commercial games and nestest.
// Read-modify-write combinations never pay the page crossing cycle.

// LAX: LDA + LDX
func lax(r *Registers, mem Memory, op operand) {
	v, crossed := load(r, mem, op)
	r.A = v
	r.X = v
	r.P.setZN(v)
	r.next(op, crossed)
}

// SAX: M = A & X
func sax(r *Registers, mem Memory, op operand) {
	store(r, mem, op, r.A&r.X)
}

// DCP: DEC + CMP
func dcp(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return v - 1 })
	compare(&r.P, r.A, v)
	r.next(op, false)
}

// ISC: INC + SBC
func isc(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return v + 1 })
	r.A = OpSub.Apply(r.A, v, &r.P)
	r.next(op, false)
}

// SLO: ASL + ORA
func slo(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return shiftLeft(&r.P, v, false) })
	r.A = OpOr.Apply(r.A, v, &r.P)
	r.next(op, false)
}

// RLA: ROL + AND
func rla(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return shiftLeft(&r.P, v, r.P.Test(FlagC)) })
	r.A = OpAnd.Apply(r.A, v, &r.P)
	r.next(op, false)
}

// SRE: LSR + EOR
func sre(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return shiftRight(&r.P, v, false) })
	r.A = OpEor.Apply(r.A, v, &r.P)
	r.next(op, false)
}

// RRA: ROR + ADC
func rra(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return shiftRight(&r.P, v, r.P.Test(FlagC)) })
	r.A = OpAdd.Apply(r.A, v, &r.P)
	r.next(op, false)
}

// ANC: AND, then C = N
func anc(r *Registers, _ Memory, op operand) {
	r.A = OpAnd.Apply(r.A, uint8(op.raw), &r.P)
	r.P.Assign(FlagC, r.P.Test(FlagN))
	r.next(op, false)
}

// ALR: AND + LSR A
func alr(r *Registers, _ Memory, op operand) {
	r.A = shiftRight(&r.P, r.A&uint8(op.raw), false)
	r.next(op, false)
}

// ARR: AND + ROR A, with C = bit 6 and V = bit 6 ^ bit 5 of the result
func arr(r *Registers, _ Memory, op operand) {
	v := r.A & uint8(op.raw)
	v >>= 1
	if r.P.Test(FlagC) {
		v |= 0x80
	}
	r.A = v
	r.P.setZN(v)
	r.P.Assign(FlagC, v&0x40 != 0)
	r.P.Assign(FlagV, (v>>6^v>>5)&0x01 != 0)
	r.next(op, false)
}

// AXS: X = (A & X) - M without borrow, flags as CMP
func axs(r *Registers, _ Memory, op operand) {
	ax := r.A & r.X
	m := uint8(op.raw)
	compare(&r.P, ax, m)
	r.X = OpSub.Compute(ax, m, true)
	r.next(op, false)
}

// LAS: A = X = SP = M & SP
func las(r *Registers, mem Memory, op operand) {
	m, crossed := load(r, mem, op)
	v := m & r.SP
	r.A = v
	r.X = v
	r.SP = v
	r.P.setZN(v)
	r.next(op, crossed)
}
