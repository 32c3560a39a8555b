package cpu

func tax(r *Registers, _ Memory, op operand) {
	r.X = r.A
	r.P.setZN(r.X)
	r.next(op, false)
}

func tay(r *Registers, _ Memory, op operand) {
	r.Y = r.A
	r.P.setZN(r.Y)
	r.next(op, false)
}

func txa(r *Registers, _ Memory, op operand) {
	r.A = r.X
	r.P.setZN(r.A)
	r.next(op, false)
}

func tya(r *Registers, _ Memory, op operand) {
	r.A = r.Y
	r.P.setZN(r.A)
	r.next(op, false)
}

func tsx(r *Registers, _ Memory, op operand) {
	r.X = r.SP
	r.P.setZN(r.X)
	r.next(op, false)
}

// TXS is the only transfer that leaves the flags alone.
func txs(r *Registers, _ Memory, op operand) {
	r.SP = r.X
	r.next(op, false)
}
