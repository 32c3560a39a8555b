package cpu

// Loads set Z and N from the loaded value, stores touch no flags.

func lda(r *Registers, mem Memory, op operand) {
	v, crossed := load(r, mem, op)
	r.A = v
	r.P.setZN(v)
	r.next(op, crossed)
}

func ldx(r *Registers, mem Memory, op operand) {
	v, crossed := load(r, mem, op)
	r.X = v
	r.P.setZN(v)
	r.next(op, crossed)
}

func ldy(r *Registers, mem Memory, op operand) {
	v, crossed := load(r, mem, op)
	r.Y = v
	r.P.setZN(v)
	r.next(op, crossed)
}

func store(r *Registers, mem Memory, op operand, v uint8) {
	addr, _ := resolve(r, mem, op)
	mem.Write8(addr, v)
	r.next(op, false)
}

func sta(r *Registers, mem Memory, op operand) {
	store(r, mem, op, r.A)
}

func stx(r *Registers, mem Memory, op operand) {
	store(r, mem, op, r.X)
}

func sty(r *Registers, mem Memory, op operand) {
	store(r, mem, op, r.Y)
}
