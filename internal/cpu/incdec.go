package cpu

// Increments and decrements wrap at 8 bits and only touch Z and N.

func inc(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return v + 1 })
	r.P.setZN(v)
	r.next(op, false)
}

func dec(r *Registers, mem Memory, op operand) {
	v := modify(r, mem, op, func(v uint8) uint8 { return v - 1 })
	r.P.setZN(v)
	r.next(op, false)
}

func inx(r *Registers, _ Memory, op operand) {
	r.X++
	r.P.setZN(r.X)
	r.next(op, false)
}

func iny(r *Registers, _ Memory, op operand) {
	r.Y++
	r.P.setZN(r.Y)
	r.next(op, false)
}

func dex(r *Registers, _ Memory, op operand) {
	r.X--
	r.P.setZN(r.X)
	r.next(op, false)
}

func dey(r *Registers, _ Memory, op operand) {
	r.Y--
	r.P.setZN(r.Y)
	r.next(op, false)
}
