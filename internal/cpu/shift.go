package cpu

// The shift family has two entry points per instruction: the accumulator
// form mutates A, the memory form reads, modifies and writes back through mem.

func shiftLeft(p *Status, v uint8, carryIn bool) uint8 {
	r := v << 1
	if carryIn {
		r |= 0x01
	}
	p.Assign(FlagC, v&0x80 != 0)
	p.setZN(r)
	return r
}

func shiftRight(p *Status, v uint8, carryIn bool) uint8 {
	r := v >> 1
	if carryIn {
		r |= 0x80
	}
	p.Assign(FlagC, v&0x01 != 0)
	p.setZN(r)
	return r
}

// modify runs a read-modify-write cycle on the operand of op.
func modify(r *Registers, mem Memory, op operand, fn func(uint8) uint8) uint8 {
	addr, _ := resolve(r, mem, op)
	v := fn(mem.Read8(addr))
	mem.Write8(addr, v)
	return v
}

// Arithmetic Shift Left
// C <- [76543210] <- 0
//
// Flags affected: C, Z, N
func aslA(r *Registers, _ Memory, op operand) {
	r.A = shiftLeft(&r.P, r.A, false)
	r.next(op, false)
}

func aslM(r *Registers, mem Memory, op operand) {
	modify(r, mem, op, func(v uint8) uint8 { return shiftLeft(&r.P, v, false) })
	r.next(op, false)
}

// Logical Shift Right
// 0 -> [76543210] -> C
//
// Flags affected: C, Z, N
func lsrA(r *Registers, _ Memory, op operand) {
	r.A = shiftRight(&r.P, r.A, false)
	r.next(op, false)
}

func lsrM(r *Registers, mem Memory, op operand) {
	modify(r, mem, op, func(v uint8) uint8 { return shiftRight(&r.P, v, false) })
	r.next(op, false)
}

// Rotate Left
// C <- [76543210] <- C
//
// Flags affected: C, Z, N
func rolA(r *Registers, _ Memory, op operand) {
	r.A = shiftLeft(&r.P, r.A, r.P.Test(FlagC))
	r.next(op, false)
}

func rolM(r *Registers, mem Memory, op operand) {
	modify(r, mem, op, func(v uint8) uint8 { return shiftLeft(&r.P, v, r.P.Test(FlagC)) })
	r.next(op, false)
}

// Rotate Right
// C -> [76543210] -> C
//
// Flags affected: C, Z, N
func rorA(r *Registers, _ Memory, op operand) {
	r.A = shiftRight(&r.P, r.A, r.P.Test(FlagC))
	r.next(op, false)
}

func rorM(r *Registers, mem Memory, op operand) {
	modify(r, mem, op, func(v uint8) uint8 { return shiftRight(&r.P, v, r.P.Test(FlagC)) })
	r.next(op, false)
}
