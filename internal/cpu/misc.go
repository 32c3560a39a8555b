package cpu

// Force Interrupt
// Pushes the address of BRK + 2 and the status with B set, then jumps
// through the IRQ/BRK vector with interrupts disabled.
func brk(r *Registers, mem Memory, op operand) {
	mem.Push16(&r.SP, r.PC+2)
	p := r.P
	p.Set(FlagB)
	p.Set(FlagU)
	mem.Push8(&r.SP, uint8(p))
	r.P.Set(FlagI)
	r.PC = mem.Read16(vectorIRQ)
	r.Cycles = op.cycles
}

// nop covers the official NOP and the unofficial variants that skip
// operand bytes. None of them touch memory.
func nop(r *Registers, mem Memory, op operand) {
	crossed := false
	if op.mode == addrModeABSX {
		_, crossed = resolve(r, mem, op)
	}
	r.next(op, crossed)
}

func flagOp(f Flag, v bool) func(*Registers, Memory, operand) {
	return func(r *Registers, _ Memory, op operand) {
		r.P.Assign(f, v)
		r.next(op, false)
	}
}

var (
	clc = flagOp(FlagC, false)
	sec = flagOp(FlagC, true)
	cli = flagOp(FlagI, false)
	sei = flagOp(FlagI, true)
	cld = flagOp(FlagD, false)
	sed = flagOp(FlagD, true)
	clv = flagOp(FlagV, false)
)
