package cpu

// branchIf moves PC to PC + 2 + disp when flag is in the wanted state,
// otherwise past the 2-byte instruction. A taken branch costs one more
// cycle, and one more again when the target lies on another page.
func branchIf(r *Registers, flag Flag, want bool, disp int8, cycles uint8) {
	r.Cycles = cycles
	next := r.PC + 2
	if r.P.Test(flag) != want {
		r.PC = next
		return
	}
	target := next + uint16(int16(disp))
	r.Cycles++
	if isDiffPage(next, target) {
		r.Cycles++
	}
	r.PC = target
}

func bcc(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagC, false, int8(op.raw), op.cycles)
}

func bcs(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagC, true, int8(op.raw), op.cycles)
}

func beq(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagZ, true, int8(op.raw), op.cycles)
}

func bne(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagZ, false, int8(op.raw), op.cycles)
}

func bmi(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagN, true, int8(op.raw), op.cycles)
}

func bpl(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagN, false, int8(op.raw), op.cycles)
}

func bvc(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagV, false, int8(op.raw), op.cycles)
}

func bvs(r *Registers, _ Memory, op operand) {
	branchIf(r, FlagV, true, int8(op.raw), op.cycles)
}
