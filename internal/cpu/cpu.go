package cpu

import (
	"fmt"
	"io"
)

const (
	resetCycles     = 7
	interruptCycles = 7
)

// CPU is the 6502 execution engine. It owns the register file; memory is
// handed in on every call.
type CPU struct {
	Registers

	totalCycles uint64
	tracer      io.Writer
}

func New() *CPU {
	return &CPU{}
}

// Reset puts the CPU in its power-up state and loads PC from the reset vector.
func (c *CPU) Reset(mem Memory) {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.P = Status(FlagU | FlagI)
	c.SP = 0xfd
	c.PC = mem.Read16(vectorReset)
	c.Cycles = resetCycles
	c.totalCycles = resetCycles
}

// TotalCycles is the number of cycles accounted since Reset.
func (c *CPU) TotalCycles() uint64 {
	return c.totalCycles
}

// SetTracer makes the CPU write one nestest-style line per decoded
// instruction to w. A nil writer turns tracing off.
func (c *CPU) SetTracer(w io.Writer) {
	c.tracer = w
}

// Run executes one CPU cycle and
// returns the number of cycles left for the current instruction.
//
// When the countdown is zero the next instruction is fetched, decoded and
// applied at once; the following ticks only count down its cost.
func (c *CPU) Run(mem Memory) uint8 {
	if c.Cycles > 0 {
		c.Cycles--
		return c.Cycles
	}

	c.execute(mem)
	c.totalCycles += uint64(c.Cycles)
	// the fetch tick is the first cycle of the instruction
	c.Cycles--
	return c.Cycles
}

// execute decodes the instruction at PC and applies it.
func (c *CPU) execute(mem Memory) {
	opcode := mem.Read8(c.PC)
	in := opcodes[opcode]
	if in.fn == nil {
		panic(&UnimplementedOpcodeError{Opcode: opcode, PC: c.PC})
	}
	if c.tracer != nil {
		c.trace(mem, in)
	}

	op := operand{mode: in.mode, cycles: in.cycles}
	switch in.mode.size() {
	case 2:
		op.raw = uint16(mem.Read8(c.PC + 1))
	case 3:
		op.raw = mem.Read16(c.PC + 1)
	}
	in.fn(&c.Registers, mem, op)
}

func (c *CPU) trace(mem Memory, in instr) {
	text, n := disassemble(mem, c.PC)
	raw := ""
	for i := uint16(0); i < uint16(n); i++ {
		raw += fmt.Sprintf("%02X ", mem.Read8(c.PC+i))
	}
	fmt.Fprintf(c.tracer, "%04X  %-9s %-31s %s CYC:%d\n", c.PC, raw, text, c.Registers, c.totalCycles)
}

// interrupt pushes PC and status with B clear, then jumps through vector.
func (c *CPU) interrupt(mem Memory, vector uint16) {
	mem.Push16(&c.SP, c.PC)
	p := c.P
	p.Clear(FlagB)
	p.Set(FlagU)
	mem.Push8(&c.SP, uint8(p))
	c.P.Set(FlagI)
	c.PC = mem.Read16(vector)
	c.Cycles += interruptCycles
	c.totalCycles += interruptCycles
}

// IRQ services a maskable interrupt request unless I is set.
func (c *CPU) IRQ(mem Memory) {
	if c.P.Test(FlagI) {
		return
	}
	c.interrupt(mem, vectorIRQ)
}

// NMI services a non-maskable interrupt.
func (c *CPU) NMI(mem Memory) {
	c.interrupt(mem, vectorNMI)
}
