package cpu

import "fmt"

// disassemble formats the instruction at pc and returns it with its encoded length.
func disassemble(mem Memory, pc uint16) (string, uint8) {
	in := opcodes[mem.Read8(pc)]
	if in.fn == nil {
		return "???", 1
	}

	switch in.mode {
	case addrModeIMM:
		return fmt.Sprintf("%s #$%02X", in.name, mem.Read8(pc+1)), 2
	case addrModeZP:
		return fmt.Sprintf("%s $%02X", in.name, mem.Read8(pc+1)), 2
	case addrModeZPX:
		return fmt.Sprintf("%s $%02X,X", in.name, mem.Read8(pc+1)), 2
	case addrModeZPY:
		return fmt.Sprintf("%s $%02X,Y", in.name, mem.Read8(pc+1)), 2
	case addrModeABS:
		return fmt.Sprintf("%s $%04X", in.name, mem.Read16(pc+1)), 3
	case addrModeABSX:
		return fmt.Sprintf("%s $%04X,X", in.name, mem.Read16(pc+1)), 3
	case addrModeABSY:
		return fmt.Sprintf("%s $%04X,Y", in.name, mem.Read16(pc+1)), 3
	case addrModeIND:
		return fmt.Sprintf("%s ($%04X)", in.name, mem.Read16(pc+1)), 3
	case addrModeINDX:
		return fmt.Sprintf("%s ($%02X,X)", in.name, mem.Read8(pc+1)), 2
	case addrModeINDY:
		return fmt.Sprintf("%s ($%02X),Y", in.name, mem.Read8(pc+1)), 2
	case addrModeREL:
		disp := int8(mem.Read8(pc + 1))
		return fmt.Sprintf("%s $%04X", in.name, pc+2+uint16(int16(disp))), 2
	case addrModeACC:
		return in.name + " A", 1
	}
	return in.name, 1
}

// Disassemble returns the instructions found in [from, to], keyed by address.
// The range must only cover memory that can be read without side effects.
func Disassemble(mem Memory, from, to uint16) map[uint16]string {
	disasm := make(map[uint16]string)

	addr := uint32(from)
	for addr <= uint32(to) {
		pc := uint16(addr)
		text, n := disassemble(mem, pc)
		disasm[pc] = fmt.Sprintf("$%04X: %s", pc, text)
		addr += uint32(n)
	}

	return disasm
}
