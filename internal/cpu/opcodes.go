package cpu

type instr struct {
	name   string
	mode   addrMode
	fn     func(r *Registers, mem Memory, op operand)
	cycles uint8
}

// opcodes maps every opcode byte to its handler. Missing entries are the
// JAM opcodes and the unstable unofficial ones (XAA, LXA, AHX, TAS, SHX, SHY);
// executing them is fatal.
var opcodes = [0x100]instr{
	0x00: {"BRK", addrModeIMP, brk, 7},
	0x01: {"ORA", addrModeINDX, ora, 6},
	0x03: {"SLO", addrModeINDX, slo, 8},
	0x04: {"NOP", addrModeZP, nop, 3},
	0x05: {"ORA", addrModeZP, ora, 3},
	0x06: {"ASL", addrModeZP, aslM, 5},
	0x07: {"SLO", addrModeZP, slo, 5},
	0x08: {"PHP", addrModeIMP, php, 3},
	0x09: {"ORA", addrModeIMM, ora, 2},
	0x0a: {"ASL", addrModeACC, aslA, 2},
	0x0b: {"ANC", addrModeIMM, anc, 2},
	0x0c: {"NOP", addrModeABS, nop, 4},
	0x0d: {"ORA", addrModeABS, ora, 4},
	0x0e: {"ASL", addrModeABS, aslM, 6},
	0x0f: {"SLO", addrModeABS, slo, 6},
	0x10: {"BPL", addrModeREL, bpl, 2},
	0x11: {"ORA", addrModeINDY, ora, 5},
	0x13: {"SLO", addrModeINDY, slo, 8},
	0x14: {"NOP", addrModeZPX, nop, 4},
	0x15: {"ORA", addrModeZPX, ora, 4},
	0x16: {"ASL", addrModeZPX, aslM, 6},
	0x17: {"SLO", addrModeZPX, slo, 6},
	0x18: {"CLC", addrModeIMP, clc, 2},
	0x19: {"ORA", addrModeABSY, ora, 4},
	0x1a: {"NOP", addrModeIMP, nop, 2},
	0x1b: {"SLO", addrModeABSY, slo, 7},
	0x1c: {"NOP", addrModeABSX, nop, 4},
	0x1d: {"ORA", addrModeABSX, ora, 4},
	0x1e: {"ASL", addrModeABSX, aslM, 7},
	0x1f: {"SLO", addrModeABSX, slo, 7},
	0x20: {"JSR", addrModeABS, jsr, 6},
	0x21: {"AND", addrModeINDX, and, 6},
	0x23: {"RLA", addrModeINDX, rla, 8},
	0x24: {"BIT", addrModeZP, bit, 3},
	0x25: {"AND", addrModeZP, and, 3},
	0x26: {"ROL", addrModeZP, rolM, 5},
	0x27: {"RLA", addrModeZP, rla, 5},
	0x28: {"PLP", addrModeIMP, plp, 4},
	0x29: {"AND", addrModeIMM, and, 2},
	0x2a: {"ROL", addrModeACC, rolA, 2},
	0x2b: {"ANC", addrModeIMM, anc, 2},
	0x2c: {"BIT", addrModeABS, bit, 4},
	0x2d: {"AND", addrModeABS, and, 4},
	0x2e: {"ROL", addrModeABS, rolM, 6},
	0x2f: {"RLA", addrModeABS, rla, 6},
	0x30: {"BMI", addrModeREL, bmi, 2},
	0x31: {"AND", addrModeINDY, and, 5},
	0x33: {"RLA", addrModeINDY, rla, 8},
	0x34: {"NOP", addrModeZPX, nop, 4},
	0x35: {"AND", addrModeZPX, and, 4},
	0x36: {"ROL", addrModeZPX, rolM, 6},
	0x37: {"RLA", addrModeZPX, rla, 6},
	0x38: {"SEC", addrModeIMP, sec, 2},
	0x39: {"AND", addrModeABSY, and, 4},
	0x3a: {"NOP", addrModeIMP, nop, 2},
	0x3b: {"RLA", addrModeABSY, rla, 7},
	0x3c: {"NOP", addrModeABSX, nop, 4},
	0x3d: {"AND", addrModeABSX, and, 4},
	0x3e: {"ROL", addrModeABSX, rolM, 7},
	0x3f: {"RLA", addrModeABSX, rla, 7},
	0x40: {"RTI", addrModeIMP, rti, 6},
	0x41: {"EOR", addrModeINDX, eor, 6},
	0x43: {"SRE", addrModeINDX, sre, 8},
	0x44: {"NOP", addrModeZP, nop, 3},
	0x45: {"EOR", addrModeZP, eor, 3},
	0x46: {"LSR", addrModeZP, lsrM, 5},
	0x47: {"SRE", addrModeZP, sre, 5},
	0x48: {"PHA", addrModeIMP, pha, 3},
	0x49: {"EOR", addrModeIMM, eor, 2},
	0x4a: {"LSR", addrModeACC, lsrA, 2},
	0x4b: {"ALR", addrModeIMM, alr, 2},
	0x4c: {"JMP", addrModeABS, jmp, 3},
	0x4d: {"EOR", addrModeABS, eor, 4},
	0x4e: {"LSR", addrModeABS, lsrM, 6},
	0x4f: {"SRE", addrModeABS, sre, 6},
	0x50: {"BVC", addrModeREL, bvc, 2},
	0x51: {"EOR", addrModeINDY, eor, 5},
	0x53: {"SRE", addrModeINDY, sre, 8},
	0x54: {"NOP", addrModeZPX, nop, 4},
	0x55: {"EOR", addrModeZPX, eor, 4},
	0x56: {"LSR", addrModeZPX, lsrM, 6},
	0x57: {"SRE", addrModeZPX, sre, 6},
	0x58: {"CLI", addrModeIMP, cli, 2},
	0x59: {"EOR", addrModeABSY, eor, 4},
	0x5a: {"NOP", addrModeIMP, nop, 2},
	0x5b: {"SRE", addrModeABSY, sre, 7},
	0x5c: {"NOP", addrModeABSX, nop, 4},
	0x5d: {"EOR", addrModeABSX, eor, 4},
	0x5e: {"LSR", addrModeABSX, lsrM, 7},
	0x5f: {"SRE", addrModeABSX, sre, 7},
	0x60: {"RTS", addrModeIMP, rts, 6},
	0x61: {"ADC", addrModeINDX, adc, 6},
	0x63: {"RRA", addrModeINDX, rra, 8},
	0x64: {"NOP", addrModeZP, nop, 3},
	0x65: {"ADC", addrModeZP, adc, 3},
	0x66: {"ROR", addrModeZP, rorM, 5},
	0x67: {"RRA", addrModeZP, rra, 5},
	0x68: {"PLA", addrModeIMP, pla, 4},
	0x69: {"ADC", addrModeIMM, adc, 2},
	0x6a: {"ROR", addrModeACC, rorA, 2},
	0x6b: {"ARR", addrModeIMM, arr, 2},
	0x6c: {"JMP", addrModeIND, jmp, 5},
	0x6d: {"ADC", addrModeABS, adc, 4},
	0x6e: {"ROR", addrModeABS, rorM, 6},
	0x6f: {"RRA", addrModeABS, rra, 6},
	0x70: {"BVS", addrModeREL, bvs, 2},
	0x71: {"ADC", addrModeINDY, adc, 5},
	0x73: {"RRA", addrModeINDY, rra, 8},
	0x74: {"NOP", addrModeZPX, nop, 4},
	0x75: {"ADC", addrModeZPX, adc, 4},
	0x76: {"ROR", addrModeZPX, rorM, 6},
	0x77: {"RRA", addrModeZPX, rra, 6},
	0x78: {"SEI", addrModeIMP, sei, 2},
	0x79: {"ADC", addrModeABSY, adc, 4},
	0x7a: {"NOP", addrModeIMP, nop, 2},
	0x7b: {"RRA", addrModeABSY, rra, 7},
	0x7c: {"NOP", addrModeABSX, nop, 4},
	0x7d: {"ADC", addrModeABSX, adc, 4},
	0x7e: {"ROR", addrModeABSX, rorM, 7},
	0x7f: {"RRA", addrModeABSX, rra, 7},
	0x80: {"NOP", addrModeIMM, nop, 2},
	0x81: {"STA", addrModeINDX, sta, 6},
	0x82: {"NOP", addrModeIMM, nop, 2},
	0x83: {"SAX", addrModeINDX, sax, 6},
	0x84: {"STY", addrModeZP, sty, 3},
	0x85: {"STA", addrModeZP, sta, 3},
	0x86: {"STX", addrModeZP, stx, 3},
	0x87: {"SAX", addrModeZP, sax, 3},
	0x88: {"DEY", addrModeIMP, dey, 2},
	0x89: {"NOP", addrModeIMM, nop, 2},
	0x8a: {"TXA", addrModeIMP, txa, 2},
	0x8c: {"STY", addrModeABS, sty, 4},
	0x8d: {"STA", addrModeABS, sta, 4},
	0x8e: {"STX", addrModeABS, stx, 4},
	0x8f: {"SAX", addrModeABS, sax, 4},
	0x90: {"BCC", addrModeREL, bcc, 2},
	0x91: {"STA", addrModeINDY, sta, 6},
	0x94: {"STY", addrModeZPX, sty, 4},
	0x95: {"STA", addrModeZPX, sta, 4},
	0x96: {"STX", addrModeZPY, stx, 4},
	0x97: {"SAX", addrModeZPY, sax, 4},
	0x98: {"TYA", addrModeIMP, tya, 2},
	0x99: {"STA", addrModeABSY, sta, 5},
	0x9a: {"TXS", addrModeIMP, txs, 2},
	0x9d: {"STA", addrModeABSX, sta, 5},
	0xa0: {"LDY", addrModeIMM, ldy, 2},
	0xa1: {"LDA", addrModeINDX, lda, 6},
	0xa2: {"LDX", addrModeIMM, ldx, 2},
	0xa3: {"LAX", addrModeINDX, lax, 6},
	0xa4: {"LDY", addrModeZP, ldy, 3},
	0xa5: {"LDA", addrModeZP, lda, 3},
	0xa6: {"LDX", addrModeZP, ldx, 3},
	0xa7: {"LAX", addrModeZP, lax, 3},
	0xa8: {"TAY", addrModeIMP, tay, 2},
	0xa9: {"LDA", addrModeIMM, lda, 2},
	0xaa: {"TAX", addrModeIMP, tax, 2},
	0xac: {"LDY", addrModeABS, ldy, 4},
	0xad: {"LDA", addrModeABS, lda, 4},
	0xae: {"LDX", addrModeABS, ldx, 4},
	0xaf: {"LAX", addrModeABS, lax, 4},
	0xb0: {"BCS", addrModeREL, bcs, 2},
	0xb1: {"LDA", addrModeINDY, lda, 5},
	0xb3: {"LAX", addrModeINDY, lax, 5},
	0xb4: {"LDY", addrModeZPX, ldy, 4},
	0xb5: {"LDA", addrModeZPX, lda, 4},
	0xb6: {"LDX", addrModeZPY, ldx, 4},
	0xb7: {"LAX", addrModeZPY, lax, 4},
	0xb8: {"CLV", addrModeIMP, clv, 2},
	0xb9: {"LDA", addrModeABSY, lda, 4},
	0xba: {"TSX", addrModeIMP, tsx, 2},
	0xbb: {"LAS", addrModeABSY, las, 4},
	0xbc: {"LDY", addrModeABSX, ldy, 4},
	0xbd: {"LDA", addrModeABSX, lda, 4},
	0xbe: {"LDX", addrModeABSY, ldx, 4},
	0xbf: {"LAX", addrModeABSY, lax, 4},
	0xc0: {"CPY", addrModeIMM, cpy, 2},
	0xc1: {"CMP", addrModeINDX, cmp, 6},
	0xc2: {"NOP", addrModeIMM, nop, 2},
	0xc3: {"DCP", addrModeINDX, dcp, 8},
	0xc4: {"CPY", addrModeZP, cpy, 3},
	0xc5: {"CMP", addrModeZP, cmp, 3},
	0xc6: {"DEC", addrModeZP, dec, 5},
	0xc7: {"DCP", addrModeZP, dcp, 5},
	0xc8: {"INY", addrModeIMP, iny, 2},
	0xc9: {"CMP", addrModeIMM, cmp, 2},
	0xca: {"DEX", addrModeIMP, dex, 2},
	0xcb: {"AXS", addrModeIMM, axs, 2},
	0xcc: {"CPY", addrModeABS, cpy, 4},
	0xcd: {"CMP", addrModeABS, cmp, 4},
	0xce: {"DEC", addrModeABS, dec, 6},
	0xcf: {"DCP", addrModeABS, dcp, 6},
	0xd0: {"BNE", addrModeREL, bne, 2},
	0xd1: {"CMP", addrModeINDY, cmp, 5},
	0xd3: {"DCP", addrModeINDY, dcp, 8},
	0xd4: {"NOP", addrModeZPX, nop, 4},
	0xd5: {"CMP", addrModeZPX, cmp, 4},
	0xd6: {"DEC", addrModeZPX, dec, 6},
	0xd7: {"DCP", addrModeZPX, dcp, 6},
	0xd8: {"CLD", addrModeIMP, cld, 2},
	0xd9: {"CMP", addrModeABSY, cmp, 4},
	0xda: {"NOP", addrModeIMP, nop, 2},
	0xdb: {"DCP", addrModeABSY, dcp, 7},
	0xdc: {"NOP", addrModeABSX, nop, 4},
	0xdd: {"CMP", addrModeABSX, cmp, 4},
	0xde: {"DEC", addrModeABSX, dec, 7},
	0xdf: {"DCP", addrModeABSX, dcp, 7},
	0xe0: {"CPX", addrModeIMM, cpx, 2},
	0xe1: {"SBC", addrModeINDX, sbc, 6},
	0xe2: {"NOP", addrModeIMM, nop, 2},
	0xe3: {"ISC", addrModeINDX, isc, 8},
	0xe4: {"CPX", addrModeZP, cpx, 3},
	0xe5: {"SBC", addrModeZP, sbc, 3},
	0xe6: {"INC", addrModeZP, inc, 5},
	0xe7: {"ISC", addrModeZP, isc, 5},
	0xe8: {"INX", addrModeIMP, inx, 2},
	0xe9: {"SBC", addrModeIMM, sbc, 2},
	0xea: {"NOP", addrModeIMP, nop, 2},
	0xeb: {"SBC", addrModeIMM, sbc, 2},
	0xec: {"CPX", addrModeABS, cpx, 4},
	0xed: {"SBC", addrModeABS, sbc, 4},
	0xee: {"INC", addrModeABS, inc, 6},
	0xef: {"ISC", addrModeABS, isc, 6},
	0xf0: {"BEQ", addrModeREL, beq, 2},
	0xf1: {"SBC", addrModeINDY, sbc, 5},
	0xf3: {"ISC", addrModeINDY, isc, 8},
	0xf4: {"NOP", addrModeZPX, nop, 4},
	0xf5: {"SBC", addrModeZPX, sbc, 4},
	0xf6: {"INC", addrModeZPX, inc, 6},
	0xf7: {"ISC", addrModeZPX, isc, 6},
	0xf8: {"SED", addrModeIMP, sed, 2},
	0xf9: {"SBC", addrModeABSY, sbc, 4},
	0xfa: {"NOP", addrModeIMP, nop, 2},
	0xfb: {"ISC", addrModeABSY, isc, 7},
	0xfc: {"NOP", addrModeABSX, nop, 4},
	0xfd: {"SBC", addrModeABSX, sbc, 4},
	0xfe: {"INC", addrModeABSX, inc, 7},
	0xff: {"ISC", addrModeABSX, isc, 7},
}

// Supported reports whether opcode has a handler.
func Supported(opcode uint8) bool {
	return opcodes[opcode].fn != nil
}
