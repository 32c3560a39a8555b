package cpu

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// flatMem is 64KB of plain memory, with a write filter for the
// SingleStepTests harness.
type flatMem struct {
	t       *testing.T
	data    []uint8
	allowed map[uint32]struct{} // nil allows every write
}

func newFlatMem(t *testing.T) *flatMem {
	return &flatMem{
		t:    t,
		data: make([]uint8, 0x10000),
	}
}

func (m *flatMem) key(addr uint16, data uint8) uint32 {
	return uint32(addr) | uint32(data)<<16
}

func (m *flatMem) allow(addr uint16, data uint8) {
	if m.allowed == nil {
		m.allowed = make(map[uint32]struct{})
	}
	m.allowed[m.key(addr, data)] = struct{}{}
}

func (m *flatMem) mustBe(addr uint16, data uint8) {
	if m.data[addr] != data {
		m.t.Fatalf("expected %02X at address %04X, got %02X", data, addr, m.data[addr])
	}
}

func (m *flatMem) load(addr uint16, program ...uint8) {
	copy(m.data[addr:], program)
}

func (m *flatMem) reset() {
	clear(m.data)
	m.allowed = nil
}

func (m *flatMem) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *flatMem) Write8(addr uint16, data uint8) {
	if m.allowed != nil {
		if _, ok := m.allowed[m.key(addr, data)]; !ok {
			m.t.Fatalf("not allowed write to address %04X with value %02X", addr, data)
		}
	}
	m.data[addr] = data
}

func (m *flatMem) Read16(addr uint16) uint16 {
	return uint16(m.Read8(addr)) | uint16(m.Read8(addr+1))<<8
}

func (m *flatMem) Write16(addr uint16, data uint16) {
	m.Write8(addr, uint8(data))
	m.Write8(addr+1, uint8(data>>8))
}

// The flat memory wraps the stack pointer silently, as the conformance
// suites expect.
func (m *flatMem) Push8(sp *uint8, data uint8) {
	m.Write8(0x100|uint16(*sp), data)
	*sp--
}

func (m *flatMem) Pop8(sp *uint8) uint8 {
	*sp++
	return m.Read8(0x100 | uint16(*sp))
}

func (m *flatMem) Push16(sp *uint8, data uint16) {
	m.Push8(sp, uint8(data>>8))
	m.Push8(sp, uint8(data))
}

func (m *flatMem) Pop16(sp *uint8) uint16 {
	lo := uint16(m.Pop8(sp))
	hi := uint16(m.Pop8(sp))
	return lo | hi<<8
}

// memMock records the accesses of handlers that must touch a single cell.
type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

func (m *memMock) Read16(addr uint16) uint16 {
	args := m.Called(addr)
	return args.Get(0).(uint16)
}

func (m *memMock) Write16(addr uint16, data uint16) {
	m.Called(addr, data)
}

func (m *memMock) Push8(sp *uint8, data uint8) {
	m.Called(*sp, data)
	*sp--
}

func (m *memMock) Pop8(sp *uint8) uint8 {
	*sp++
	args := m.Called(*sp)
	return args.Get(0).(uint8)
}

func (m *memMock) Push16(sp *uint8, data uint16) {
	m.Called(*sp, data)
	*sp -= 2
}

func (m *memMock) Pop16(sp *uint8) uint16 {
	*sp += 2
	args := m.Called(*sp)
	return args.Get(0).(uint16)
}

// opIMM and friends build the operand the dispatcher would hand over.
func opIMM(v uint8, cycles uint8) operand {
	return operand{mode: addrModeIMM, raw: uint16(v), cycles: cycles}
}

func opMode(mode addrMode, raw uint16, cycles uint8) operand {
	return operand{mode: mode, raw: raw, cycles: cycles}
}
