package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OperationAdd(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			var p Status
			r := OpAdd.Apply(uint8(a), uint8(b), &p)

			sum := a + b
			require.Equal(t, uint8(sum), r)
			require.Equal(t, sum > 0xff, p.Test(FlagC), "C for %02X+%02X", a, b)
			require.Equal(t, uint8(sum) == 0, p.Test(FlagZ), "Z for %02X+%02X", a, b)
			require.Equal(t, sum&0x80 != 0, p.Test(FlagN), "N for %02X+%02X", a, b)
			sameSign := (a^b)&0x80 == 0
			require.Equal(t, sameSign && (a^sum)&0x80 != 0, p.Test(FlagV), "V for %02X+%02X", a, b)
		}
	}
}

func Test_OperationAddCarryIn(t *testing.T) {
	p := Status(FlagC)
	assert.Equal(t, uint8(0x01), OpAdd.Apply(0xff, 0x01, &p))
	assert.Equal(t, Status(FlagC), p)

	p = Status(FlagC)
	assert.Equal(t, uint8(0xa1), OpAdd.Apply(0x50, 0x50, &p))
	assert.Equal(t, Status(FlagN|FlagV), p)
}

func Test_OperationSub(t *testing.T) {
	type testArgs struct {
		in, value uint8
		initP     Status
		expected  uint8
		expectedP Status
	}
	tests := map[string]testArgs{
		"no borrow":                 {in: 0x50, value: 0x10, initP: Status(FlagC), expected: 0x40, expectedP: Status(FlagC)},
		"borrow in":                 {in: 0x50, value: 0x10, initP: 0, expected: 0x3f, expectedP: Status(FlagC)},
		"zero":                      {in: 0x10, value: 0x10, initP: Status(FlagC), expected: 0x00, expectedP: Status(FlagC | FlagZ)},
		"borrow out":                {in: 0x10, value: 0x20, initP: Status(FlagC), expected: 0xf0, expectedP: Status(FlagN)},
		"positive minus negative":   {in: 0x50, value: 0xb0, initP: Status(FlagC), expected: 0xa0, expectedP: Status(FlagN | FlagV)},
		"negative minus positive":   {in: 0xd0, value: 0x70, initP: Status(FlagC), expected: 0x60, expectedP: Status(FlagC | FlagV)},
		"same sign never overflows": {in: 0xd0, value: 0xf0, initP: Status(FlagC), expected: 0xe0, expectedP: Status(FlagN)},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			p := in.initP
			assert.Equal(t, in.expected, OpSub.Apply(in.in, in.value, &p), "result")
			assert.Equal(t, in.expectedP, p, "P register")
		})
	}
}

func Test_OperationLogicalFlagIsolation(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		p := Status(FlagC | FlagV)
		r := OpAnd.Apply(uint8(a), uint8(a), &p)
		require.Equal(t, uint8(a), r)
		require.Equal(t, a == 0, p.Test(FlagZ))
		require.Equal(t, a&0x80 != 0, p.Test(FlagN))
		require.True(t, p.Test(FlagC), "C untouched")
		require.True(t, p.Test(FlagV), "V untouched")
	}

	p := Status(0)
	assert.Equal(t, uint8(0xff), OpOr.Apply(0xf0, 0x0f, &p))
	assert.Equal(t, Status(FlagN), p)
	assert.Equal(t, uint8(0x00), OpEor.Apply(0x5a, 0x5a, &p))
	assert.Equal(t, Status(FlagZ), p)
}

func Test_OperationCompute(t *testing.T) {
	assert.Equal(t, uint8(0x00), OpAdd.Compute(0xff, 0x00, true))
	assert.Equal(t, uint8(0x85), OpSub.Compute(5, 128, true))
	assert.Equal(t, uint8(0x0f), OpAnd.Compute(0xff, 0x0f, true))
}

func Test_Resolve(t *testing.T) {
	mem := newFlatMem(t)

	t.Run("zero page x wraps inside page zero", func(t *testing.T) {
		r := &Registers{X: 0x10}
		addr, crossed := resolve(r, mem, opMode(addrModeZPX, 0xf8, 4))
		assert.Equal(t, uint16(0x0008), addr)
		assert.False(t, crossed)
	})

	t.Run("zero page y", func(t *testing.T) {
		r := &Registers{Y: 0x02}
		addr, _ := resolve(r, mem, opMode(addrModeZPY, 0xff, 4))
		assert.Equal(t, uint16(0x0001), addr)
	})

	t.Run("absolute x crossing a page", func(t *testing.T) {
		r := &Registers{X: 0x01}
		addr, crossed := resolve(r, mem, opMode(addrModeABSX, 0x12ff, 4))
		assert.Equal(t, uint16(0x1300), addr)
		assert.True(t, crossed)

		addr, crossed = resolve(r, mem, opMode(addrModeABSX, 0x1200, 4))
		assert.Equal(t, uint16(0x1201), addr)
		assert.False(t, crossed)
	})

	t.Run("absolute y wraps the address space", func(t *testing.T) {
		r := &Registers{Y: 0x02}
		addr, crossed := resolve(r, mem, opMode(addrModeABSY, 0xffff, 4))
		assert.Equal(t, uint16(0x0001), addr)
		assert.True(t, crossed)
	})

	t.Run("indexed indirect adds X before the dereference", func(t *testing.T) {
		mem.reset()
		mem.load(0x0024, 0x74, 0x20)
		r := &Registers{X: 0x04}
		addr, _ := resolve(r, mem, opMode(addrModeINDX, 0x20, 6))
		assert.Equal(t, uint16(0x2074), addr)
	})

	t.Run("indexed indirect pointer wraps in page zero", func(t *testing.T) {
		mem.reset()
		mem.load(0x00ff, 0x34)
		mem.load(0x0000, 0x12)
		r := &Registers{X: 0x01}
		addr, _ := resolve(r, mem, opMode(addrModeINDX, 0xfe, 6))
		assert.Equal(t, uint16(0x1234), addr)
	})

	t.Run("indirect indexed adds Y after the dereference", func(t *testing.T) {
		mem.reset()
		mem.load(0x0086, 0x28, 0x40)
		r := &Registers{Y: 0x10}
		addr, crossed := resolve(r, mem, opMode(addrModeINDY, 0x86, 5))
		assert.Equal(t, uint16(0x4038), addr)
		assert.False(t, crossed)

		r.Y = 0xe0
		addr, crossed = resolve(r, mem, opMode(addrModeINDY, 0x86, 5))
		assert.Equal(t, uint16(0x4108), addr)
		assert.True(t, crossed)
	})

	t.Run("indirect page wrap bug", func(t *testing.T) {
		mem.reset()
		mem.load(0x02ff, 0x00)
		mem.load(0x0200, 0x80)
		mem.load(0x0300, 0x90)
		addr, _ := resolve(&Registers{}, mem, opMode(addrModeIND, 0x02ff, 5))
		assert.Equal(t, uint16(0x8000), addr)
	})

	t.Run("implied has no address", func(t *testing.T) {
		assert.Panics(t, func() { resolve(&Registers{}, mem, opMode(addrModeIMP, 0, 2)) })
	})
}

func Test_ModeSize(t *testing.T) {
	sizes := map[addrMode]uint8{
		addrModeIMP: 1, addrModeACC: 1,
		addrModeIMM: 2, addrModeZP: 2, addrModeZPX: 2, addrModeZPY: 2,
		addrModeINDX: 2, addrModeINDY: 2, addrModeREL: 2,
		addrModeABS: 3, addrModeABSX: 3, addrModeABSY: 3, addrModeIND: 3,
	}
	for mode, size := range sizes {
		assert.Equal(t, size, mode.size(), mode.String())
	}
}
