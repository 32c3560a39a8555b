package nes

import (
	"bytes"
	"context"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nevisdale/nescore/internal/bus"
	"github.com/nevisdale/nescore/internal/cpu"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T, program []uint8, nmi uint16) *Console {
	t.Helper()
	prg := testProgram(program, nmi, 0x8000, 0)
	cart, err := NewCart(bytes.NewReader(inesImage(prg, 1, 0, false)))
	require.NoError(t, err)

	c := NewConsole(0, 0)
	c.LoadCart(cart)
	return c
}

func TestConsole_Step(t *testing.T) {
	c := newTestConsole(t, []uint8{
		0xa9, 0x07, // LDA #$07
		0x8d, 0x00, 0x02, // STA $0200
		0x4c, 0x05, 0x80, // JMP $8005
	}, 0)

	require.NoError(t, c.Step())
	assert.Equal(t, uint64(7), c.ticCounter, "reset sequence")
	assert.Equal(t, uint16(0x8000), c.cpu.PC)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0x07), c.bus.Read8(0x0200))
	assert.Equal(t, uint64(13), c.ticCounter)
	assert.Equal(t, uint16(39), c.ppu.Cycle(), "three dots per CPU cycle")
}

func TestConsole_VBlankNMI(t *testing.T) {
	c := newTestConsole(t, []uint8{
		0xa9, 0x80, // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0x4c, 0x05, 0x80, // JMP $8005
		0xe8, // $8008: INX
		0x40, // RTI
	}, 0x8008)

	require.NoError(t, c.Frame())
	assert.Equal(t, uint8(1), c.cpu.X)
	assert.Equal(t, uint64(1), c.ppu.Frame())

	require.NoError(t, c.Frame())
	assert.Equal(t, uint8(2), c.cpu.X)
	assert.Equal(t, uint8(0xfd), c.cpu.SP)

	info := c.DebugInfo()
	assert.Equal(t, uint64(2), info.Frame)
	assert.Equal(t, uint8(2), info.X)
	assert.False(t, info.Paused)
}

func TestConsole_OAMDMA(t *testing.T) {
	c := newTestConsole(t, []uint8{
		0xa9, 0x07, // LDA #$07
		0x8d, 0x00, 0x02, // STA $0200
		0xa9, 0x02, // LDA #$02
		0x8d, 0x14, 0x40, // STA $4014
		0x4c, 0x0a, 0x80, // JMP $800A
	}, 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Step())
	}
	assert.Equal(t, uint8(0x07), c.ppu.oam[0])
	assert.Equal(t, 0, c.stall)
	assert.Equal(t, uint64(7+2+4+2+4+dmaStallCycles), c.ticCounter)
	assert.Equal(t, uint16(0x800a), c.cpu.PC)

	t.Run("step finishes a pending stall", func(t *testing.T) {
		c := newTestConsole(t, []uint8{
			0xa9, 0x02, // LDA #$02
			0x8d, 0x14, 0x40, // STA $4014
		}, 0)
		require.NoError(t, c.Step())
		require.NoError(t, c.Step())
		require.Equal(t, uint8(0), c.cpu.Cycles)

		c.stall = 10
		require.NoError(t, c.Step())
		assert.Equal(t, 0, c.stall)
		assert.Equal(t, uint64(7+2+10), c.ticCounter)
		assert.Equal(t, uint16(0x8002), c.cpu.PC, "no instruction runs after the stall")
	})
}

func TestConsole_Faults(t *testing.T) {
	t.Run("unimplemented opcode", func(t *testing.T) {
		c := newTestConsole(t, []uint8{0xea, 0x02}, 0)
		err := c.Frame()
		require.Error(t, err)

		var opErr *cpu.UnimplementedOpcodeError
		require.True(t, errors.As(err, &opErr), err.Error())
		assert.Equal(t, uint16(0x8001), opErr.PC)
		assert.Contains(t, err.Error(), "cpu halted at tic 9")
	})

	t.Run("stack overflow", func(t *testing.T) {
		c := newTestConsole(t, []uint8{
			0x48,             // PHA
			0x4c, 0x00, 0x80, // JMP $8000
		}, 0)
		err := c.Frame()
		require.Error(t, err)
		assert.True(t, errors.Is(err, bus.ErrStackOverflow), err.Error())
	})

	t.Run("unmapped address", func(t *testing.T) {
		c := newTestConsole(t, []uint8{0xad, 0x00, 0x50}, 0) // LDA $5000
		err := c.Step()
		require.NoError(t, err)
		err = c.Step()
		require.Error(t, err)
		assert.True(t, errors.Is(err, bus.ErrUnmapped), err.Error())
	})
}

func TestConsole_Pause(t *testing.T) {
	c := newTestConsole(t, []uint8{0xe8, 0xe8, 0xe8}, 0) // INX x3
	require.NoError(t, c.Step())

	c.TogglePause()
	require.NoError(t, c.Frame())
	assert.Equal(t, uint16(0x8000), c.cpu.PC)
	assert.True(t, c.DebugInfo().Paused)

	c.OneStepAndStop()
	require.NoError(t, c.Frame())
	assert.Equal(t, uint16(0x8001), c.cpu.PC)
	require.NoError(t, c.Frame())
	assert.Equal(t, uint16(0x8001), c.cpu.PC, "one step only")

	c.TogglePause()
	require.NoError(t, c.Step())
	assert.Equal(t, uint8(2), c.cpu.X)
}

func TestConsole_Run(t *testing.T) {
	c := newTestConsole(t, []uint8{0x4c, 0x00, 0x80}, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, c.Run(ctx))
	assert.Greater(t, c.cpu.TotalCycles(), uint64(7))

	t.Run("fault stops the loop", func(t *testing.T) {
		c := newTestConsole(t, []uint8{0x02}, 0)
		err := c.Run(context.Background())
		require.Error(t, err)
		var opErr *cpu.UnimplementedOpcodeError
		assert.True(t, errors.As(err, &opErr))
	})
}

func TestConsole_Disassemble(t *testing.T) {
	c := newTestConsole(t, []uint8{0xa9, 0x07, 0x4c, 0x00, 0x80}, 0)
	disasm := c.Disassemble()
	assert.Equal(t, "$8000: LDA #$07", disasm[0x8000])
	assert.Equal(t, "$8002: JMP $8000", disasm[0x8002])
}

func TestConsole_Tracer(t *testing.T) {
	c := newTestConsole(t, []uint8{0xa9, 0x07}, 0)
	var out bytes.Buffer
	c.SetTracer(&out)
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.True(t, strings.HasPrefix(out.String(), "8000  A9 07     LDA #$07"), out.String())
}

func Test_ConsoleTic_Nestest(t *testing.T) {
	nestestRomFile := os.Getenv("NESTEST_ROM")
	nestestLogFile := os.Getenv("NESTEST_LOG")
	if nestestRomFile == "" || nestestLogFile == "" {
		t.Skip("skipping test because NESTEST_ROM or NESTEST_LOG is not set")
		return
	}

	cart, err := NewCartFromFile(nestestRomFile)
	require.NoError(t, err, "failed to load nestest rom")

	console := NewConsole(DefaultClockHz, DefaultPPUTicksPerCPUTick)
	console.LoadCart(cart)
	// nestest (all tests) starts at 0xC000
	console.SetStartPC(0xc000)

	re := regexp.MustCompile(`([A-F0-9]{4}).+A:([A-F0-9]{2}) X:([A-F0-9]{2}) Y:([A-F0-9]{2}) P:([A-F0-9]{2}) SP:([A-F0-9]{2}).+CYC:(\d+)`)
	type state struct {
		pc uint16
		// before executing the instruction
		a   uint8
		x   uint8
		y   uint8
		sp  uint8
		p   uint8
		cyc uint64
	}

	parseHex := func(s string, bits int) uint64 {
		v, err := strconv.ParseUint(s, 16, bits)
		require.NoError(t, err)
		return v
	}
	parseLogLine := func(s string) state {
		match := re.FindStringSubmatch(s)
		require.NotNil(t, match, "unexpected log line %q", s)

		cyc, err := strconv.ParseUint(match[7], 10, 64)
		require.NoError(t, err)

		// from 1 to skip full match
		return state{
			pc:  uint16(parseHex(match[1], 16)),
			a:   uint8(parseHex(match[2], 8)),
			x:   uint8(parseHex(match[3], 8)),
			y:   uint8(parseHex(match[4], 8)),
			p:   uint8(parseHex(match[5], 8)),
			sp:  uint8(parseHex(match[6], 8)),
			cyc: cyc,
		}
	}

	logFileData, err := os.ReadFile(nestestLogFile)
	require.NoError(t, err, "failed to open nestest log file")

	var expectedStates []state
	for _, line := range strings.Split(string(logFileData), "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		expectedStates = append(expectedStates, parseLogLine(line))
	}

	for i, expectedState := range expectedStates {
		cyc := console.Tic()
		// skip cycles until the next instruction
		for cyc > 0 {
			cyc = console.Tic()
		}

		regs := console.cpu.Registers
		actualState := state{
			pc:  regs.PC,
			a:   regs.A,
			x:   regs.X,
			y:   regs.Y,
			sp:  regs.SP,
			p:   uint8(regs.P),
			cyc: console.cpu.TotalCycles(),
		}
		if !assert.Equal(t, expectedState, actualState, "failed at instruction %s:%d", nestestLogFile, i) {
			return
		}
	}
}
