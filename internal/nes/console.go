package nes

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/nevisdale/nescore/internal/bus"
	"github.com/nevisdale/nescore/internal/cpu"
	"github.com/pkg/errors"
)

const (
	DefaultClockHz            = 1789773
	DefaultPPUTicksPerCPUTick = 3

	framesPerSecond = 60
	dmaStallCycles  = 513
	romStart        = 0x8000
)

// Console wires the CPU and the PPU to one cartridge and drives them.
type Console struct {
	cpu  *cpu.CPU
	ppu  *PPU
	bus  *bus.Bus
	cart *Cart

	clockHz        int
	ppuTicksPerCPU int

	stall      int
	ticCounter uint64

	pause          bool
	oneStepAndStop bool
}

func NewConsole(clockHz, ppuTicksPerCPUTick int) *Console {
	if clockHz <= 0 {
		clockHz = DefaultClockHz
	}
	if ppuTicksPerCPUTick <= 0 {
		ppuTicksPerCPUTick = DefaultPPUTicksPerCPUTick
	}
	return &Console{
		cpu:            cpu.New(),
		clockHz:        clockHz,
		ppuTicksPerCPU: ppuTicksPerCPUTick,
	}
}

// LoadCart maps cart into a fresh address space and resets the console.
func (c *Console) LoadCart(cart *Cart) {
	c.cart = cart
	c.bus = cart.newBus()
	c.ppu = NewPPU(c.bus, newVRAM(c.bus, cart.HasCHRRAM(), cart.Mirroring()))
	c.Reset()
}

func (c *Console) Reset() {
	c.cpu.Reset(c.bus)
	c.stall = 0
	c.ticCounter = 0
}

// SetStartPC overrides the reset vector, e.g. $C000 for nestest automation.
func (c *Console) SetStartPC(pc uint16) {
	c.cpu.PC = pc
}

func (c *Console) SetTracer(w io.Writer) {
	c.cpu.SetTracer(w)
}

// Tic runs one CPU cycle and the PPU dots that go with it, and returns
// the cycles left of the CPU instruction in flight.
func (c *Console) Tic() uint8 {
	// the CPU is frozen while OAM DMA owns the bus
	left := c.cpu.Cycles
	if c.stall > 0 {
		c.stall--
	} else {
		left = c.cpu.Run(c.bus)
	}

	for i := 0; i < c.ppuTicksPerCPU; i++ {
		c.ppu.Tic()
	}

	if page, ok := c.bus.TakeDMA(); ok {
		c.oamDMA(page)
	}
	if c.ppu.TakeNMI() {
		c.cpu.NMI(c.bus)
	}

	c.ticCounter++
	return left
}

func (c *Console) oamDMA(page uint8) {
	var data [oamSizeBytes]uint8
	base := uint16(page) << 8
	for i := range data {
		data[i] = c.bus.Read8(base + uint16(i))
	}
	c.ppu.WriteOAM(data)
	c.stall += dmaStallCycles
}

// Step runs Tic until the CPU instruction in flight and any OAM DMA
// stall are done.
func (c *Console) Step() error {
	return c.guard(func() {
		for {
			left := c.Tic()
			if left == 0 && c.stall == 0 {
				return
			}
		}
	})
}

// Frame runs until the PPU starts the next frame. Paused consoles do
// nothing unless a single step was requested.
func (c *Console) Frame() error {
	if c.pause {
		if !c.oneStepAndStop {
			return nil
		}
		c.oneStepAndStop = false
		return c.Step()
	}
	return c.guard(func() {
		frame := c.ppu.Frame()
		for c.ppu.Frame() == frame {
			c.Tic()
		}
	})
}

// Run paces the console at the configured clock until ctx is done.
func (c *Console) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	ticsPerFrame := c.clockHz / framesPerSecond
	for {
		select {
		case <-ctx.Done():
			log.Printf("console stopped after %d cycles", c.cpu.TotalCycles())
			return nil
		case <-ticker.C:
			if err := c.guard(func() {
				for i := 0; i < ticsPerFrame; i++ {
					c.Tic()
				}
			}); err != nil {
				return err
			}
		}
	}
}

// guard turns a fault raised inside the core into an error.
func (c *Console) guard(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = errors.Wrapf(e, "cpu halted at tic %d", c.ticCounter)
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

func (c *Console) TogglePause() {
	c.pause = !c.pause
}

func (c *Console) OneStepAndStop() {
	c.pause = true
	c.oneStepAndStop = true
}

// DebugInfo is a snapshot of the console state for the monitor.
type DebugInfo struct {
	cpu.Registers
	TotalCycles uint64
	Frame       uint64
	ScanLine    uint16
	Dot         uint16
	Paused      bool
}

func (c *Console) DebugInfo() DebugInfo {
	return DebugInfo{
		Registers:   c.cpu.Registers,
		TotalCycles: c.cpu.TotalCycles(),
		Frame:       c.ppu.Frame(),
		ScanLine:    c.ppu.ScanLine(),
		Dot:         c.ppu.Cycle(),
		Paused:      c.pause,
	}
}

// Disassemble lists the instructions of the PRG-ROM window.
func (c *Console) Disassemble() map[uint16]string {
	return cpu.Disassemble(c.bus, romStart, 0xffff)
}
