package ui

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/nescore/internal/nes"
)

// P - pause
// R - one step and stop

const (
	monitorWidth  = 240
	monitorHeight = 240
	contextLines  = 7
)

// machine is what the monitor needs from the console.
type machine interface {
	Frame() error
	TogglePause()
	OneStepAndStop()
	DebugInfo() nes.DebugInfo
	Disassemble() map[uint16]string
}

type UI struct {
	console machine
	scale   int

	disasm map[uint16]string
	addrs  []uint16
}

func New(console machine, scale int) *UI {
	disasm := console.Disassemble()
	return &UI{
		console: console,
		scale:   max(1, scale),
		disasm:  disasm,
		addrs:   slices.Sorted(maps.Keys(disasm)),
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.console.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.console.OneStepAndStop()
	}

	return ui.console.Frame()
}

// listing returns the disassembly around pc, the current line marked with '*'.
func (ui *UI) listing(pc uint16) []string {
	i, found := slices.BinarySearch(ui.addrs, pc)
	if !found {
		return []string{fmt.Sprintf("*$%04X: ???", pc)}
	}

	var lines []string
	for j := max(0, i-contextLines); j < min(len(ui.addrs), i+contextLines+1); j++ {
		mark := " "
		if j == i {
			mark = "*"
		}
		lines = append(lines, mark+ui.disasm[ui.addrs[j]])
	}
	return lines
}

func (ui *UI) text() string {
	info := ui.console.DebugInfo()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.P)
	fmt.Fprintf(&infoStr, " PC: %04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	fmt.Fprintf(&infoStr, " CYC: %d\n", info.TotalCycles)
	fmt.Fprintf(&infoStr, " FRAME: %d LINE: %d DOT: %d\n", info.Frame, info.ScanLine, info.Dot)
	if info.Paused {
		infoStr.WriteString(" PAUSED (P resume, R step)\n")
	}
	infoStr.WriteString("\n")

	for _, line := range ui.listing(info.PC) {
		infoStr.WriteString(line + "\n")
	}
	return infoStr.String()
}

func (ui *UI) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, monitorWidth, monitorHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, ui.text(), 0, 0)
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return monitorWidth, monitorHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(monitorWidth*ui.scale, monitorHeight*ui.scale)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
