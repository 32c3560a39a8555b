package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nescore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 1789773, cfg.Console.ClockHz)
	assert.Equal(t, 3, cfg.Console.PPUTicksPerCPUTick)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
rom_file: roms/nestest.nes
trace: "-"
start_pc: 49152
headless: true
frames: 10
console:
  clock_hz: 1000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "roms/nestest.nes", cfg.RomFile)
	assert.Equal(t, "-", cfg.Trace)
	assert.Equal(t, uint16(0xc000), cfg.StartPC)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 10, cfg.Frames)
	assert.Equal(t, 1000, cfg.Console.ClockHz)
	assert.Equal(t, 3, cfg.Console.PPUTicksPerCPUTick, "keys missing from the file keep their defaults")
	assert.Equal(t, 2, cfg.UI.Scale)
}

func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "console:\n  clock_hz: 1000\n")
	t.Setenv("NES_CONSOLE_CLOCK_HZ", "2000")
	t.Setenv("NES_START_PC", "0xC000")
	t.Setenv("NES_PROFILE", "cpu")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Console.ClockHz, "environment wins over the file")
	assert.Equal(t, uint16(0xc000), cfg.StartPC)
	assert.Equal(t, "cpu", cfg.Profile)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, "console: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{"clock", "console:\n  clock_hz: 0\n"},
			{"ppu ticks", "console:\n  ppu_ticks_per_cpu_tick: -1\n"},
			{"profile", "profile: trace\n"},
			{"scale", "ui:\n  scale: 0\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(writeConfig(t, tt.content))
				assert.Error(t, err)
			})
		}
	})
}
