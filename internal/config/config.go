package config

import (
	"bytes"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	defClockHz            = 1789773
	defPPUTicksPerCPUTick = 3
	defUIScale            = 2

	EnvVarPrefix = "NES"
)

var replacer = strings.NewReplacer(".", "_")

type Config struct {
	RomFile  string   `mapstructure:"rom_file" yaml:"rom_file"`
	Trace    string   `mapstructure:"trace" yaml:"trace"`       // trace file, "-" for stdout
	StartPC  uint16   `mapstructure:"start_pc" yaml:"start_pc"` // 0 keeps the reset vector
	Profile  string   `mapstructure:"profile" yaml:"profile"`   // "", "cpu" or "mem"
	Headless bool     `mapstructure:"headless" yaml:"headless"`
	Frames   int      `mapstructure:"frames" yaml:"frames"` // headless frame budget, 0 runs until interrupted
	Console  *Console `mapstructure:"console" yaml:"console"`
	UI       *UI      `mapstructure:"ui" yaml:"ui"`
}

type Console struct {
	ClockHz            int `mapstructure:"clock_hz" yaml:"clock_hz"`
	PPUTicksPerCPUTick int `mapstructure:"ppu_ticks_per_cpu_tick" yaml:"ppu_ticks_per_cpu_tick"`
}

type UI struct {
	Scale int `mapstructure:"scale" yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Console: &Console{
			ClockHz:            defClockHz,
			PPUTicksPerCPUTick: defPPUTicksPerCPUTick,
		},
		UI: &UI{
			Scale: defUIScale,
		},
	}
}

// Load layers the defaults, the YAML file at cfgFile (if any) and NES_*
// environment variables, in that order.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't marshal defaults")
	}
	v.SetConfigType("yaml")
	if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
		return nil, errors.Wrap(err, "couldn't load defaults")
	}

	if cfgFile != "" {
		fi, err := os.Stat(cfgFile)
		if err != nil {
			return nil, errors.Wrap(err, "config file")
		}
		if fi.IsDir() {
			return nil, errors.Errorf("config file %s is a directory", cfgFile)
		}
		// overwrite values from config
		v.SetConfigFile(cfgFile)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "couldn't parse config file %s", cfgFile)
		}
	}

	// Use environment variables as final override
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)

	// Preload environment bindings so they are processed on load
	bindVars(v, reflect.TypeOf(*cfg), "")
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "couldn't decode config")
	}
	return cfg, cfg.Validate()
}

func bindVars(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		tag = prefix + tag

		switch {
		case field.Type.Kind() == reflect.Struct:
			bindVars(v, field.Type, tag+".")
		case field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct:
			bindVars(v, field.Type.Elem(), tag+".")
		default:
			if err := v.BindEnv(tag); err != nil {
				log.Printf("unable to bind environment variable %s: %v", replacer.Replace(tag), err)
			}
		}
	}
}

func (c *Config) Validate() error {
	if c.Console == nil || c.Console.ClockHz <= 0 {
		return errors.New("console.clock_hz must be positive")
	}
	if c.Console.PPUTicksPerCPUTick <= 0 {
		return errors.New("console.ppu_ticks_per_cpu_tick must be positive")
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return errors.Errorf("unknown profile %q, want cpu or mem", c.Profile)
	}
	if c.UI == nil || c.UI.Scale < 1 {
		return errors.New("ui.scale must be at least 1")
	}
	if c.Headless && c.Frames < 0 {
		return errors.New("frames must not be negative")
	}
	return nil
}
