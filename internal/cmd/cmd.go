package cmd

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/nevisdale/nescore/internal/config"
	"github.com/nevisdale/nescore/internal/nes"
	"github.com/nevisdale/nescore/internal/ui"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	romFile  string
	trace    string
	prof     string
	headless bool
	startPC  uint16
	frames   int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "nescore",
	Short:        "nescore runs NES 6502 programs from iNES cartridges",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlags(cmd)

		if cfg.RomFile == "" {
			return errors.New("no rom specified, use -r/--rom <file> to specify")
		}

		switch cfg.Profile {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		}

		return run(cmd.Context())
	},
}

// Execute bootstraps the configuration and runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file")
	rootCmd.Flags().StringVarP(&romFile, "rom", "r", "", "iNES rom file")
	rootCmd.Flags().StringVarP(&trace, "trace", "t", "", `write a nestest-style trace to this file ("-" for stdout)`)
	rootCmd.Flags().StringVar(&prof, "profile", "", "profile the run: cpu or mem")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without the monitor window")
	rootCmd.Flags().Uint16Var(&startPC, "start-pc", 0, "start address overriding the reset vector, e.g. 0xC000")
	rootCmd.Flags().IntVar(&frames, "frames", 0, "headless: stop after this many frames")
}

func initConfig() {
	var err error
	if cfg, err = config.Load(cfgFile); err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
}

// applyFlags lets explicitly given flags win over file and environment.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("rom") {
		cfg.RomFile = romFile
	}
	if flags.Changed("trace") {
		cfg.Trace = trace
	}
	if flags.Changed("profile") {
		cfg.Profile = prof
	}
	if flags.Changed("headless") {
		cfg.Headless = headless
	}
	if flags.Changed("start-pc") {
		cfg.StartPC = startPC
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
}

func run(ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cart, err := nes.NewCartFromFile(cfg.RomFile)
	if err != nil {
		return err
	}
	log.Printf("loaded %s: %s mirroring", cfg.RomFile, cart.Mirroring())

	console := nes.NewConsole(cfg.Console.ClockHz, cfg.Console.PPUTicksPerCPUTick)
	console.LoadCart(cart)
	if cfg.StartPC != 0 {
		console.SetStartPC(cfg.StartPC)
	}

	tracer, closeTrace, err := openTrace(cfg.Trace)
	if err != nil {
		return err
	}
	if tracer != nil {
		defer func() {
			if err := closeTrace(); err != nil {
				log.Printf("couldn't flush the trace: %s", err)
			}
		}()
		console.SetTracer(tracer)
	}

	if !cfg.Headless {
		return ui.RunUI(ui.New(console, cfg.UI.Scale))
	}

	if cfg.Frames > 0 {
		for i := 0; i < cfg.Frames; i++ {
			if err := console.Frame(); err != nil {
				return err
			}
		}
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return console.Run(ctx)
}

// openTrace returns a buffered trace writer and the function that flushes
// and closes it.
func openTrace(path string) (io.Writer, func() error, error) {
	switch path {
	case "":
		return nil, nil, nil
	case "-":
		w := bufio.NewWriter(os.Stdout)
		return w, w.Flush, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "couldn't create the trace file")
	}
	w := bufio.NewWriter(f)
	return w, func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
