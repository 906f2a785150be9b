package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/warsim/internal/config"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/report"
	"github.com/lox/warsim/internal/runid"
	"github.com/lox/warsim/internal/simulator"
	"github.com/lox/warsim/internal/tui"
	"github.com/muesli/termenv"
)

type SimulateCmd struct {
	Config       string        `short:"c" default:"warsim.hcl" help:"HCL config file (missing file uses defaults)" type:"path"`
	Games        int           `short:"n" help:"Number of games to simulate (default 20000)"`
	Players      int           `short:"p" help:"Players per game (default 2)"`
	Seed         int64         `help:"Master RNG seed (0 for random)"`
	Workers      int           `short:"w" help:"Parallel workers (default: number of CPUs)"`
	TurnLimit    int           `help:"Turns before a game is abandoned (default 50000)"`
	TurnDuration time.Duration `help:"Assumed time per turn for wall-clock projections (default 2s)"`
	CSV          string        `help:"Write per-game results to this CSV file" type:"path"`
	Progress     string        `help:"Progress display: dots, bar or none (default dots)"`
	NoColor      bool          `help:"Disable colored output"`
	Debug        bool          `help:"Enable debug logging"`
	LogFormat    string        `default:"text" enum:"text,json" help:"Log format (text or json)"`
}

// applyOverrides copies flags that were set onto cfg
func (c *SimulateCmd) applyOverrides(cfg *config.Config) {
	s := cfg.Simulation
	if c.Games != 0 {
		s.Games = c.Games
	}
	if c.Players != 0 {
		s.Players = c.Players
	}
	if c.Seed != 0 {
		s.Seed = c.Seed
	}
	if c.Workers != 0 {
		s.Workers = c.Workers
	}
	if c.TurnLimit != 0 {
		s.TurnLimit = c.TurnLimit
	}
	if c.TurnDuration != 0 {
		s.TurnDuration = c.TurnDuration.String()
	}

	o := cfg.Output
	if c.CSV != "" {
		o.CSV = c.CSV
	}
	if c.Progress != "" {
		o.Progress = c.Progress
	}
	if c.NoColor {
		o.NoColor = true
	}
	if c.Debug {
		o.LogLevel = "debug"
	}
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.Output.LogLevel
	if cfg.Output.Progress == "bar" && !c.Debug && level == "info" {
		// Info lines would tear through the progress bar
		level = "warn"
	}
	logger, err := setupLogger(os.Stderr, logLevel(level, c.Debug), c.LogFormat)
	if err != nil {
		return err
	}
	if cfg.Output.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	run, err := runid.New()
	if err != nil {
		return err
	}
	logger = logger.With("run", run)

	s := cfg.Simulation
	seed := randutil.Seed(s.Seed)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	fmt.Fprintf(os.Stdout, "Starting simulation %s: %d games, %d players, turn limit %d (seed: %d)\n",
		run, s.Games, s.Players, s.TurnLimit, seed)

	progress, stop := newProgress(cfg.Output.Progress, os.Stderr, cancel, logger)
	sim := simulator.New(simulator.Config{
		Games:     s.Games,
		Players:   s.Players,
		Seed:      seed,
		Workers:   s.Workers,
		TurnLimit: s.TurnLimit,
		Logger:    logger,
		Progress:  progress,
	})

	stats, err := sim.Run(ctx)
	stop()
	if err != nil {
		return err
	}

	report.PrintSummary(os.Stdout, stats, report.Options{
		Players:      s.Players,
		TurnDuration: cfg.TurnDuration(),
		NoColor:      cfg.Output.NoColor,
	})

	if cfg.Output.CSV != "" {
		if err := report.WriteCSV(cfg.Output.CSV, stats.Results); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		logger.Info("Wrote results", "file", cfg.Output.CSV, "games", len(stats.Results))
	}

	return nil
}

// newProgress builds the progress reporter for style along with a function
// that tears it down once the batch is over
func newProgress(style string, out io.Writer, interrupt func(), logger *log.Logger) (simulator.ProgressReporter, func()) {
	switch style {
	case "dots":
		return NewSimpleProgressMonitor(out), func() {}
	case "bar":
		r := tui.NewReporter(interrupt, tea.WithOutput(out))
		r.Start()
		return r, func() {
			if err := r.Stop(); err != nil {
				logger.Warn("Progress display failed", "error", err)
			}
		}
	default:
		return nil, func() {}
	}
}
