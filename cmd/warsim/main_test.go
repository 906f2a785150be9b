package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/warsim/internal/config"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIParsing(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("warsim"), kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"simulate", "-n", "100", "--players", "3", "--seed", "42", "--turn-duration", "1s", "--progress", "none"})
	require.NoError(t, err)
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 100, cli.Simulate.Games)
	assert.Equal(t, 3, cli.Simulate.Players)
	assert.Equal(t, int64(42), cli.Simulate.Seed)
	assert.Equal(t, time.Second, cli.Simulate.TurnDuration)
	assert.Equal(t, "none", cli.Simulate.Progress)

	ctx, err = parser.Parse([]string{"play", "--every", "50"})
	require.NoError(t, err)
	assert.Equal(t, "play", ctx.Command())
	assert.Equal(t, 50, cli.Play.Every)
	assert.Equal(t, 2, cli.Play.Players)
	assert.Equal(t, 50000, cli.Play.TurnLimit)
}

func TestApplyOverrides(t *testing.T) {
	t.Run("unset flags keep file values", func(t *testing.T) {
		cfg, err := config.Parse([]byte(`
simulation {
  games   = 500
  players = 4
  seed    = 7
}
output {
  progress = "bar"
}
`), "test.hcl")
		require.NoError(t, err)

		(&SimulateCmd{}).applyOverrides(cfg)
		assert.Equal(t, 500, cfg.Simulation.Games)
		assert.Equal(t, 4, cfg.Simulation.Players)
		assert.Equal(t, int64(7), cfg.Simulation.Seed)
		assert.Equal(t, "bar", cfg.Output.Progress)
		assert.Equal(t, "info", cfg.Output.LogLevel)
	})

	t.Run("set flags win", func(t *testing.T) {
		cfg := config.Default()
		cmd := &SimulateCmd{
			Games:        10,
			Players:      3,
			Seed:         99,
			Workers:      2,
			TurnLimit:    1000,
			TurnDuration: 500 * time.Millisecond,
			CSV:          "out.csv",
			Progress:     "none",
			NoColor:      true,
			Debug:        true,
		}
		cmd.applyOverrides(cfg)

		s := cfg.Simulation
		assert.Equal(t, 10, s.Games)
		assert.Equal(t, 3, s.Players)
		assert.Equal(t, int64(99), s.Seed)
		assert.Equal(t, 2, s.Workers)
		assert.Equal(t, 1000, s.TurnLimit)
		assert.Equal(t, 500*time.Millisecond, cfg.TurnDuration())
		assert.Equal(t, "out.csv", cfg.Output.CSV)
		assert.Equal(t, "none", cfg.Output.Progress)
		assert.True(t, cfg.Output.NoColor)
		assert.Equal(t, "debug", cfg.Output.LogLevel)
		require.NoError(t, cfg.Validate())
	})
}

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "results.csv")

	cmd := &SimulateCmd{
		Config:   filepath.Join(dir, "missing.hcl"),
		Games:    20,
		Seed:     42,
		Workers:  2,
		CSV:      csvPath,
		Progress: "none",
		NoColor:  true,
	}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 21)
}

func TestSimulateCommandInvalidConfig(t *testing.T) {
	cmd := &SimulateCmd{
		Config:   filepath.Join(t.TempDir(), "missing.hcl"),
		Players:  1,
		Progress: "none",
	}
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := setupLogger(&buf, "warn", "text")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger, err = setupLogger(&buf, "info", "json")
	require.NoError(t, err)
	logger.Info("structured", "games", 3)
	assert.Contains(t, buf.String(), `"games":3`)

	_, err = setupLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = setupLogger(&buf, "info", "xml")
	assert.Error(t, err)

	assert.Equal(t, "debug", logLevel("warn", true))
	assert.Equal(t, "warn", logLevel("warn", false))
}

func TestSimpleProgressMonitor(t *testing.T) {
	var buf bytes.Buffer
	m := NewSimpleProgressMonitor(&buf)

	m.OnBatchStart(4)
	m.OnGameComplete(1, 4, statistics.GameResult{})
	assert.Equal(t, "Simulating 4 games: "+strings.Repeat(".", 10), buf.String())

	m.OnGameComplete(2, 4, statistics.GameResult{})
	m.OnGameComplete(3, 4, statistics.GameResult{})
	m.OnGameComplete(4, 4, statistics.GameResult{})
	assert.Equal(t, 40, strings.Count(buf.String(), "."))

	m.OnBatchComplete(&statistics.Statistics{Games: 4, Duration: 2 * time.Second})
	assert.Equal(t, 40, strings.Count(buf.String(), "."), "no extra dots once complete")
	assert.Contains(t, buf.String(), "✓ 4 games in 2.0s (2/sec)")
}

func TestTraceObserver(t *testing.T) {
	var buf bytes.Buffer
	trace := newTraceObserver(&buf, 2, true)

	// Player 1 holds the highest card every round
	g, err := game.New(nil, 2,
		game.WithDeck(deck.MustParseCards("A 2 K 3 Q 4")),
		game.WithObserver(trace),
	)
	require.NoError(t, err)

	outcome := g.Play()
	require.True(t, outcome.Finished())
	assert.Equal(t, 1, outcome.Winner)

	out := buf.String()
	assert.Contains(t, out, "Round 1 (turn 1): player 1 takes 2 cards")
	assert.Contains(t, out, "Turn 2: P1=5 P2=1")
	assert.Contains(t, out, "Player 2 is out after 3 turns")
	assert.NotContains(t, out, "Turn 1:")

	buf.Reset()
	printOutcome(&buf, outcome, 2*time.Second)
	assert.Contains(t, buf.String(), "Player 1 wins after 3 turns")
	assert.Contains(t, buf.String(), "At 2s per turn this game takes 6s")
}

func TestTraceObserverWar(t *testing.T) {
	var buf bytes.Buffer
	trace := newTraceObserver(&buf, 0, true)

	g, err := game.New(nil, 2,
		game.WithDeck(deck.MustParseCards("9 3 2 4 6 7 5 5")),
		game.WithObserver(trace),
	)
	require.NoError(t, err)
	g.Play()

	assert.Contains(t, buf.String(), "player 1 takes 8 cards after a war")
	assert.NotContains(t, buf.String(), "Turn ")
}
