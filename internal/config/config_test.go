package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, DefaultGames, c.Simulation.Games)
	assert.Equal(t, DefaultPlayers, c.Simulation.Players)
	assert.Equal(t, DefaultTurnLimit, c.Simulation.TurnLimit)
	assert.Equal(t, 2*time.Second, c.TurnDuration())
	assert.Equal(t, "dots", c.Output.Progress)
	assert.Equal(t, "info", c.Output.LogLevel)
	assert.Zero(t, c.Simulation.Seed)
	assert.Zero(t, c.Simulation.Workers)
}

func TestParse(t *testing.T) {
	src := `
simulation {
  games         = 500
  players       = 3
  seed          = 42
  workers       = 4
  turn_limit    = 1000
  turn_duration = "1500ms"
}

output {
  csv      = "out.csv"
  progress = "bar"
  no_color = true
}
`
	c, err := Parse([]byte(src), "test.hcl")
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 500, c.Simulation.Games)
	assert.Equal(t, 3, c.Simulation.Players)
	assert.Equal(t, int64(42), c.Simulation.Seed)
	assert.Equal(t, 4, c.Simulation.Workers)
	assert.Equal(t, 1000, c.Simulation.TurnLimit)
	assert.Equal(t, 1500*time.Millisecond, c.TurnDuration())
	assert.Equal(t, "out.csv", c.Output.CSV)
	assert.Equal(t, "bar", c.Output.Progress)
	assert.True(t, c.Output.NoColor)
	assert.Equal(t, "info", c.Output.LogLevel, "default applied")
}

func TestParsePartial(t *testing.T) {
	c, err := Parse([]byte("simulation {\n  players = 4\n}\n"), "partial.hcl")
	require.NoError(t, err)

	assert.Equal(t, 4, c.Simulation.Players)
	assert.Equal(t, DefaultGames, c.Simulation.Games)
	require.NotNil(t, c.Output)
	assert.Equal(t, DefaultProgress, c.Output.Progress)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax error", src: "simulation {"},
		{name: "unknown attribute", src: "simulation {\n  decks = 2\n}\n"},
		{name: "wrong type", src: "simulation {\n  games = \"many\"\n}\n"},
		{name: "unknown block", src: "server {}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "warsim.hcl")
		require.NoError(t, os.WriteFile(path, []byte("simulation {\n  games = 7\n}\n"), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7, c.Simulation.Games)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "no games", mutate: func(c *Config) { c.Simulation.Games = -1 }},
		{name: "one player", mutate: func(c *Config) { c.Simulation.Players = 1 }},
		{name: "negative workers", mutate: func(c *Config) { c.Simulation.Workers = -2 }},
		{name: "negative turn limit", mutate: func(c *Config) { c.Simulation.TurnLimit = -5 }},
		{name: "bad duration", mutate: func(c *Config) { c.Simulation.TurnDuration = "soon" }},
		{name: "zero duration", mutate: func(c *Config) { c.Simulation.TurnDuration = "0s" }},
		{name: "bad progress", mutate: func(c *Config) { c.Output.Progress = "spinner" }},
		{name: "bad log level", mutate: func(c *Config) { c.Output.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
