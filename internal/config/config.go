// Package config loads simulation settings from an HCL file.
//
//	simulation {
//	  games         = 20000
//	  players       = 2
//	  seed          = 42
//	  workers       = 8
//	  turn_limit    = 50000
//	  turn_duration = "2s"
//	}
//
//	output {
//	  csv       = "results.csv"
//	  progress  = "bar"
//	  log_level = "info"
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultGames        = 20000
	DefaultPlayers      = 2
	DefaultTurnLimit    = 50000
	DefaultTurnDuration = "2s"
	DefaultProgress     = "dots"
	DefaultLogLevel     = "info"
)

// Config represents the complete simulation configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// SimulationSettings controls the batch of games
type SimulationSettings struct {
	Games        int    `hcl:"games,optional"`
	Players      int    `hcl:"players,optional"`
	Seed         int64  `hcl:"seed,optional"`
	Workers      int    `hcl:"workers,optional"`
	TurnLimit    int    `hcl:"turn_limit,optional"`
	TurnDuration string `hcl:"turn_duration,optional"`
}

// OutputSettings controls reporting
type OutputSettings struct {
	CSV      string `hcl:"csv,optional"`
	Progress string `hcl:"progress,optional"`
	LogLevel string `hcl:"log_level,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for missing values
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Output == nil {
		c.Output = &OutputSettings{}
	}

	s := c.Simulation
	if s.Games == 0 {
		s.Games = DefaultGames
	}
	if s.Players == 0 {
		s.Players = DefaultPlayers
	}
	if s.TurnLimit == 0 {
		s.TurnLimit = DefaultTurnLimit
	}
	if s.TurnDuration == "" {
		s.TurnDuration = DefaultTurnDuration
	}

	if c.Output.Progress == "" {
		c.Output.Progress = DefaultProgress
	}
	if c.Output.LogLevel == "" {
		c.Output.LogLevel = DefaultLogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Games < 1 {
		return fmt.Errorf("games must be positive: %d", s.Games)
	}
	if s.Players < 2 {
		return fmt.Errorf("players must be at least 2: %d", s.Players)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", s.Workers)
	}
	if s.TurnLimit < 1 {
		return fmt.Errorf("turn limit must be positive: %d", s.TurnLimit)
	}
	if d, err := time.ParseDuration(s.TurnDuration); err != nil {
		return fmt.Errorf("invalid turn duration %q: %w", s.TurnDuration, err)
	} else if d <= 0 {
		return fmt.Errorf("turn duration must be positive: %s", s.TurnDuration)
	}

	validProgress := map[string]bool{
		"dots": true,
		"bar":  true,
		"none": true,
	}
	if !validProgress[c.Output.Progress] {
		return fmt.Errorf("invalid progress style %q", c.Output.Progress)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Output.LogLevel] {
		return fmt.Errorf("invalid log level %q", c.Output.LogLevel)
	}

	return nil
}

// TurnDuration returns the parsed per-turn duration used for wall-clock
// projections. Call Validate first; an unparsable value yields zero.
func (c *Config) TurnDuration() time.Duration {
	d, _ := time.ParseDuration(c.Simulation.TurnDuration)
	return d
}
