package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/statistics"
	"golang.org/x/sync/errgroup"
)

const progressLogInterval = 1000

// Config holds configuration for running simulations
type Config struct {
	Games     int
	Players   int
	Seed      int64 // Master seed; every game's shuffle seed is derived from it
	Workers   int   // 0 means runtime.NumCPU()
	TurnLimit int   // 0 means game.DefaultTurnLimit
	Logger    *log.Logger
	Clock     quartz.Clock
	Progress  ProgressReporter
}

// ProgressReporter is told about batch progress. Calls are serialised by the
// simulator, so implementations need no locking of their own.
type ProgressReporter interface {
	OnBatchStart(total int)
	OnGameComplete(completed, total int, result statistics.GameResult)
	OnBatchComplete(stats *statistics.Statistics)
}

// Simulator runs batches of independent War games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.TurnLimit == 0 {
		config.TurnLimit = game.DefaultTurnLimit
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

func (s *Simulator) validate() error {
	if s.config.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.Players < 2 || s.config.Players > deck.Size {
		return fmt.Errorf("%w: %d", game.ErrInvalidPlayerCount, s.config.Players)
	}
	if s.config.TurnLimit < 0 {
		return fmt.Errorf("%w: %d", game.ErrInvalidTurnLimit, s.config.TurnLimit)
	}
	return nil
}

// Run plays every game in the batch and returns the aggregated results.
// Games run in parallel, one per worker, but results are aggregated in game
// order so a batch is reproducible from its seed whatever the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	cfg := s.config
	logger := cfg.Logger.WithPrefix("simulator")
	seeds := randutil.GameSeeds(cfg.Seed, cfg.Games)
	results := make([]statistics.GameResult, cfg.Games)

	logger.Info("Starting simulation",
		"games", cfg.Games,
		"players", cfg.Players,
		"seed", cfg.Seed,
		"workers", cfg.Workers,
		"turnLimit", cfg.TurnLimit)

	start := cfg.Clock.Now()
	if cfg.Progress != nil {
		cfg.Progress.OnBatchStart(cfg.Games)
	}

	var mu sync.Mutex
	completed := 0
	done := func(r statistics.GameResult) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		if cfg.Progress != nil {
			cfg.Progress.OnGameComplete(completed, cfg.Games, r)
		}
		if completed%progressLogInterval == 0 {
			logger.Debug("Progress", "completed", completed, "total", cfg.Games,
				"elapsed", cfg.Clock.Since(start))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range seeds {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				result, err := PlayGame(i, seeds[i], cfg.Players, cfg.TurnLimit)
				if err != nil {
					return fmt.Errorf("game %d (seed %d): %w", i+1, seeds[i], err)
				}
				results[i] = result
				done(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Simulation interrupted", "completed", completed, "total", cfg.Games)
		}
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	stats.Duration = cfg.Clock.Since(start)

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete",
		"games", stats.Games,
		"finished", stats.Finished,
		"abandoned", stats.Abandoned,
		"duration", stats.Duration)

	if cfg.Progress != nil {
		cfg.Progress.OnBatchComplete(stats)
	}
	return stats, nil
}

// PlayGame plays a single game from its seed. The same index, seed, player
// count and turn limit always produce the same result.
func PlayGame(index int, seed int64, players, turnLimit int) (statistics.GameResult, error) {
	g, err := game.New(randutil.New(seed), players, game.WithTurnLimit(turnLimit))
	if err != nil {
		return statistics.GameResult{}, err
	}
	return statistics.GameResult{
		Game:    index,
		Seed:    seed,
		Players: players,
		Outcome: g.Play(),
	}, nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, games, players int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Games:   games,
		Players: players,
		Seed:    seed,
		Logger:  logger,
	}).Run(ctx)
}
