package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lox/warsim/internal/game"
)

// GameResult is the outcome of one game in a batch
type GameResult struct {
	Game    int   // Zero-based index within the batch
	Seed    int64 // Seed for this game's shuffle (for replay)
	Players int
	Outcome game.Outcome
}

// Statistics aggregates the outcomes of a batch of games.
//
// Turn statistics (mean, median, percentiles...) cover finished games only;
// an abandoned game has no meaningful length.
type Statistics struct {
	Games    int
	Finished int

	// Abandoned games split by reason
	Abandoned     int
	TurnLimitHits int
	Exhausted     int

	SumTurns  float64
	SumTurns2 float64 // Sum of squares for variance calculation
	MinTurns  int
	MaxTurns  int
	Turns     []int // Turn counts of finished games, in arrival order

	Rounds      int
	Wars        int
	MaxWarDepth int

	Wins map[int]int // Finished games won per seat

	Results  []GameResult
	Duration time.Duration // Wall-clock time taken by the batch
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	out := result.Outcome
	s.Games++
	s.Results = append(s.Results, result)
	s.Rounds += out.Rounds
	s.Wars += out.Wars
	if out.MaxWarDepth > s.MaxWarDepth {
		s.MaxWarDepth = out.MaxWarDepth
	}

	if !out.Finished() {
		s.Abandoned++
		switch out.Reason {
		case game.TurnLimit:
			s.TurnLimitHits++
		case game.Exhausted:
			s.Exhausted++
		}
		return
	}

	turns := out.Turns
	s.Finished++
	s.SumTurns += float64(turns)
	s.SumTurns2 += float64(turns) * float64(turns)
	s.Turns = append(s.Turns, turns)
	if s.Finished == 1 || turns < s.MinTurns {
		s.MinTurns = turns
	}
	if turns > s.MaxTurns {
		s.MaxTurns = turns
	}

	if s.Wins == nil {
		s.Wins = make(map[int]int)
	}
	s.Wins[out.Winner]++
}

// Mean returns the average number of turns of finished games
func (s *Statistics) Mean() float64 {
	if s.Finished == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Finished)
}

// Variance returns the sample variance of finished game lengths
func (s *Statistics) Variance() float64 {
	if s.Finished < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Finished)*mean*mean) / float64(s.Finished-1)
}

// StdDev returns the sample standard deviation of finished game lengths
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Finished == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Finished))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median length of finished games
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the finished game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := make([]int, len(s.Turns))
	copy(sorted, s.Turns)
	sort.Ints(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}

	weight := index - float64(lower)
	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

// AbandonmentRate returns the fraction of all games that were abandoned
func (s *Statistics) AbandonmentRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Abandoned) / float64(s.Games)
}

// StalemateRatio returns abandoned games per finished game
func (s *Statistics) StalemateRatio() float64 {
	if s.Finished == 0 {
		return 0
	}
	return float64(s.Abandoned) / float64(s.Finished)
}

// WarsPerGame returns the average number of wars fought per game
func (s *Statistics) WarsPerGame() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wars) / float64(s.Games)
}

// WinShare returns the fraction of finished games won by the given seat
func (s *Statistics) WinShare(player int) float64 {
	if s.Finished == 0 {
		return 0
	}
	return float64(s.Wins[player]) / float64(s.Finished)
}

// Seats returns the seat numbers that won at least one game, ascending
func (s *Statistics) Seats() []int {
	seats := make([]int, 0, len(s.Wins))
	for id := range s.Wins {
		seats = append(seats, id)
	}
	sort.Ints(seats)
	return seats
}

// GamesPerSecond returns batch throughput
func (s *Statistics) GamesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Games) / s.Duration.Seconds()
}

// Projected converts a number of turns into the wall-clock time a table of
// humans would need at perTurn per turn.
func Projected(turns float64, perTurn time.Duration) time.Duration {
	return time.Duration(turns * float64(perTurn))
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if s.Finished+s.Abandoned != s.Games {
		return fmt.Errorf("finished (%d) + abandoned (%d) does not match games (%d)",
			s.Finished, s.Abandoned, s.Games)
	}

	if len(s.Results) != s.Games {
		return fmt.Errorf("results length (%d) does not match games (%d)", len(s.Results), s.Games)
	}

	if s.TurnLimitHits+s.Exhausted != s.Abandoned {
		return fmt.Errorf("abandon reasons (%d turn limit, %d exhausted) do not add up to %d abandoned",
			s.TurnLimitHits, s.Exhausted, s.Abandoned)
	}

	if len(s.Turns) != s.Finished {
		return fmt.Errorf("turns array length (%d) does not match finished count (%d)",
			len(s.Turns), s.Finished)
	}

	wins := 0
	for _, n := range s.Wins {
		wins += n
	}
	if wins != s.Finished {
		return fmt.Errorf("wins total (%d) does not match finished count (%d)", wins, s.Finished)
	}

	if s.Finished > 0 && s.MinTurns <= 0 {
		return fmt.Errorf("finished game with non-positive length: %d", s.MinTurns)
	}

	return nil
}
