package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/statistics"
	"github.com/lox/warsim/internal/tui"
	"github.com/muesli/termenv"
)

type PlayCmd struct {
	Players      int           `short:"p" default:"2" help:"Number of players"`
	Seed         int64         `help:"RNG seed (0 for random)"`
	TurnLimit    int           `default:"50000" help:"Turns before the game is abandoned"`
	Every        int           `short:"e" default:"100" help:"Print the score every N turns (0 to disable)"`
	Verbose      bool          `short:"v" help:"Print every round"`
	TurnDuration time.Duration `default:"2s" help:"Assumed time per turn for the wall-clock projection"`
	NoColor      bool          `help:"Disable colored output"`
	Debug        bool          `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	logger, err := setupLogger(os.Stderr, logLevel("warn", c.Debug), "text")
	if err != nil {
		return err
	}
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := randutil.Seed(c.Seed)
	trace := newTraceObserver(os.Stdout, c.Every, c.Verbose)

	g, err := game.New(randutil.New(seed), c.Players,
		game.WithTurnLimit(c.TurnLimit),
		game.WithObserver(trace),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s\n\n", tui.HeaderStyle.Render(
		fmt.Sprintf("War: %d players, seed %d", c.Players, seed)))

	outcome := g.Play()
	printOutcome(os.Stdout, outcome, c.TurnDuration)
	return nil
}

// traceObserver prints a running commentary of a game
type traceObserver struct {
	out       io.Writer
	every     int
	verbose   bool
	nextScore int
}

func newTraceObserver(out io.Writer, every int, verbose bool) *traceObserver {
	return &traceObserver{out: out, every: every, verbose: verbose, nextScore: every}
}

func (t *traceObserver) RoundComplete(r game.RoundResult) {
	if t.verbose {
		t.printRound(r)
	}
	if t.every <= 0 {
		return
	}
	if r.Turns >= t.nextScore {
		fmt.Fprintf(t.out, "Turn %d: %s\n", r.Turns, formatTotals(r.Totals))
		for t.nextScore <= r.Turns {
			t.nextScore += t.every
		}
	}
}

func (t *traceObserver) printRound(r game.RoundResult) {
	if r.Winner == 0 {
		fmt.Fprintf(t.out, "Round %d (turn %d): no winner, game abandoned\n", r.Round, r.Turns)
		return
	}

	line := fmt.Sprintf("Round %d (turn %d): %s takes %d cards",
		r.Round, r.Turns, tui.PlayerStyle.Render(fmt.Sprintf("player %d", r.Winner)), r.Pot)
	if r.WarDepth > 0 {
		war := "war"
		if r.WarDepth > 1 {
			war = fmt.Sprintf("war x%d", r.WarDepth)
		}
		line += " after a " + tui.WarStyle.Render(war)
	}
	fmt.Fprintln(t.out, line)
}

func (t *traceObserver) PlayerEliminated(id int, turns int) {
	fmt.Fprintf(t.out, "%s\n", tui.WarningStyle.Render(fmt.Sprintf("Player %d is out after %d turns", id, turns)))
}

func formatTotals(totals []game.PlayerTotal) string {
	parts := make([]string, len(totals))
	for i, pt := range totals {
		parts[i] = fmt.Sprintf("P%d=%d", pt.ID, pt.Cards)
	}
	return strings.Join(parts, " ")
}

func printOutcome(out io.Writer, o game.Outcome, perTurn time.Duration) {
	fmt.Fprintln(out)
	if o.Finished() {
		fmt.Fprintln(out, tui.SuccessStyle.Render(fmt.Sprintf("Player %d wins after %d turns", o.Winner, o.Turns)))
	} else {
		fmt.Fprintln(out, tui.WarningStyle.Render(fmt.Sprintf("Game abandoned (%s) after %d turns", o.Reason, o.Turns)))
	}
	fmt.Fprintln(out, tui.InfoStyle.Render(fmt.Sprintf("%d rounds, %d wars, deepest war %d", o.Rounds, o.Wars, o.MaxWarDepth)))
	if o.Finished() && perTurn > 0 {
		fmt.Fprintln(out, tui.InfoStyle.Render(fmt.Sprintf("At %v per turn this game takes %v",
			perTurn, statistics.Projected(float64(o.Turns), perTurn))))
	}
}
