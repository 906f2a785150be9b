// Package report renders batch statistics for humans and exports per-game
// results for further analysis.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/warsim/internal/statistics"
	"github.com/muesli/termenv"
)

// Options controls how a summary is rendered
type Options struct {
	Players      int
	TurnDuration time.Duration // Assumed time per turn for wall-clock projections
	NoColor      bool
}

type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		header:  r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
	}
}

// PrintSummary writes a summary of stats to w
func PrintSummary(w io.Writer, stats *statistics.Statistics, opts Options) {
	st := newStyles(w, opts.NoColor)
	line := func(label, format string, args ...any) {
		fmt.Fprintf(w, "%s %s\n", st.label.Render(label+":"), fmt.Sprintf(format, args...))
	}
	header := func(title string) {
		fmt.Fprintf(w, "\n%s\n", st.header.Render("=== "+title+" ==="))
	}

	header(fmt.Sprintf("WAR SIMULATION: %d games, %d players", stats.Games, opts.Players))
	line("Finished", "%d", stats.Finished)
	abandoned := fmt.Sprintf("%d (%.1f%% of all games; turn limit %d, exhausted %d)",
		stats.Abandoned, stats.AbandonmentRate()*100, stats.TurnLimitHits, stats.Exhausted)
	if stats.Abandoned > 0 {
		abandoned = st.warning.Render(abandoned)
	} else {
		abandoned = st.success.Render(abandoned)
	}
	line("Abandoned", "%s", abandoned)
	line("Stalemates", "%.1f%% of finished games ended in an endless loop", stats.StalemateRatio()*100)
	if stats.Duration > 0 {
		line("Total time", "%v", stats.Duration.Round(time.Millisecond))
		line("Performance", "%.0f games/sec", stats.GamesPerSecond())
	}

	if stats.Finished == 0 {
		fmt.Fprintf(w, "\n%s\n", st.warning.Render("No game finished; no length statistics available"))
		return
	}

	low, high := stats.ConfidenceInterval95()
	header("GAME LENGTH (finished games, turns)")
	line("Mean", "%.1f", stats.Mean())
	line("Median", "%.1f", stats.Median())
	line("Std Dev", "%.1f", stats.StdDev())
	line("95% CI", "[%.1f, %.1f]", low, high)
	line("Min / Max", "%d / %d", stats.MinTurns, stats.MaxTurns)
	line("Percentiles", "P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	if opts.TurnDuration > 0 {
		header(fmt.Sprintf("AT %v PER TURN", opts.TurnDuration))
		line("Min time", "%v", statistics.Projected(float64(stats.MinTurns), opts.TurnDuration))
		line("Avg time", "%v", statistics.Projected(stats.Mean(), opts.TurnDuration).Round(time.Second))
		line("Max time", "%v", statistics.Projected(float64(stats.MaxTurns), opts.TurnDuration))
	}

	header("WARS")
	line("Wars per game", "%.2f", stats.WarsPerGame())
	line("Deepest war", "%d consecutive ties", stats.MaxWarDepth)

	header("WINS BY SEAT")
	for _, seat := range stats.Seats() {
		line(fmt.Sprintf("Seat %d", seat), "%d wins (%.1f%%)", stats.Wins[seat], stats.WinShare(seat)*100)
	}
}

// Summary renders the summary to a string
func Summary(stats *statistics.Statistics, opts Options) string {
	var sb strings.Builder
	PrintSummary(&sb, stats, opts)
	return sb.String()
}
