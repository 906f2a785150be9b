package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lox/warsim/internal/fileutil"
	"github.com/lox/warsim/internal/statistics"
)

var csvHeader = []string{"game", "seed", "state", "reason", "winner", "turns", "rounds", "wars", "max_war_depth"}

// WriteCSVTo writes a header followed by one row per game result, in order.
// Game numbers are one-based; winner is 0 for abandoned games.
func WriteCSVTo(w io.Writer, results []statistics.GameResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		out := r.Outcome
		row := []string{
			strconv.Itoa(r.Game + 1),
			strconv.FormatInt(r.Seed, 10),
			out.State.String(),
			out.Reason.String(),
			strconv.Itoa(out.Winner),
			strconv.Itoa(out.Turns),
			strconv.Itoa(out.Rounds),
			strconv.Itoa(out.Wars),
			strconv.Itoa(out.MaxWarDepth),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV exports results to filename, replacing it atomically
func WriteCSV(filename string, results []statistics.GameResult) error {
	return fileutil.WriteAtomic(filename, 0o644, func(w io.Writer) error {
		return WriteCSVTo(w, results)
	})
}
