package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/lox/warsim/internal/statistics"
)

const dotsTotal = 40

// SimpleProgressMonitor prints a row of 40 dots for a batch, fitting an
// 80-char terminal alongside the "Simulating N games: " prefix. The simulator
// already serialises calls; the mutex guards against other callers.
type SimpleProgressMonitor struct {
	mu          sync.Mutex
	out         io.Writer
	total       int
	dotsPrinted int
}

// NewSimpleProgressMonitor creates a monitor writing to out
func NewSimpleProgressMonitor(out io.Writer) *SimpleProgressMonitor {
	return &SimpleProgressMonitor{out: out}
}

// OnBatchStart prints the batch header
func (m *SimpleProgressMonitor) OnBatchStart(total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.dotsPrinted = 0
	fmt.Fprintf(m.out, "Simulating %d games: ", total)
}

// OnGameComplete prints dots up to the completed fraction
func (m *SimpleProgressMonitor) OnGameComplete(completed, total int, _ statistics.GameResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if total <= 0 {
		total = 1
	}
	if completed > total {
		completed = total
	}

	target := completed * dotsTotal / total
	for ; m.dotsPrinted < target; m.dotsPrinted++ {
		fmt.Fprint(m.out, ".")
	}
}

// OnBatchComplete fills any remaining dots and prints throughput
func (m *SimpleProgressMonitor) OnBatchComplete(stats *statistics.Statistics) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ; m.dotsPrinted < dotsTotal; m.dotsPrinted++ {
		fmt.Fprint(m.out, ".")
	}
	fmt.Fprintf(m.out, " ✓ %d games in %.1fs (%.0f/sec)\n",
		stats.Games, stats.Duration.Seconds(), stats.GamesPerSecond())
}
