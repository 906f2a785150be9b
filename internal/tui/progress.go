// Package tui renders batch progress as a Bubble Tea program.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	padding  = 2
	maxWidth = 80
)

// BatchStartMsg announces the number of games in the batch
type BatchStartMsg struct {
	Total int
}

// GameDoneMsg reports one completed game
type GameDoneMsg struct {
	Completed int
	Total     int
	Abandoned bool
}

// BatchDoneMsg signals that the batch has finished and the program should exit
type BatchDoneMsg struct{}

// ProgressModel is the Bubble Tea model for the simulation progress bar
type ProgressModel struct {
	bar progress.Model

	total     int
	completed int
	abandoned int
	started   time.Time
	now       func() time.Time

	interrupt   func()
	interrupted bool
	done        bool
}

// NewProgressModel creates a progress model. interrupt, if non-nil, is called
// when the user presses ctrl+c.
func NewProgressModel(interrupt func()) *ProgressModel {
	return &ProgressModel{
		bar:       progress.New(progress.WithDefaultGradient()),
		now:       time.Now,
		interrupt: interrupt,
	}
}

// Init implements tea.Model
func (m *ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			if m.interrupt != nil {
				m.interrupt()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - padding*2 - 4
		if m.bar.Width > maxWidth {
			m.bar.Width = maxWidth
		}
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}

	case BatchStartMsg:
		m.total = msg.Total
		m.started = m.now()

	case GameDoneMsg:
		m.completed = msg.Completed
		if msg.Total > 0 {
			m.total = msg.Total
		}
		if msg.Abandoned {
			m.abandoned++
		}

	case BatchDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the progress bar
func (m *ProgressModel) View() string {
	pad := strings.Repeat(" ", padding)
	if m.total == 0 {
		return "\n" + pad + InfoStyle.Render("Preparing games...") + "\n"
	}

	status := fmt.Sprintf("%d/%d games, %d abandoned", m.completed, m.total, m.abandoned)
	if m.completed > 0 && !m.started.IsZero() {
		if elapsed := m.now().Sub(m.started); elapsed > 0 {
			status += fmt.Sprintf(", %.0f games/sec", float64(m.completed)/elapsed.Seconds())
		}
	}

	header := HeaderStyle.Render(fmt.Sprintf("Simulating %d games of War", m.total))
	if m.interrupted {
		header = WarningStyle.Render("Interrupted, waiting for running games...")
	}

	return "\n" +
		pad + header + "\n\n" +
		pad + m.bar.ViewAs(m.Percent()) + "\n\n" +
		pad + InfoStyle.Render(status) + "\n"
}

// Percent returns the fraction of games completed
func (m *ProgressModel) Percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.completed) / float64(m.total)
}

// Completed returns the number of games reported complete
func (m *ProgressModel) Completed() int { return m.completed }

// Abandoned returns the number of abandoned games reported
func (m *ProgressModel) Abandoned() int { return m.abandoned }

// Done reports whether the batch finished normally
func (m *ProgressModel) Done() bool { return m.done }

// Interrupted reports whether the user asked to stop
func (m *ProgressModel) Interrupted() bool { return m.interrupted }
