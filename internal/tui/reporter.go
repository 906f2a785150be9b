package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/warsim/internal/statistics"
)

// Reporter drives a ProgressModel from simulator progress callbacks. The
// program runs on its own goroutine; callbacks forward to it with Send.
type Reporter struct {
	model   *ProgressModel
	program *tea.Program

	done chan struct{}
	once sync.Once
	err  error
}

// NewReporter creates a reporter. interrupt is called if the user quits the
// progress view before the batch completes.
func NewReporter(interrupt func(), opts ...tea.ProgramOption) *Reporter {
	model := NewProgressModel(interrupt)
	return &Reporter{
		model:   model,
		program: tea.NewProgram(model, opts...),
		done:    make(chan struct{}),
	}
}

// Start runs the program in the background
func (r *Reporter) Start() {
	go func() {
		defer close(r.done)
		_, r.err = r.program.Run()
	}()
}

// Stop asks the program to exit and waits for it. It is safe to call after
// the batch has completed.
func (r *Reporter) Stop() error {
	r.once.Do(r.program.Quit)
	<-r.done
	return r.err
}

// Model returns the underlying model. Only read it after Stop returns.
func (r *Reporter) Model() *ProgressModel {
	return r.model
}

// OnBatchStart implements the simulator progress interface
func (r *Reporter) OnBatchStart(total int) {
	r.program.Send(BatchStartMsg{Total: total})
}

// OnGameComplete implements the simulator progress interface
func (r *Reporter) OnGameComplete(completed, total int, result statistics.GameResult) {
	r.program.Send(GameDoneMsg{
		Completed: completed,
		Total:     total,
		Abandoned: !result.Outcome.Finished(),
	})
}

// OnBatchComplete implements the simulator progress interface
func (r *Reporter) OnBatchComplete(*statistics.Statistics) {
	r.program.Send(BatchDoneMsg{})
}
