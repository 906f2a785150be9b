package game

import "fmt"

// State is the lifecycle state of a game.
type State int

const (
	InProgress State = iota
	Won
	Abandoned
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Won:
		return "won"
	case Abandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// AbandonReason says why a game stopped without a winner.
type AbandonReason int

const (
	NotAbandoned AbandonReason = iota
	// TurnLimit means the turn counter passed the configured limit.
	TurnLimit
	// Exhausted means every player in a war ran out of cards before the war
	// could be decided.
	Exhausted
)

func (r AbandonReason) String() string {
	switch r {
	case NotAbandoned:
		return ""
	case TurnLimit:
		return "turn-limit"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Outcome is the final result of a game.
type Outcome struct {
	State  State
	Reason AbandonReason

	// Winner is the id of the last player standing, 0 unless State is Won.
	Winner int
	// Turns is the turn counter when the game stopped. For an abandoned game
	// this is the draw step that tripped the limit.
	Turns  int
	Rounds int

	Wars        int // tie escalations across the whole game
	MaxWarDepth int // longest chain of consecutive wars in a single round
}

// Finished reports whether the game produced a winner.
func (o Outcome) Finished() bool {
	return o.State == Won
}

func (o Outcome) String() string {
	if o.State == Won {
		return fmt.Sprintf("player %d won after %d turns", o.Winner, o.Turns)
	}
	return fmt.Sprintf("%s (%s) after %d turns", o.State, o.Reason, o.Turns)
}
