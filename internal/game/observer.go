package game

// PlayerTotal is a player's card count at a point in time.
type PlayerTotal struct {
	ID    int
	Cards int
}

// RoundResult describes a completed round.
type RoundResult struct {
	Round    int
	Turns    int
	Winner   int // 0 when the round was cut short by abandonment
	Pot      int
	WarDepth int
	Totals   []PlayerTotal
}

// Observer receives notifications as a game progresses. Callbacks run on the
// game's goroutine and must not call back into the game.
type Observer interface {
	RoundComplete(result RoundResult)
	PlayerEliminated(id int, turns int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnRound       func(RoundResult)
	OnElimination func(id int, turns int)
}

func (o ObserverFuncs) RoundComplete(result RoundResult) {
	if o.OnRound != nil {
		o.OnRound(result)
	}
}

func (o ObserverFuncs) PlayerEliminated(id int, turns int) {
	if o.OnElimination != nil {
		o.OnElimination(id, turns)
	}
}
