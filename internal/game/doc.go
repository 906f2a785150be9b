// Package game implements the resolution engine for the card game War.
//
// A Game owns the players still in play, a turn counter and a turn limit.
// Every round all players turn over one card; the single highest card takes
// the pot. When two or more players share the highest card they go to war:
// each of them adds two more cards to the pot and the tied group competes
// again, recursively, until one player holds the highest card.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	g, err := game.New(rng, 2)
//	if err != nil {
//	    return err
//	}
//	outcome := g.Play()
//	if outcome.Finished() {
//	    fmt.Println("player", outcome.Winner, "won after", outcome.Turns, "turns")
//	}
//
// # Termination
//
// A game ends when exactly one player still holds cards (State Won) or when
// the turn counter passes the turn limit (State Abandoned). Abandonment is an
// ordinary, countable result of a simulation, not an error. Every draw step
// counts as a turn, including the extra draws made during a war, and the
// limit is checked before each draw, so a war can be cut off half way with
// its pot lost.
//
// # Deterministic Testing
//
// The shuffle only ever uses the *rand.Rand passed to New. For exact traces
// hand the engine a prepared deck:
//
//	g, _ := game.New(nil, 2, game.WithDeck(deck.MustParseCards("9 3 2 4 6 7 5 5")))
package game
