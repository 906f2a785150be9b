package game

import (
	"github.com/charmbracelet/log"
	"github.com/lox/warsim/internal/deck"
)

// GameOption configures a Game during creation.
type GameOption func(*gameConfig)

type gameConfig struct {
	turnLimit int
	cards     []deck.Card // If set, dealt as is instead of a shuffled deck
	observer  Observer
	logger    *log.Logger
}

// WithTurnLimit sets the number of draw steps after which the game is
// abandoned. Defaults to DefaultTurnLimit.
func WithTurnLimit(limit int) GameOption {
	return func(c *gameConfig) {
		c.turnLimit = limit
	}
}

// WithDeck deals cards in the given order instead of shuffling a standard
// deck. The random source may be nil when this option is used.
func WithDeck(cards []deck.Card) GameOption {
	return func(c *gameConfig) {
		c.cards = append([]deck.Card(nil), cards...)
	}
}

// WithObserver registers an observer for round and elimination events.
func WithObserver(o Observer) GameOption {
	return func(c *gameConfig) {
		c.observer = o
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) GameOption {
	return func(c *gameConfig) {
		c.logger = logger
	}
}
