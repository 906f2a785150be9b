package game

import "github.com/lox/warsim/internal/deck"

// Pot collects every card at stake in one compete/war chain. It is threaded
// through the recursion by value and handed to the winner in one piece.
type Pot []deck.Card

// fighter is a card turned over in a draw step together with its owner.
type fighter struct {
	player *Player
	card   deck.Card
}

// with returns the pot extended by the fighters' cards in draw order.
func (p Pot) with(fighters []fighter) Pot {
	for _, f := range fighters {
		p = append(p, f.card)
	}
	return p
}

// highest returns the owners of the highest card among fighters, in draw
// order. It returns nil when there are no fighters.
func highest(fighters []fighter) []*Player {
	if len(fighters) == 0 {
		return nil
	}
	top := fighters[0].card
	for _, f := range fighters[1:] {
		if f.card > top {
			top = f.card
		}
	}
	var best []*Player
	for _, f := range fighters {
		if f.card == top {
			best = append(best, f.player)
		}
	}
	return best
}
