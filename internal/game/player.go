package game

import "github.com/lox/warsim/internal/deck"

// Player holds one seat's cards. Cards are drawn from the back of the active
// pile; captured cards queue up in arrival order until the active pile runs
// dry and the captured pile is turned over in its place.
type Player struct {
	id       int
	active   []deck.Card
	captured []deck.Card
}

// NewPlayer creates a player whose captured pile starts as a copy of cards.
func NewPlayer(id int, cards []deck.Card) *Player {
	captured := make([]deck.Card, len(cards), len(cards)*2)
	copy(captured, cards)
	return &Player{id: id, captured: captured}
}

// ID returns the player's seat number, starting at 1.
func (p *Player) ID() int {
	return p.id
}

// Attack turns over the next card. An empty active pile is refilled with the
// whole captured pile first. The second result is false when the player has
// no cards left at all.
func (p *Player) Attack() (deck.Card, bool) {
	if len(p.active) == 0 {
		p.active, p.captured = p.captured, p.active[:0]
	}
	n := len(p.active)
	if n == 0 {
		return 0, false
	}
	c := p.active[n-1]
	p.active = p.active[:n-1]
	return c, true
}

// Capture appends cards to the captured pile, keeping their order.
func (p *Player) Capture(cards ...deck.Card) {
	p.captured = append(p.captured, cards...)
}

// Total is the number of cards the player holds across both piles.
func (p *Player) Total() int {
	return len(p.active) + len(p.captured)
}

// Eliminated reports whether the player is out of cards.
func (p *Player) Eliminated() bool {
	return p.Total() == 0
}

// Active returns a copy of the active pile. The last card is drawn next.
func (p *Player) Active() []deck.Card {
	return append([]deck.Card(nil), p.active...)
}

// Captured returns a copy of the captured pile in arrival order.
func (p *Player) Captured() []deck.Card {
	return append([]deck.Card(nil), p.captured...)
}
