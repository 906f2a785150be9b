package deck

import (
	rand "math/rand/v2"
)

const (
	// Size is the number of cards in a full War deck.
	Size = 54

	suits  = 4
	jokers = 2
)

// Deck is an ordered pile of cards used during game setup. Once dealt it is
// empty and has no further use.
type Deck struct {
	cards []Card
}

// Standard returns the 54 cards of a War deck in rank order: 2 through A
// four times each followed by two jokers.
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for i := 0; i < suits; i++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, rank)
		}
	}
	for i := 0; i < jokers; i++ {
		cards = append(cards, Joker)
	}
	return cards
}

// New builds a standard deck and shuffles it with rng.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: Standard()}
	d.Shuffle(rng)
	return d
}

// FromCards creates a deck holding a copy of cards in the given order.
// The first card is dealt first.
func FromCards(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle applies a uniform Fisher-Yates permutation using rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cards returns a copy of the remaining cards in deal order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Deal hands out every card round-robin: card i goes to hand i mod players.
// When the deck does not divide evenly the first hands receive one card more.
// The deck is empty afterwards.
func (d *Deck) Deal(players int) [][]Card {
	if players <= 0 {
		return nil
	}
	hands := make([][]Card, players)
	per := (len(d.cards) + players - 1) / players
	for i := range hands {
		hands[i] = make([]Card, 0, per)
	}
	for i, c := range d.cards {
		hands[i%players] = append(hands[i%players], c)
	}
	d.cards = d.cards[:0]
	return hands
}

// Counts tallies how many times each rank appears in cards.
func Counts(cards []Card) map[Card]int {
	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	return counts
}
