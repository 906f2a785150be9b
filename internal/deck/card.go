package deck

import (
	"fmt"
	"strings"
)

// Card is a War card. Only the rank takes part in comparisons, so suits are
// not modelled. The joker sits one above the ace.
type Card int

const (
	Two Card = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Joker
)

// String returns the short name of the card (e.g. "9", "T", "A", "X")
func (c Card) String() string {
	switch {
	case c >= Two && c <= Nine:
		return string(rune('0' + int(c)))
	case c == Ten:
		return "T"
	case c == Jack:
		return "J"
	case c == Queen:
		return "Q"
	case c == King:
		return "K"
	case c == Ace:
		return "A"
	case c == Joker:
		return "X"
	default:
		return "?"
	}
}

// Valid reports whether c is a rank that appears in a War deck.
func (c Card) Valid() bool {
	return c >= Two && c <= Joker
}

// ParseCard parses a single card name as produced by String. Numeric ranks
// ("10", "14", "15") are accepted as well.
func ParseCard(s string) (Card, error) {
	switch strings.ToUpper(s) {
	case "T", "10":
		return Ten, nil
	case "J", "11":
		return Jack, nil
	case "Q", "12":
		return Queen, nil
	case "K", "13":
		return King, nil
	case "A", "14":
		return Ace, nil
	case "X", "15":
		return Joker, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Card(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid card %q", s)
}

// ParseCards parses a whitespace separated list of cards, e.g. "9 3 K X".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and fixed fixtures.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins card names with single spaces.
func FormatCards(cards []Card) string {
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
