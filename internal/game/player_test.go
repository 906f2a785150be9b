package game

import (
	"testing"

	"github.com/lox/warsim/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerAttackTurnsOverCapturedPile(t *testing.T) {
	p := NewPlayer(1, deck.MustParseCards("2 3 4"))
	assert.Empty(t, p.Active())
	assert.Equal(t, 3, p.Total())

	c, ok := p.Attack()
	require.True(t, ok)
	assert.Equal(t, deck.Four, c, "draws from the back")
	assert.Equal(t, deck.MustParseCards("2 3"), p.Active())
	assert.Empty(t, p.Captured())

	p.Capture(deck.King, deck.Ace)
	assert.Equal(t, 4, p.Total())

	// Active pile is used up before captured cards come into play.
	for _, want := range []deck.Card{deck.Three, deck.Two, deck.Ace, deck.King} {
		c, ok := p.Attack()
		require.True(t, ok)
		assert.Equal(t, want, c)
	}
	assert.True(t, p.Eliminated())
}

func TestPlayerAttackWhenEmpty(t *testing.T) {
	p := NewPlayer(2, nil)
	assert.True(t, p.Eliminated())

	_, ok := p.Attack()
	assert.False(t, ok)
	assert.Equal(t, 0, p.Total())
}

func TestPlayerCapturePreservesOrder(t *testing.T) {
	p := NewPlayer(1, nil)
	p.Capture(deck.MustParseCards("5 X")...)
	p.Capture(deck.MustParseCards("2 9 9")...)
	assert.Equal(t, deck.MustParseCards("5 X 2 9 9"), p.Captured())
	assert.Equal(t, 5, p.Total())
}

func TestNewPlayerCopiesCards(t *testing.T) {
	cards := deck.MustParseCards("2 3")
	p := NewPlayer(1, cards)
	cards[1] = deck.Joker

	c, ok := p.Attack()
	require.True(t, ok)
	assert.Equal(t, deck.Three, c)
}

func TestPlayerTotalOnlyChangesThroughAttackAndCapture(t *testing.T) {
	p := NewPlayer(1, deck.MustParseCards("2 3 4 5"))
	before := p.Total()

	_, _ = p.Attack()
	assert.Equal(t, before-1, p.Total())

	p.Capture(deck.Ten)
	assert.Equal(t, before, p.Total())

	_ = p.Active()
	_ = p.Captured()
	assert.Equal(t, before, p.Total())
}
