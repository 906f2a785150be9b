package deck

import (
	"testing"

	"github.com/lox/warsim/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertComposition(t *testing.T, cards []Card) {
	t.Helper()
	require.Len(t, cards, Size)
	counts := Counts(cards)
	for rank := Two; rank <= Ace; rank++ {
		assert.Equal(t, 4, counts[rank], "rank %s", rank)
	}
	assert.Equal(t, 2, counts[Joker])
	assert.Len(t, counts, 14)
}

func TestStandardComposition(t *testing.T) {
	assertComposition(t, Standard())
}

func TestNewDeckCompositionAcrossSeeds(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		d := New(randutil.New(seed))
		assertComposition(t, d.Cards())
	}
}

func TestShuffleIsDeterministic(t *testing.T) {
	a := New(randutil.New(42)).Cards()
	b := New(randutil.New(42)).Cards()
	c := New(randutil.New(43)).Cards()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, Standard(), a)
}

func TestDealRoundRobin(t *testing.T) {
	d := FromCards(MustParseCards("2 3 4 5 6 7 8"))
	hands := d.Deal(3)

	require.Len(t, hands, 3)
	assert.Equal(t, MustParseCards("2 5 8"), hands[0])
	assert.Equal(t, MustParseCards("3 6"), hands[1])
	assert.Equal(t, MustParseCards("4 7"), hands[2])
	assert.Equal(t, 0, d.Len())
}

func TestDealFullDeck(t *testing.T) {
	tests := []struct {
		players int
		sizes   []int
	}{
		{players: 2, sizes: []int{27, 27}},
		{players: 3, sizes: []int{18, 18, 18}},
		{players: 4, sizes: []int{14, 14, 13, 13}},
		{players: 5, sizes: []int{11, 11, 11, 11, 10}},
	}

	for _, tt := range tests {
		hands := New(randutil.New(7)).Deal(tt.players)
		require.Len(t, hands, tt.players)

		var all []Card
		for i, h := range hands {
			assert.Len(t, h, tt.sizes[i], "players=%d hand=%d", tt.players, i)
			all = append(all, h...)
		}
		assertComposition(t, all)
	}
}

func TestDealNoPlayers(t *testing.T) {
	d := New(randutil.New(1))
	assert.Nil(t, d.Deal(0))
	assert.Equal(t, Size, d.Len())
}

func TestFromCardsCopies(t *testing.T) {
	src := MustParseCards("2 3")
	d := FromCards(src)
	src[0] = King
	assert.Equal(t, MustParseCards("2 3"), d.Cards())
}
