package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:     "face cards and joker",
			input:    "T J Q K A X",
			expected: []Card{Ten, Jack, Queen, King, Ace, Joker},
		},
		{
			name:     "numeric ranks",
			input:    "2 9 10 13 14 15",
			expected: []Card{Two, Nine, Ten, King, Ace, Joker},
		},
		{
			name:     "lower case",
			input:    "k x t",
			expected: []Card{King, Joker, Ten},
		},
		{
			name:     "empty",
			input:    "",
			expected: []Card{},
		},
		{
			name:    "suits are not accepted",
			input:   "As",
			wantErr: true,
		},
		{
			name:    "nothing above the joker",
			input:   "16",
			wantErr: true,
		},
		{
			name:    "one is not a card",
			input:   "1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCardString(t *testing.T) {
	for _, c := range Standard() {
		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "?", Card(16).String())
	assert.Equal(t, "9 T X", FormatCards([]Card{Nine, Ten, Joker}))
}

func TestCardValid(t *testing.T) {
	assert.True(t, Two.Valid())
	assert.True(t, Ace.Valid())
	assert.True(t, Joker.Valid())
	assert.False(t, Card(1).Valid())
	assert.False(t, Card(16).Valid())
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseCards("2 Z") })
}
