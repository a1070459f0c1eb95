package fun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHand(t *testing.T) {
	h, err := ParseHand(" Rock ")
	require.NoError(t, err)
	assert.Equal(t, Rock, h)

	_, err = ParseHand("scissors")
	assert.ErrorIs(t, err, ErrInvalidHand)

	_, err = ParseHand("")
	assert.ErrorIs(t, err, ErrInvalidHand)
}

func TestScore(t *testing.T) {
	tests := []struct {
		player, bot Hand
		expected    Outcome
	}{
		{Rock, Shears, Win},
		{Shears, Paper, Win},
		{Paper, Rock, Win},
		{Shears, Rock, Lose},
		{Paper, Shears, Lose},
		{Rock, Paper, Lose},
		{Rock, Rock, Tie},
		{Paper, Paper, Tie},
		{Shears, Shears, Tie},
	}

	for _, tt := range tests {
		t.Run(string(tt.player)+"_vs_"+string(tt.bot), func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.player, tt.bot))
		})
	}
}

func TestPlay_UsesSource(t *testing.T) {
	bot, outcome := Play(&fixedSource{values: []int{2}}, Paper)
	assert.Equal(t, Shears, bot)
	assert.Equal(t, Lose, outcome)
}
