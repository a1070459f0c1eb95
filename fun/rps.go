package fun

import (
	"errors"
	"strings"
)

// Hand is a rock paper shears choice.
type Hand string

const (
	Rock   Hand = "rock"
	Paper  Hand = "paper"
	Shears Hand = "shears"
)

// Hands lists the valid choices in display order.
var Hands = []Hand{Rock, Paper, Shears}

// Outcome is the result from the player's point of view.
type Outcome int

const (
	Lose Outcome = iota - 1
	Tie
	Win
)

var ErrInvalidHand = errors.New("invalid hand")

var beats = map[Hand]Hand{
	Rock:   Shears,
	Shears: Paper,
	Paper:  Rock,
}

// ParseHand accepts a choice in any case.
func ParseHand(s string) (Hand, error) {
	h := Hand(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := beats[h]; !ok {
		return "", ErrInvalidHand
	}
	return h, nil
}

// Play draws the bot's hand from src and scores the round.
func Play(src Source, player Hand) (Hand, Outcome) {
	bot := Hands[src.IntN(len(Hands))]
	return bot, Score(player, bot)
}

// Score compares two hands.
func Score(player, bot Hand) Outcome {
	switch {
	case player == bot:
		return Tie
	case beats[player] == bot:
		return Win
	default:
		return Lose
	}
}
