package fun

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestVillager(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "hello", "hmmmm"},
		{"keeps case", "Hello World", "Hmmmm Hmmmm"},
		{"uppercase inside word", "hELLO", "hMMMM"},
		{"single letters get an m", "a b", "hm hm"},
		{"single capital letter", "I", "Hm"},
		{"punctuation passes through", "Yes, no?", "Hmm, hm?"},
		{"digits split runs", "ab1cd", "hm1hm"},
		{"trims whitespace", "  trade  ", "hmmmm"},
		{"only punctuation", "!!", "!!"},
		{"empty", "", ""},
		{"non latin letters", "привет", "hmmmmm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Villager(tt.input))
		})
	}
}

func TestVillager_PreservesNonLetters(t *testing.T) {
	in := "a-b_c.d 1,2;3"
	out := Villager(in)
	var got, want []rune
	for _, r := range in {
		if !unicode.IsLetter(r) {
			want = append(want, r)
		}
	}
	for _, r := range out {
		if r != 'h' && r != 'm' && r != 'H' && r != 'M' {
			got = append(got, r)
		}
	}
	assert.Equal(t, string(want), string(got))
}
