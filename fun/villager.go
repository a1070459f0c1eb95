package fun

import (
	"strings"
	"unicode"
)

// Villager turns every run of letters into a "hmm": the first letter of a
// run becomes H, the rest become m, each keeping the case of the letter it
// replaces. Single letter runs get a trailing m so no H is left alone.
// Everything that is not a letter is kept as is.
func Villager(speech string) string {
	var b strings.Builder
	b.Grow(len(speech) + 1)

	inRun := false
	loneH := false
	for _, r := range speech {
		if unicode.IsLetter(r) {
			if !inRun {
				b.WriteRune(pickCase(r, 'H', 'h'))
				loneH = true
			} else {
				b.WriteRune(pickCase(r, 'M', 'm'))
				loneH = false
			}
			inRun = true
			continue
		}
		if loneH {
			b.WriteRune('m')
			loneH = false
		}
		b.WriteRune(r)
		inRun = false
	}
	if loneH {
		b.WriteRune('m')
	}
	return strings.TrimSpace(b.String())
}

func pickCase(r, upper, lower rune) rune {
	if unicode.IsUpper(r) {
		return upper
	}
	return lower
}
