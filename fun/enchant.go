package fun

import (
	"strings"
	"unicode/utf8"
)

// enchantTable pairs every supported character with its enchanting table
// glyph. Letters use the Standard Galactic Alphabet, digits use the Roman
// numerals in keyboard order (1..9 then 0).
var enchantTable = []struct {
	plain  rune
	symbol string
}{
	{'a', "ᔑ"}, {'b', "ʖ"}, {'c', "ᓵ"}, {'d', "↸"}, {'e', "ᒷ"},
	{'f', "⎓"}, {'g', "⊣"}, {'h', "⍑"}, {'i', "╎"}, {'j', "⋮"},
	{'k', "ꖌ"}, {'l', "ꖎ"}, {'m', "ᒲ"}, {'n', "リ"}, {'o', "𝙹"},
	{'p', "!¡"}, {'q', "ᑑ"}, {'r', "∷"}, {'s', "ᓭ"}, {'t', "ℸ̣"},
	{'u', "⚍"}, {'v', "⍊"}, {'w', "∴"}, {'x', "/̇"}, {'y', "‖"},
	{'z', "⨅"},
	{'1', "Ⅰ"}, {'2', "Ⅱ"}, {'3', "Ⅲ"}, {'4', "Ⅳ"}, {'5', "Ⅴ"},
	{'6', "Ⅵ"}, {'7', "Ⅶ"}, {'8', "Ⅷ"}, {'9', "Ⅸ"}, {'0', "Ⅹ"},
}

var (
	toSymbol  = make(map[rune]string, len(enchantTable))
	fromGlyph = make(map[string]rune, len(enchantTable))
	maxGlyph  int
)

func init() {
	for _, e := range enchantTable {
		toSymbol[e.plain] = e.symbol
		fromGlyph[e.symbol] = e.plain
		if len(e.symbol) > maxGlyph {
			maxGlyph = len(e.symbol)
		}
	}
}

// Enchant rewrites s in the enchanting table alphabet. Runes outside the
// table, upper case letters included, are copied unchanged.
func Enchant(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if sym, ok := toSymbol[r]; ok {
			b.WriteString(sym)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unenchant reverses Enchant. At each position the longest matching glyph
// wins; anything that is not a glyph is copied unchanged.
func Unenchant(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		matched := false
		for n := min(maxGlyph, len(s)-i); n > 0; n-- {
			if r, ok := fromGlyph[s[i:i+n]]; ok {
				b.WriteRune(r)
				i += n
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		// copy one whole rune so multi-byte text survives
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
