package common

import (
	"strings"
	"time"
	"unicode/utf8"
)

// maxMessageLength is the Discord limit for message content
const maxMessageLength = 2000

// InlineCode wraps s in backticks, swapping backticks inside s for a
// look-alike so the code span cannot be broken out of
func InlineCode(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "ˋ") + "`"
}

// Truncate shortens s to fit a Discord message
func Truncate(s string) string {
	return TruncateTo(s, maxMessageLength)
}

// TruncateTo shortens s to at most n runes, marking the cut with an ellipsis
func TruncateTo(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

// FormatDuration renders a cooldown like "1.5s"
func FormatDuration(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
