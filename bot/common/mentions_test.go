package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMentions(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (int64, bool)
		input string
		want  int64
		ok    bool
	}{
		{"user", ParseUserMention, "<@123>", 123, true},
		{"user nickname form", ParseUserMention, "<@!123>", 123, true},
		{"user bare id", ParseUserMention, "123", 123, true},
		{"user rejects role", ParseUserMention, "<@&123>", 0, false},
		{"user rejects text", ParseUserMention, "steve", 0, false},
		{"channel", ParseChannelMention, "<#456>", 456, true},
		{"channel rejects user", ParseChannelMention, "<@456>", 0, false},
		{"role", ParseRoleMention, "<@&789>", 789, true},
		{"zero id", ParseUserMention, "0", 0, false},
		{"overflow", ParseUserMention, "99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoleMentions(t *testing.T) {
	assert.Equal(t, []int64{1, 22}, ParseRoleMentions("admins <@&1> and <@&22>, not <@3>"))
	assert.Empty(t, ParseRoleMentions("none"))
}

func TestMentionFormatting(t *testing.T) {
	assert.Equal(t, "<@42>", UserMention(42))
	assert.Equal(t, "<#42>", ChannelMention(42))
	assert.Equal(t, "<@&42>", RoleMention(42))
}

func TestInlineCode(t *testing.T) {
	assert.Equal(t, "`hello`", InlineCode("hello"))
	assert.Equal(t, "`aˋb`", InlineCode("a`b"))
}

func TestTruncateTo(t *testing.T) {
	assert.Equal(t, "short", TruncateTo("short", 10))
	assert.Equal(t, "abcd…", TruncateTo("abcdefgh", 5))
	assert.Equal(t, "ᔑʖ…", TruncateTo("ᔑʖᓵ↸", 3))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.5s", FormatDuration(1490*time.Millisecond))
}

func TestParseChannelMentions(t *testing.T) {
	assert.Equal(t, []int64{5}, ParseChannelMentions("post in <#5> please"))
	assert.Nil(t, ParseChannelMentions("#general"))
}
