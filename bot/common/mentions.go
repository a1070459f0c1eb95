package common

import (
	"regexp"
	"strconv"
)

var (
	userMentionPattern     = regexp.MustCompile(`^<@!?(\d+)>$`)
	channelMentionPattern  = regexp.MustCompile(`^<#(\d+)>$`)
	roleMentionPattern     = regexp.MustCompile(`^<@&(\d+)>$`)
	snowflakePattern       = regexp.MustCompile(`^\d{1,20}$`)
	roleMentionsPattern    = regexp.MustCompile(`<@&(\d+)>`)
	channelMentionsPattern = regexp.MustCompile(`<#(\d+)>`)
)

// ParseID converts a Discord snowflake string to int64
func ParseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// FormatID converts an int64 snowflake to its string form
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// UserMention returns a Discord mention string for a user
func UserMention(id int64) string {
	return "<@" + FormatID(id) + ">"
}

// ChannelMention returns a Discord mention string for a channel
func ChannelMention(id int64) string {
	return "<#" + FormatID(id) + ">"
}

// RoleMention returns a Discord mention string for a role
func RoleMention(id int64) string {
	return "<@&" + FormatID(id) + ">"
}

// ParseUserMention accepts <@id>, <@!id> or a bare id
func ParseUserMention(s string) (int64, bool) {
	return parseMention(userMentionPattern, s)
}

// ParseChannelMention accepts <#id> or a bare id
func ParseChannelMention(s string) (int64, bool) {
	return parseMention(channelMentionPattern, s)
}

// ParseRoleMention accepts <@&id> or a bare id
func ParseRoleMention(s string) (int64, bool) {
	return parseMention(roleMentionPattern, s)
}

// ParseRoleMentions returns every role mentioned anywhere in s
func ParseRoleMentions(s string) []int64 {
	return findMentions(roleMentionsPattern, s)
}

// ParseChannelMentions returns every channel mentioned anywhere in s
func ParseChannelMentions(s string) []int64 {
	return findMentions(channelMentionsPattern, s)
}

func findMentions(pattern *regexp.Regexp, s string) []int64 {
	var ids []int64
	for _, m := range pattern.FindAllStringSubmatch(s, -1) {
		if id, err := ParseID(m[1]); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func parseMention(pattern *regexp.Regexp, s string) (int64, bool) {
	digits := s
	if m := pattern.FindStringSubmatch(s); m != nil {
		digits = m[1]
	} else if !snowflakePattern.MatchString(s) {
		return 0, false
	}
	id, err := ParseID(digits)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
