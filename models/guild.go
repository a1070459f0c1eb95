package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// NewsCategory is a kind of Minecraft news a guild can subscribe a channel to
type NewsCategory string

const (
	NewsRelease  NewsCategory = "release"
	NewsSnapshot NewsCategory = "snapshot"
	NewsArticle  NewsCategory = "article"
	NewsOutage   NewsCategory = "outage"
)

// NewsCategories lists every category in the order wizards ask about them
var NewsCategories = []NewsCategory{NewsRelease, NewsSnapshot, NewsArticle, NewsOutage}

// ParseNewsCategory validates a category name
func ParseNewsCategory(s string) (NewsCategory, error) {
	c := NewsCategory(s)
	if !slices.Contains(NewsCategories, c) {
		return "", fmt.Errorf("unknown news category %q", s)
	}
	return c, nil
}

// NewsChannels maps a news category to the channel it is posted in.
// Categories without a channel are absent.
type NewsChannels map[NewsCategory]int64

// Channel returns the channel configured for category, if any
func (n NewsChannels) Channel(category NewsCategory) (int64, bool) {
	id, ok := n[category]
	return id, ok && id != 0
}

// Configured returns the distinct channels that have at least one category
func (n NewsChannels) Configured() []int64 {
	var ids []int64
	for _, c := range NewsCategories {
		if id, ok := n.Channel(c); ok && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// MarshalJSON writes every known category, using null for unset ones
func (n NewsChannels) MarshalJSON() ([]byte, error) {
	out := make(map[NewsCategory]*int64, len(NewsCategories))
	for _, c := range NewsCategories {
		if id, ok := n.Channel(c); ok {
			out[c] = &id
		} else {
			out[c] = nil
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON drops null entries and unknown categories
func (n *NewsChannels) UnmarshalJSON(data []byte) error {
	var raw map[NewsCategory]*int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	channels := make(NewsChannels, len(raw))
	for c, id := range raw {
		if id != nil && *id != 0 && slices.Contains(NewsCategories, c) {
			channels[c] = *id
		}
	}
	*n = channels
	return nil
}

// Guild holds the per-guild preferences. Nil fields fall back to the
// bot defaults.
type Guild struct {
	ID       int64        `db:"id"`
	Prefix   *string      `db:"prefix"`
	Regional *string      `db:"regional"` // locale used for number formatting
	Locale   *string      `db:"locale"`
	Server   *string      `db:"server"` // linked Minecraft server address
	News     NewsChannels `db:"news"`
}

// PrefixOr returns the guild prefix or def when none is set
func (g *Guild) PrefixOr(def string) string {
	if g == nil || g.Prefix == nil || *g.Prefix == "" {
		return def
	}
	return *g.Prefix
}

// LocaleOr returns the guild locale or def when none is set
func (g *Guild) LocaleOr(def string) string {
	if g == nil || g.Locale == nil || *g.Locale == "" {
		return def
	}
	return *g.Locale
}

// RegionalOr returns the regional format, falling back to the locale and
// then to def
func (g *Guild) RegionalOr(def string) string {
	if g == nil || g.Regional == nil || *g.Regional == "" {
		return g.LocaleOr(def)
	}
	return *g.Regional
}
