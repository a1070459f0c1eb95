package models

import (
	"errors"
	"time"
)

// NewsItem is a piece of Minecraft news published for autopost delivery
type NewsItem struct {
	Category    NewsCategory `json:"category"`
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	Summary     string       `json:"summary,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	PublishedAt time.Time    `json:"published_at"`
}

// Validate checks the fields needed to post the item
func (n *NewsItem) Validate() error {
	if _, err := ParseNewsCategory(string(n.Category)); err != nil {
		return err
	}
	if n.Title == "" {
		return errors.New("news item has no title")
	}
	return nil
}
