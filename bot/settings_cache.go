package bot

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"obsidion/events"
	"obsidion/models"
)

// GuildGetter loads guild preferences from storage
type GuildGetter interface {
	GetGuild(ctx context.Context, guildID int64) (*models.Guild, error)
}

// SettingsCache keeps guild preferences in memory so every message does
// not hit the database. Entries are dropped when the guild changes them.
type SettingsCache struct {
	guilds GuildGetter

	mu      sync.RWMutex
	entries map[int64]*models.Guild
	// bumped by Invalidate so a load that raced an update is not stored
	generations map[int64]uint64
}

// NewSettingsCache creates an empty cache in front of guilds
func NewSettingsCache(guilds GuildGetter) *SettingsCache {
	return &SettingsCache{
		guilds:      guilds,
		entries:     make(map[int64]*models.Guild),
		generations: make(map[int64]uint64),
	}
}

// Settings returns the cached preferences, loading them on a miss
func (c *SettingsCache) Settings(ctx context.Context, guildID int64) (*models.Guild, error) {
	c.mu.RLock()
	guild, ok := c.entries[guildID]
	generation := c.generations[guildID]
	c.mu.RUnlock()
	if ok {
		return guild, nil
	}

	guild, err := c.guilds.GetGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.generations[guildID] == generation {
		c.entries[guildID] = guild
	}
	c.mu.Unlock()
	return guild, nil
}

// Invalidate drops one guild's entry
func (c *SettingsCache) Invalidate(guildID int64) {
	c.mu.Lock()
	delete(c.entries, guildID)
	c.generations[guildID]++
	c.mu.Unlock()
}

// Len returns the number of cached guilds
func (c *SettingsCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Subscribe invalidates entries whenever a guild's settings change
func (c *SettingsCache) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeGuildSettingsChanged, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.GuildSettingsChangedEvent)
		if !ok {
			return
		}
		c.Invalidate(e.GuildID)
		log.WithFields(log.Fields{
			"guildID": e.GuildID,
			"field":   e.Field,
		}).Debug("Guild settings cache invalidated")
	})
}
