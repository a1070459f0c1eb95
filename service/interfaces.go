package service

import (
	"context"

	"obsidion/events"
	"obsidion/models"
	"obsidion/mojang"
)

// GuildRepository defines the interface for guild preference data access
type GuildRepository interface {
	// Get returns the guild row or nil when the guild never configured anything
	Get(ctx context.Context, guildID int64) (*models.Guild, error)

	// GetOrCreate returns the guild row, inserting an empty one if needed
	GetOrCreate(ctx context.Context, guildID int64) (*models.Guild, error)

	// Update overwrites every preference column of the guild
	Update(ctx context.Context, guild *models.Guild) error

	// ListByNewsCategory returns guilds with a channel set for category
	ListByNewsCategory(ctx context.Context, category models.NewsCategory) ([]*models.Guild, error)

	// Count returns the number of configured guilds
	Count(ctx context.Context) (int64, error)
}

// AccountRepository defines the interface for account link data access
type AccountRepository interface {
	// Get returns the account link or nil when the user has none
	Get(ctx context.Context, userID int64) (*models.Account, error)

	// Upsert creates or replaces the link
	Upsert(ctx context.Context, account *models.Account) error

	// Delete removes the link and reports whether one existed
	Delete(ctx context.Context, userID int64) (bool, error)
}

// RconRepository defines the interface for RCON profile data access
type RconRepository interface {
	// Get returns the guild's profile or nil when none is stored
	Get(ctx context.Context, guildID int64) (*models.RconProfile, error)

	// Upsert creates or replaces the profile
	Upsert(ctx context.Context, profile *models.RconProfile) error

	// Delete removes the profile and reports whether one existed
	Delete(ctx context.Context, guildID int64) (bool, error)
}

// EventPublisher collects domain events raised inside a unit of work
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	GuildRepository() GuildRepository
	AccountRepository() AccountRepository
	RconRepository() RconRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// ProfileLookup resolves Minecraft usernames
type ProfileLookup interface {
	LookupProfile(ctx context.Context, username string) (*mojang.Profile, error)
}

// GuildService defines the per-guild preference operations
type GuildService interface {
	// GetGuild returns the guild preferences; unknown guilds get an empty record
	GetGuild(ctx context.Context, guildID int64) (*models.Guild, error)

	// SetPrefix stores the command prefix; an empty prefix resets it
	SetPrefix(ctx context.Context, guildID int64, prefix string) error

	// SetLocale stores the guild language and returns it in standard form.
	// "default" clears it and returns "".
	SetLocale(ctx context.Context, guildID int64, code string) (string, error)

	// SetRegionalFormat stores the number format locale. An empty code or
	// "default" clears it and returns "".
	SetRegionalFormat(ctx context.Context, guildID int64, code string) (string, error)

	// LinkServer validates and stores the Minecraft server address
	LinkServer(ctx context.Context, guildID int64, address string) (string, error)

	// UnlinkServer clears the server address
	UnlinkServer(ctx context.Context, guildID int64) error

	// CountGuilds returns how many guilds have stored preferences
	CountGuilds(ctx context.Context) (int64, error)
}

// Subscription is a channel that receives one news category
type Subscription struct {
	GuildID   int64
	ChannelID int64
	Locale    *string
	Regional  *string
}

// AutopostService defines the news channel configuration operations
type AutopostService interface {
	// GetChannels returns the guild's category to channel map
	GetChannels(ctx context.Context, guildID int64) (models.NewsChannels, error)

	// SaveChannels replaces the whole map
	SaveChannels(ctx context.Context, guildID int64, channels models.NewsChannels) error

	// SetChannel sets one category; channelID 0 turns it off
	SetChannel(ctx context.Context, guildID int64, category models.NewsCategory, channelID int64) error

	// Subscribers lists every channel that receives category
	Subscribers(ctx context.Context, category models.NewsCategory) ([]Subscription, error)
}

// AccountService defines the account linking operations
type AccountService interface {
	// GetAccount returns the user's link or nil when there is none
	GetAccount(ctx context.Context, userID int64) (*models.Account, error)

	// Link resolves username and links its profile to the user
	Link(ctx context.Context, userID int64, username string) (*mojang.Profile, error)

	// Unlink removes the user's link
	Unlink(ctx context.Context, userID int64) error
}

// RconService defines the RCON profile operations
type RconService interface {
	// GetProfile returns the guild's profile
	GetProfile(ctx context.Context, guildID int64) (*models.RconProfile, error)

	// SaveProfile validates and stores the profile
	SaveProfile(ctx context.Context, profile *models.RconProfile) error

	// ResetProfile deletes the guild's profile
	ResetProfile(ctx context.Context, guildID int64) error
}
