package service

import (
	"context"
	"fmt"
	"strings"

	"obsidion/events"
	"obsidion/i18n"
	"obsidion/models"
)

// guildService implements the GuildService interface
type guildService struct {
	uowFactory UnitOfWorkFactory
}

// NewGuildService creates a new guild service
func NewGuildService(uowFactory UnitOfWorkFactory) GuildService {
	return &guildService{
		uowFactory: uowFactory,
	}
}

// GetGuild returns the stored preferences without creating a row
func (s *guildService) GetGuild(ctx context.Context, guildID int64) (*models.Guild, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	guild, err := uow.GuildRepository().Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}
	if guild == nil {
		guild = &models.Guild{ID: guildID}
	}

	return guild, nil
}

func (s *guildService) SetPrefix(ctx context.Context, guildID int64, prefix string) error {
	var value *string
	if strings.TrimSpace(prefix) != "" {
		p, err := NormalizePrefix(prefix)
		if err != nil {
			return err
		}
		value = &p
	}

	return s.update(ctx, guildID, "prefix", func(g *models.Guild) {
		g.Prefix = value
	})
}

func (s *guildService) SetLocale(ctx context.Context, guildID int64, code string) (string, error) {
	value, err := parseLocaleOrDefault(code, false)
	if err != nil {
		return "", err
	}

	err = s.update(ctx, guildID, "locale", func(g *models.Guild) {
		g.Locale = value
	})
	if err != nil || value == nil {
		return "", err
	}
	return *value, nil
}

func (s *guildService) SetRegionalFormat(ctx context.Context, guildID int64, code string) (string, error) {
	value, err := parseLocaleOrDefault(code, true)
	if err != nil {
		return "", err
	}

	err = s.update(ctx, guildID, "regional", func(g *models.Guild) {
		g.Regional = value
	})
	if err != nil || value == nil {
		return "", err
	}
	return *value, nil
}

func (s *guildService) LinkServer(ctx context.Context, guildID int64, address string) (string, error) {
	address, err := NormalizeServerAddress(address)
	if err != nil {
		return "", err
	}

	err = s.update(ctx, guildID, "server", func(g *models.Guild) {
		g.Server = &address
	})
	if err != nil {
		return "", err
	}
	return address, nil
}

func (s *guildService) UnlinkServer(ctx context.Context, guildID int64) error {
	return s.update(ctx, guildID, "server", func(g *models.Guild) {
		g.Server = nil
	})
}

func (s *guildService) CountGuilds(ctx context.Context) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	count, err := uow.GuildRepository().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count guilds: %w", err)
	}
	return count, nil
}

// update runs a read-modify-write of one guild row in a single transaction
// and announces the change once it is committed.
func (s *guildService) update(ctx context.Context, guildID int64, field string, mutate func(*models.Guild)) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	guild, err := uow.GuildRepository().GetOrCreate(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild: %w", err)
	}

	mutate(guild)

	if err := uow.GuildRepository().Update(ctx, guild); err != nil {
		return fmt.Errorf("failed to update guild %s: %w", field, err)
	}

	uow.EventBus().Publish(events.GuildSettingsChangedEvent{
		GuildID: guildID,
		Field:   field,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// parseLocaleOrDefault returns nil for "default" and, when allowEmpty is
// set, for an empty code.
func parseLocaleOrDefault(code string, allowEmpty bool) (*string, error) {
	code = strings.TrimSpace(code)
	if strings.EqualFold(code, "default") || (allowEmpty && code == "") {
		return nil, nil
	}

	locale, err := i18n.ParseLocale(code)
	if err != nil {
		return nil, err
	}
	return &locale, nil
}
