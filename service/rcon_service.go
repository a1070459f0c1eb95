package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"obsidion/events"
	"obsidion/models"
)

// rconService implements the RconService interface
type rconService struct {
	uowFactory UnitOfWorkFactory
}

// NewRconService creates a new RCON profile service
func NewRconService(uowFactory UnitOfWorkFactory) RconService {
	return &rconService{
		uowFactory: uowFactory,
	}
}

func (s *rconService) GetProfile(ctx context.Context, guildID int64) (*models.RconProfile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	profile, err := uow.RconRepository().Get(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rcon profile: %w", err)
	}
	if profile == nil {
		return nil, ErrRconNotConfigured
	}
	return profile, nil
}

func (s *rconService) SaveProfile(ctx context.Context, profile *models.RconProfile) error {
	server := strings.TrimSpace(profile.Server)
	if server == "" || len(server) > maxAddressLen || !ValidHost(server) {
		return ErrInvalidAddress
	}
	if profile.Port < 1 || profile.Port > 65535 {
		return ErrInvalidPort
	}
	if !ValidPassword(profile.Password) {
		return ErrInvalidPassword
	}

	stored := *profile
	stored.Server = server
	stored.Roles = slices.Compact(slices.Sorted(slices.Values(profile.Roles)))
	if stored.Roles == nil {
		stored.Roles = []int64{}
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.RconRepository().Upsert(ctx, &stored); err != nil {
		return fmt.Errorf("failed to save rcon profile: %w", err)
	}

	uow.EventBus().Publish(events.RconProfileChangedEvent{GuildID: profile.GuildID})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *rconService) ResetProfile(ctx context.Context, guildID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	deleted, err := uow.RconRepository().Delete(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to delete rcon profile: %w", err)
	}
	if !deleted {
		return ErrRconNotConfigured
	}

	uow.EventBus().Publish(events.RconProfileChangedEvent{GuildID: guildID, Deleted: true})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
