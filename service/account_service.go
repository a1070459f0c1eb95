package service

import (
	"context"
	"fmt"

	"obsidion/events"
	"obsidion/models"
	"obsidion/mojang"

	log "github.com/sirupsen/logrus"
)

// accountService implements the AccountService interface
type accountService struct {
	uowFactory UnitOfWorkFactory
	profiles   ProfileLookup
}

// NewAccountService creates a new account service
func NewAccountService(uowFactory UnitOfWorkFactory, profiles ProfileLookup) AccountService {
	return &accountService{
		uowFactory: uowFactory,
		profiles:   profiles,
	}
}

func (s *accountService) GetAccount(ctx context.Context, userID int64) (*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// Link resolves the username before opening the transaction so no
// connection is held during the HTTP call.
func (s *accountService) Link(ctx context.Context, userID int64, username string) (*mojang.Profile, error) {
	profile, err := s.profiles.LookupProfile(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %q: %w", username, err)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account := &models.Account{ID: userID, UUID: profile.UUID}
	if err := uow.AccountRepository().Upsert(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account link: %w", err)
	}

	uow.EventBus().Publish(events.AccountLinkedEvent{
		UserID: userID,
		UUID:   profile.UUID,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"userID": userID,
		"uuid":   profile.UUID,
	}).Info("Linked Minecraft account")

	return profile, nil
}

func (s *accountService) Unlink(ctx context.Context, userID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	deleted, err := uow.AccountRepository().Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account link: %w", err)
	}
	if !deleted {
		return ErrAccountNotLinked
	}

	uow.EventBus().Publish(events.AccountUnlinkedEvent{UserID: userID})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
