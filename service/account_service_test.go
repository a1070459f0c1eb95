package service

import (
	"context"
	"errors"
	"testing"

	"obsidion/events"
	"obsidion/models"
	"obsidion/mojang"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var notchUUID = uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")

func TestAccountService_Link(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()
	lookup := new(MockProfileLookup)

	lookup.On("LookupProfile", ctx, "notch").Return(&mojang.Profile{UUID: notchUUID, Name: "Notch"}, nil)
	m.AccountRepo.On("Upsert", ctx, &models.Account{ID: TestUserID, UUID: notchUUID}).Return(nil)
	m.EventPublisher.On("Publish", events.AccountLinkedEvent{UserID: TestUserID, UUID: notchUUID}).Return()

	profile, err := NewAccountService(m.Factory, lookup).Link(ctx, TestUserID, "notch")

	require.NoError(t, err)
	assert.Equal(t, "Notch", profile.Name)
	lookup.AssertExpectations(t)
	m.AssertAllExpectations(t)
}

func TestAccountService_Link_PlayerNotFound(t *testing.T) {
	ctx := context.Background()
	factory := new(MockUnitOfWorkFactory)
	lookup := new(MockProfileLookup)
	lookup.On("LookupProfile", ctx, "ghost").Return(nil, mojang.ErrPlayerNotFound)

	_, err := NewAccountService(factory, lookup).Link(ctx, TestUserID, "ghost")

	assert.ErrorIs(t, err, ErrPlayerNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAccountService_Link_SaveFails(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	lookup := new(MockProfileLookup)

	lookup.On("LookupProfile", ctx, "notch").Return(&mojang.Profile{UUID: notchUUID, Name: "Notch"}, nil)
	m.AccountRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := NewAccountService(m.Factory, lookup).Link(ctx, TestUserID, "notch")

	assert.ErrorContains(t, err, "disk full")
	m.UoW.AssertNotCalled(t, "Commit")
	m.EventPublisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestAccountService_Unlink(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()

	m.AccountRepo.On("Delete", ctx, TestUserID).Return(true, nil)
	m.EventPublisher.On("Publish", events.AccountUnlinkedEvent{UserID: TestUserID}).Return()

	require.NoError(t, NewAccountService(m.Factory, nil).Unlink(ctx, TestUserID))
	m.AssertAllExpectations(t)
}

func TestAccountService_Unlink_NotLinked(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.AccountRepo.On("Delete", ctx, TestUserID).Return(false, nil)

	err := NewAccountService(m.Factory, nil).Unlink(ctx, TestUserID)

	assert.ErrorIs(t, err, ErrAccountNotLinked)
	m.UoW.AssertNotCalled(t, "Commit")
}

func TestAccountService_GetAccount(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.AccountRepo.On("Get", ctx, TestUserID).Return(nil, nil)

	account, err := NewAccountService(m.Factory, nil).GetAccount(ctx, TestUserID)

	require.NoError(t, err)
	assert.Nil(t, account)
	m.AssertAllExpectations(t)
}
