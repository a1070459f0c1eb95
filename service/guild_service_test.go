package service

import (
	"context"
	"errors"
	"testing"

	"obsidion/events"
	"obsidion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func expectSettingsChanged(m *TestMocks, field string) {
	m.EventPublisher.On("Publish", events.GuildSettingsChangedEvent{GuildID: TestGuildID, Field: field}).Return()
}

func TestGuildService_GetGuild_Unknown(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.GuildRepo.On("Get", ctx, TestGuildID).Return(nil, nil)

	guild, err := NewGuildService(m.Factory).GetGuild(ctx, TestGuildID)

	require.NoError(t, err)
	assert.Equal(t, &models.Guild{ID: TestGuildID}, guild)
	m.UoW.AssertNotCalled(t, "Commit")
	m.AssertAllExpectations(t)
}

func TestGuildService_SetPrefix(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()
	expectSettingsChanged(m, "prefix")

	guild := &models.Guild{ID: TestGuildID}
	m.GuildRepo.On("GetOrCreate", ctx, TestGuildID).Return(guild, nil)
	m.GuildRepo.On("Update", ctx, mock.MatchedBy(func(g *models.Guild) bool {
		return g.Prefix != nil && *g.Prefix == "!"
	})).Return(nil)

	err := NewGuildService(m.Factory).SetPrefix(ctx, TestGuildID, "  ! ")

	require.NoError(t, err)
	m.AssertAllExpectations(t)
}

func TestGuildService_SetPrefix_EmptyResets(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()
	expectSettingsChanged(m, "prefix")

	guild := &models.Guild{ID: TestGuildID, Prefix: strPtr("?")}
	m.GuildRepo.On("GetOrCreate", ctx, TestGuildID).Return(guild, nil)
	m.GuildRepo.On("Update", ctx, mock.MatchedBy(func(g *models.Guild) bool {
		return g.Prefix == nil
	})).Return(nil)

	require.NoError(t, NewGuildService(m.Factory).SetPrefix(ctx, TestGuildID, ""))
	m.AssertAllExpectations(t)
}

func TestGuildService_SetPrefix_TooLong(t *testing.T) {
	factory := new(MockUnitOfWorkFactory)

	long := make([]rune, 201)
	for i := range long {
		long[i] = 'x'
	}
	err := NewGuildService(factory).SetPrefix(context.Background(), TestGuildID, string(long))

	assert.ErrorIs(t, err, ErrInvalidPrefix)
	factory.AssertNotCalled(t, "Create")
}

func TestGuildService_SetLocale(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()
	expectSettingsChanged(m, "locale")

	m.GuildRepo.On("GetOrCreate", ctx, TestGuildID).Return(&models.Guild{ID: TestGuildID}, nil)
	m.GuildRepo.On("Update", ctx, mock.MatchedBy(func(g *models.Guild) bool {
		return g.Locale != nil && *g.Locale == "de-DE"
	})).Return(nil)

	locale, err := NewGuildService(m.Factory).SetLocale(ctx, TestGuildID, "de_de")

	require.NoError(t, err)
	assert.Equal(t, "de-DE", locale)
	m.AssertAllExpectations(t)
}

func TestGuildService_SetLocale_Default(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()
	expectSettingsChanged(m, "locale")

	m.GuildRepo.On("GetOrCreate", ctx, TestGuildID).Return(&models.Guild{ID: TestGuildID, Locale: strPtr("fr-FR")}, nil)
	m.GuildRepo.On("Update", ctx, mock.MatchedBy(func(g *models.Guild) bool {
		return g.Locale == nil
	})).Return(nil)

	locale, err := NewGuildService(m.Factory).SetLocale(ctx, TestGuildID, "Default")

	require.NoError(t, err)
	assert.Empty(t, locale)
	m.AssertAllExpectations(t)
}

func TestGuildService_SetLocale_Invalid(t *testing.T) {
	factory := new(MockUnitOfWorkFactory)
	svc := NewGuildService(factory)

	_, err := svc.SetLocale(context.Background(), TestGuildID, "klingon!")
	assert.ErrorIs(t, err, ErrInvalidLocale)

	_, err = svc.SetLocale(context.Background(), TestGuildID, "en")
	assert.ErrorIs(t, err, ErrMissingRegion)

	// empty is not "default" for the locale
	_, err = svc.SetLocale(context.Background(), TestGuildID, "")
	assert.ErrorIs(t, err, ErrInvalidLocale)

	factory.AssertNotCalled(t, "Create")
}

func TestGuildService_SetRegionalFormat_EmptyClears(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()
	expectSettingsChanged(m, "regional")

	m.GuildRepo.On("GetOrCreate", ctx, TestGuildID).Return(&models.Guild{ID: TestGuildID, Regional: strPtr("de-DE")}, nil)
	m.GuildRepo.On("Update", ctx, mock.MatchedBy(func(g *models.Guild) bool {
		return g.Regional == nil
	})).Return(nil)

	regional, err := NewGuildService(m.Factory).SetRegionalFormat(ctx, TestGuildID, "")

	require.NoError(t, err)
	assert.Empty(t, regional)
	m.AssertAllExpectations(t)
}

func TestGuildService_LinkServer(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.ExpectCommit()
	expectSettingsChanged(m, "server")

	m.GuildRepo.On("GetOrCreate", ctx, TestGuildID).Return(&models.Guild{ID: TestGuildID}, nil)
	m.GuildRepo.On("Update", ctx, mock.MatchedBy(func(g *models.Guild) bool {
		return g.Server != nil && *g.Server == "play.example.com:25565"
	})).Return(nil)

	addr, err := NewGuildService(m.Factory).LinkServer(ctx, TestGuildID, " play.example.com:25565 ")

	require.NoError(t, err)
	assert.Equal(t, "play.example.com:25565", addr)
	m.AssertAllExpectations(t)
}

func TestGuildService_UpdateFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)

	m.GuildRepo.On("GetOrCreate", ctx, TestGuildID).Return(&models.Guild{ID: TestGuildID}, nil)
	m.GuildRepo.On("Update", ctx, mock.Anything).Return(errors.New("connection reset"))

	err := NewGuildService(m.Factory).UnlinkServer(ctx, TestGuildID)

	assert.ErrorContains(t, err, "connection reset")
	m.UoW.AssertNotCalled(t, "Commit")
	m.EventPublisher.AssertNotCalled(t, "Publish", mock.Anything)
	m.UoW.AssertCalled(t, "Rollback")
}

func TestGuildService_CountGuilds(t *testing.T) {
	ctx := context.Background()
	m := NewTestMocks(ctx)
	m.GuildRepo.On("Count", ctx).Return(int64(12), nil)

	count, err := NewGuildService(m.Factory).CountGuilds(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	m.AssertAllExpectations(t)
}
