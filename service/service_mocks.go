package service

import (
	"context"

	"obsidion/models"
	"obsidion/mojang"

	"github.com/stretchr/testify/mock"
)

// MockGuildService is a mock implementation of GuildService
type MockGuildService struct {
	mock.Mock
}

func (m *MockGuildService) GetGuild(ctx context.Context, guildID int64) (*models.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

func (m *MockGuildService) SetPrefix(ctx context.Context, guildID int64, prefix string) error {
	args := m.Called(ctx, guildID, prefix)
	return args.Error(0)
}

func (m *MockGuildService) SetLocale(ctx context.Context, guildID int64, code string) (string, error) {
	args := m.Called(ctx, guildID, code)
	return args.String(0), args.Error(1)
}

func (m *MockGuildService) SetRegionalFormat(ctx context.Context, guildID int64, code string) (string, error) {
	args := m.Called(ctx, guildID, code)
	return args.String(0), args.Error(1)
}

func (m *MockGuildService) LinkServer(ctx context.Context, guildID int64, address string) (string, error) {
	args := m.Called(ctx, guildID, address)
	return args.String(0), args.Error(1)
}

func (m *MockGuildService) UnlinkServer(ctx context.Context, guildID int64) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockGuildService) CountGuilds(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAutopostService is a mock implementation of AutopostService
type MockAutopostService struct {
	mock.Mock
}

func (m *MockAutopostService) GetChannels(ctx context.Context, guildID int64) (models.NewsChannels, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.NewsChannels), args.Error(1)
}

func (m *MockAutopostService) SaveChannels(ctx context.Context, guildID int64, channels models.NewsChannels) error {
	args := m.Called(ctx, guildID, channels)
	return args.Error(0)
}

func (m *MockAutopostService) SetChannel(ctx context.Context, guildID int64, category models.NewsCategory, channelID int64) error {
	args := m.Called(ctx, guildID, category, channelID)
	return args.Error(0)
}

func (m *MockAutopostService) Subscribers(ctx context.Context, category models.NewsCategory) ([]Subscription, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Subscription), args.Error(1)
}

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, userID int64) (*models.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountService) Link(ctx context.Context, userID int64, username string) (*mojang.Profile, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mojang.Profile), args.Error(1)
}

func (m *MockAccountService) Unlink(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockRconService is a mock implementation of RconService
type MockRconService struct {
	mock.Mock
}

func (m *MockRconService) GetProfile(ctx context.Context, guildID int64) (*models.RconProfile, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RconProfile), args.Error(1)
}

func (m *MockRconService) SaveProfile(ctx context.Context, profile *models.RconProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockRconService) ResetProfile(ctx context.Context, guildID int64) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}
