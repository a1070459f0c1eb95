package service

import (
	"context"
	"testing"
)

// Test IDs
const (
	TestGuildID   int64 = 100000000000000001
	TestUserID    int64 = 200000000000000002
	TestChannelID int64 = 300000000000000003
	TestRoleID    int64 = 400000000000000004
)

// TestMocks bundles a mocked unit of work with its repositories
type TestMocks struct {
	Factory        *MockUnitOfWorkFactory
	UoW            *MockUnitOfWork
	GuildRepo      *MockGuildRepository
	AccountRepo    *MockAccountRepository
	RconRepo       *MockRconRepository
	EventPublisher *MockEventPublisher
}

// NewTestMocks creates mocks where the factory hands out a unit of work
// that begins successfully and tolerates the deferred Rollback.
func NewTestMocks(ctx context.Context) *TestMocks {
	m := &TestMocks{
		Factory:        new(MockUnitOfWorkFactory),
		UoW:            new(MockUnitOfWork),
		GuildRepo:      new(MockGuildRepository),
		AccountRepo:    new(MockAccountRepository),
		RconRepo:       new(MockRconRepository),
		EventPublisher: new(MockEventPublisher),
	}
	m.UoW.SetRepositories(m.GuildRepo, m.AccountRepo, m.RconRepo, m.EventPublisher)

	m.Factory.On("Create").Return(m.UoW)
	m.UoW.On("Begin", ctx).Return(nil)
	m.UoW.On("Rollback").Return(nil)
	return m
}

// ExpectCommit expects the unit of work to commit
func (m *TestMocks) ExpectCommit() {
	m.UoW.On("Commit").Return(nil)
}

// AssertAllExpectations asserts all mock expectations
func (m *TestMocks) AssertAllExpectations(t *testing.T) {
	m.Factory.AssertExpectations(t)
	m.UoW.AssertExpectations(t)
	m.GuildRepo.AssertExpectations(t)
	m.AccountRepo.AssertExpectations(t)
	m.RconRepo.AssertExpectations(t)
	m.EventPublisher.AssertExpectations(t)
}
