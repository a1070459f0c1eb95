package serverlink

import (
	"errors"
	"testing"

	"obsidion/bot/common"
	"obsidion/bot/features/featuretest"
	"obsidion/models"
	"obsidion/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, path string, args map[string]string) (*service.MockGuildService, *featuretest.Fixture, func() error) {
	t.Helper()
	guilds := new(service.MockGuildService)
	cmd := featuretest.FindCommand(t, NewFeature(guilds).Commands(), path)
	fx := featuretest.NewFixture(t, cmd, args)
	return guilds, fx, func() error { return cmd.Handler(fx.Ctx) }
}

func TestCommands_RequireManageGuild(t *testing.T) {
	cmd := featuretest.FindCommand(t, NewFeature(nil).Commands(), "serverlink link")
	assert.True(t, cmd.RequiresGuild())
	assert.True(t, cmd.RequiresManageGuild())
}

func TestLink(t *testing.T) {
	guilds, fx, run := setup(t, "serverlink link", map[string]string{"address": " mc.example.com:25565"})
	guilds.On("LinkServer", mock.Anything, featuretest.GuildID, " mc.example.com:25565").Return("mc.example.com:25565", nil)

	require.NoError(t, run())

	assert.Equal(t, "This server is now linked to `mc.example.com:25565`.", fx.Responder.LastReply())
	guilds.AssertExpectations(t)
}

func TestLink_InvalidAddress(t *testing.T) {
	guilds, _, run := setup(t, "serverlink link", map[string]string{"address": "not`valid:99999"})
	guilds.On("LinkServer", mock.Anything, featuretest.GuildID, "not`valid:99999").Return("", service.ErrInvalidAddress)

	botErr, ok := common.AsBotError(run())

	require.True(t, ok)
	assert.False(t, botErr.System)
	assert.Equal(t, "`notvalid:99999` is not a valid server address. Use `host` or `host:port`.", botErr.UserMessage)
}

func TestLink_StorageFailure(t *testing.T) {
	guilds, _, run := setup(t, "serverlink link", map[string]string{"address": "mc.example.com"})
	guilds.On("LinkServer", mock.Anything, featuretest.GuildID, "mc.example.com").Return("", errors.New("db down"))

	botErr, ok := common.AsBotError(run())

	require.True(t, ok)
	assert.True(t, botErr.System)
}

func TestUnlink(t *testing.T) {
	guilds, fx, run := setup(t, "serverlink unlink", nil)
	guilds.On("UnlinkServer", mock.Anything, featuretest.GuildID).Return(nil)

	require.NoError(t, run())
	assert.Equal(t, "The Minecraft server link has been removed.", fx.Responder.LastReply())
}

func TestInfo(t *testing.T) {
	server := "mc.example.com"
	guilds, fx, run := setup(t, "serverlink info", nil)
	guilds.On("GetGuild", mock.Anything, featuretest.GuildID).Return(&models.Guild{ID: featuretest.GuildID}, nil).Once()
	guilds.On("GetGuild", mock.Anything, featuretest.GuildID).Return(&models.Guild{ID: featuretest.GuildID, Server: &server}, nil).Once()

	require.NoError(t, run())
	require.NoError(t, run())

	assert.Equal(t, []string{
		"No Minecraft server is linked. Use `serverlink link <address>`.",
		"Linked Minecraft server: `mc.example.com`",
	}, fx.Responder.Replies)
}
