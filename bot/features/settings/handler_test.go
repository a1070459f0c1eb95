package settings

import (
	"errors"
	"testing"

	"obsidion/bot/common"
	"obsidion/bot/features/featuretest"
	"obsidion/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, path string, args map[string]string) (*service.MockGuildService, *featuretest.Fixture, func() error) {
	t.Helper()
	guilds := new(service.MockGuildService)
	f := NewFeature(guilds, ".", "en-US")
	cmd := featuretest.FindCommand(t, f.Commands(), path)
	fx := featuretest.NewFixture(t, cmd, args)
	return guilds, fx, func() error { return cmd.Handler(fx.Ctx) }
}

func TestPrefix_Set(t *testing.T) {
	guilds, fx, run := setup(t, "prefix", map[string]string{"prefix": "mc!"})
	guilds.On("SetPrefix", mock.Anything, featuretest.GuildID, "mc!").Return(nil)

	require.NoError(t, run())

	assert.Equal(t, "The prefix for this server is now `mc!`.", fx.Responder.LastReply())
	guilds.AssertExpectations(t)
}

func TestPrefix_ResetWithoutArgument(t *testing.T) {
	guilds, fx, run := setup(t, "serverprefixes", nil)
	guilds.On("SetPrefix", mock.Anything, featuretest.GuildID, "").Return(nil)

	require.NoError(t, run())

	assert.Equal(t, "The prefix has been reset to `.`.", fx.Responder.LastReply())
	guilds.AssertExpectations(t)
}

func TestPrefix_Invalid(t *testing.T) {
	guilds, _, run := setup(t, "prefix", map[string]string{"prefix": "x"})
	guilds.On("SetPrefix", mock.Anything, featuretest.GuildID, "x").Return(service.ErrInvalidPrefix)

	botErr, ok := common.AsBotError(run())

	require.True(t, ok)
	assert.False(t, botErr.System)
	assert.Equal(t, "The prefix must be between 1 and 200 characters long.", botErr.UserMessage)
}

func TestPrefix_StorageFailure(t *testing.T) {
	guilds, _, run := setup(t, "prefix", map[string]string{"prefix": "!"})
	guilds.On("SetPrefix", mock.Anything, featuretest.GuildID, "!").Return(errors.New("db down"))

	botErr, ok := common.AsBotError(run())

	require.True(t, ok)
	assert.True(t, botErr.System)
}

func TestLocale(t *testing.T) {
	t.Run("confirms in the new language", func(t *testing.T) {
		guilds, fx, run := setup(t, "locale", map[string]string{"language_code": "de_de"})
		guilds.On("SetLocale", mock.Anything, featuretest.GuildID, "de_de").Return("de-DE", nil)

		require.NoError(t, run())

		de := featuretest.Catalog(t).Localizer("de-DE", "")
		assert.Equal(t, de.T("settings.locale_set", "de-DE"), fx.Responder.LastReply())
	})

	t.Run("default", func(t *testing.T) {
		guilds, fx, run := setup(t, "locale", map[string]string{"language_code": "default"})
		guilds.On("SetLocale", mock.Anything, featuretest.GuildID, "default").Return("", nil)

		require.NoError(t, run())

		assert.Equal(t, "The language has been reset to the default.", fx.Responder.LastReply())
	})

	errorsByCode := map[error]string{
		service.ErrInvalidLocale: "Invalid language code. Use format: `en-US`",
		service.ErrMissingRegion: "Invalid format - language code has to include country code, e.g. `en-US`",
	}
	for serviceErr, want := range errorsByCode {
		t.Run(serviceErr.Error(), func(t *testing.T) {
			guilds, fx, run := setup(t, "locale", map[string]string{"language_code": "xx"})
			guilds.On("SetLocale", mock.Anything, featuretest.GuildID, "xx").Return("", serviceErr)

			botErr, ok := common.AsBotError(run())

			require.True(t, ok)
			assert.Equal(t, want, botErr.UserMessage)
			assert.Empty(t, fx.Responder.Replies)
		})
	}
}

func TestRegionalFormat(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		guilds, fx, run := setup(t, "region", map[string]string{"language_code": "de-DE"})
		guilds.On("SetRegionalFormat", mock.Anything, featuretest.GuildID, "de-DE").Return("de-DE", nil)

		require.NoError(t, run())

		assert.Equal(t, "Regional format set to `de-DE`. Numbers now look like 1.234.567.", fx.Responder.LastReply())
	})

	t.Run("reset", func(t *testing.T) {
		guilds, fx, run := setup(t, "regionalformat", nil)
		guilds.On("SetRegionalFormat", mock.Anything, featuretest.GuildID, "").Return("", nil)

		require.NoError(t, run())

		assert.Equal(t, "Regional format now follows the server language.", fx.Responder.LastReply())
	})
}
