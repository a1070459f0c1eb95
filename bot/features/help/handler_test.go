package help

import (
	"testing"

	"obsidion/bot/common"
	"obsidion/bot/features/featuretest"
	"obsidion/bot/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*router.Context) error { return nil }

func setup(t *testing.T, topic string) (*featuretest.Fixture, func() error) {
	t.Helper()
	reg := router.NewRegistry()
	reg.MustRegister(
		&router.Command{Name: "rps", Cog: router.CogFun, Description: "Rock paper shears", Handler: noop,
			Options: []router.Option{{Name: "choice", Required: true, Choices: []string{"rock", "paper", "shears"}}}},
		&router.Command{Name: "kill", Aliases: []string{"slay"}, Cog: router.CogFun, Description: "Kill someone", Handler: noop,
			Options: []router.Option{{Name: "member", Type: router.OptionUser}}},
		&router.Command{Name: "autopost", Cog: router.CogConfig, Description: "News posting", Subcommands: []*router.Command{
			{Name: "setup", Description: "Run the wizard", Handler: noop},
			{Name: "test", Description: "Send a test message", Handler: noop},
		}},
	)
	feature := NewFeature(reg)
	reg.MustRegister(feature.Commands()...)

	cmd := reg.Find("help")
	args := map[string]string{}
	if topic != "" {
		args["command"] = topic
	}
	fx := featuretest.NewFixture(t, cmd, args)
	return fx, func() error { return cmd.Handler(fx.Ctx) }
}

func TestHelp_Listing(t *testing.T) {
	fx, run := setup(t, "")

	require.NoError(t, run())

	require.Len(t, fx.Responder.Embeds, 1)
	embed := fx.Responder.Embeds[0]
	assert.Equal(t, "Obsidion commands", embed.Title)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Fun", embed.Fields[0].Name)
	assert.Equal(t, "`kill` `rps`", embed.Fields[0].Value)
	assert.Equal(t, "Configuration", embed.Fields[1].Name)
	assert.Equal(t, "`autopost`", embed.Fields[1].Value)
	assert.Equal(t, "Use `.help <command>` for details about a command.", embed.Footer.Text)
}

func TestHelp_Command(t *testing.T) {
	fx, run := setup(t, "slay")

	require.NoError(t, run())

	embed := fx.Responder.Embeds[0]
	assert.Equal(t, "kill", embed.Title)
	assert.Equal(t, "Kill that pesky friend in a fun and stylish way", embed.Description)
	assert.Equal(t, "`.kill [member]`", embed.Fields[0].Value)
	assert.Equal(t, "slay", embed.Fields[1].Value)
}

func TestHelp_Group(t *testing.T) {
	fx, run := setup(t, ".autopost")

	require.NoError(t, run())

	embed := fx.Responder.Embeds[0]
	assert.Equal(t, "`.autopost <setup|test>`", embed.Fields[0].Value)
	assert.Equal(t, "Subcommands", embed.Fields[1].Name)
	assert.Equal(t, "`.autopost setup` Walk through every news category\n`.autopost test` Send a test message to every configured channel", embed.Fields[1].Value)
}

func TestHelp_Subcommand(t *testing.T) {
	fx, run := setup(t, "autopost  test")

	require.NoError(t, run())

	assert.Equal(t, "autopost test", fx.Responder.Embeds[0].Title)
}

func TestHelp_Unknown(t *testing.T) {
	_, run := setup(t, "creeper")

	botErr, ok := common.AsBotError(run())

	require.True(t, ok)
	assert.Equal(t, "There is no command called `creeper`.", botErr.UserMessage)
}

func TestHelp_GermanDescriptions(t *testing.T) {
	fx, run := setup(t, "autopost")
	fx.Ctx.L = featuretest.Catalog(t).Localizer("de-DE", "")

	require.NoError(t, run())

	embed := fx.Responder.Embeds[0]
	assert.Equal(t, "Automatisches Posten von Minecraft-Neuigkeiten einrichten", embed.Description)
	assert.Contains(t, embed.Fields[1].Value, "`.autopost setup` Alle Neuigkeiten-Kategorien durchgehen")
}

func TestHelp_QuotedTopic(t *testing.T) {
	fx, run := setup(t, `"autopost" test`)

	require.NoError(t, run())

	assert.Equal(t, "autopost test", fx.Responder.Embeds[0].Title)
}
