package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"obsidion/bot/common"
	"obsidion/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testGuild   int64 = 10
	testChannel int64 = 20
)

type routerFixture struct {
	router    *Router
	responder *fakeResponder
	calls     []string
	err       error
	lastArgs  Args
}

func newRouterFixture(t *testing.T, settings staticSettings) *routerFixture {
	f := &routerFixture{responder: &fakeResponder{}}
	record := func(name string) HandlerFunc {
		return func(c *Context) error {
			f.calls = append(f.calls, name)
			f.lastArgs = c.Args
			if f.err != nil {
				return f.err
			}
			return c.Reply(name + " ran")
		}
	}

	reg := NewRegistry()
	reg.MustRegister(
		&Command{Name: "creeper", Cog: CogFun, Handler: record("creeper")},
		&Command{Name: "enchant", Cog: CogFun, Handler: record("enchant"), Options: []Option{
			{Name: "text", Required: true, Rest: true},
		}},
		&Command{Name: "prefix", Aliases: []string{"serverprefixes"}, Cog: CogConfig, ManageGuild: true, Handler: record("prefix"), Options: []Option{
			{Name: "prefix"},
		}},
		&Command{Name: "autopost", Cog: CogConfig, Description: "Automatic news posts", ManageGuild: true, Subcommands: []*Command{
			{Name: "setup", Description: "Run the wizard", ManageGuild: true, Handler: record("autopost setup")},
			{Name: "edit", Description: "Change one category", ManageGuild: true, Handler: record("autopost edit"), Options: []Option{
				{Name: "category", Required: true, Choices: []string{"release", "outage"}},
				{Name: "channel", Type: OptionChannel},
			}},
		}},
	)

	f.router = New(Config{
		DefaultPrefix: ".",
		DefaultLocale: "en-US",
		WizardTimeout: 50 * time.Millisecond,
		CommandRate:   1000,
	}, reg, testCatalog(t), settings)
	return f
}

func (f *routerFixture) invocation(guildID, permissions int64) Invocation {
	return Invocation{
		GuildID:     guildID,
		ChannelID:   testChannel,
		Author:      &discordgo.User{ID: "5"},
		Permissions: permissions,
		Responder:   f.responder,
	}
}

func (f *routerFixture) text(content string) bool {
	return f.router.HandleMessage(context.Background(), f.invocation(testGuild, discordgo.PermissionManageServer), content)
}

func TestRouter_DefaultPrefix(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})

	assert.True(t, f.text(".creeper"))
	assert.True(t, f.text(".CREEPER"))
	assert.False(t, f.text("creeper"))
	assert.False(t, f.text(". creeper"))
	assert.False(t, f.text("."))
	assert.False(t, f.text(".unknown"))

	assert.Equal(t, []string{"creeper", "creeper"}, f.calls)
	assert.Equal(t, []string{"creeper ran", "creeper ran"}, f.responder.Replies())
}

func TestRouter_GuildPrefix(t *testing.T) {
	prefix := "mc!"
	f := newRouterFixture(t, staticSettings{testGuild: {ID: testGuild, Prefix: &prefix}})

	assert.False(t, f.text(".creeper"))
	assert.True(t, f.text("mc!creeper"))
	assert.Equal(t, []string{"creeper"}, f.calls)
}

func TestRouter_MentionPrefix(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})
	f.router.SetBotID(99)

	assert.True(t, f.text("<@99> creeper"))
	assert.True(t, f.text("<@!99>creeper"))
	assert.False(t, f.text("<@98> creeper"))
	assert.Len(t, f.calls, 2)
}

func TestRouter_RestOfLine(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})

	f.text(`.enchant hello   "world"`)

	assert.Equal(t, `hello   "world"`, f.lastArgs.String("text"))
}

func TestRouter_Alias(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})

	f.text(".serverprefixes !")

	assert.Equal(t, []string{"prefix"}, f.calls)
	assert.Equal(t, "!", f.lastArgs.String("prefix"))
}

func TestRouter_Subcommands(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})

	f.text(".autopost edit Outage <#30>")

	require.Equal(t, []string{"autopost edit"}, f.calls)
	assert.Equal(t, "outage", f.lastArgs.String("category"))
	channel, ok := f.lastArgs.ID("channel")
	assert.True(t, ok)
	assert.Equal(t, int64(30), channel)
}

func TestRouter_GroupWithoutSubcommandShowsHelp(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})

	f.text(".autopost")
	f.text(".autopost bogus")

	assert.Empty(t, f.calls)
	want := "Set up automatic posting of Minecraft news\n" +
		"`.autopost setup` Walk through every news category\n" +
		"`.autopost edit <release|outage> [channel]` Change or turn off the channel of one category"
	assert.Equal(t, []string{want, want}, f.responder.Replies())
}

func TestRouter_GroupHelpIsLocalized(t *testing.T) {
	locale := "fr-FR"
	f := newRouterFixture(t, staticSettings{testGuild: {ID: testGuild, Locale: &locale}})

	f.router.HandleMessage(context.Background(), f.invocation(testGuild, discordgo.PermissionManageServer), ".autopost")

	fr := testCatalog(t).Localizer("fr-FR", "")
	want := fr.T("command.autopost") + "\n" +
		"`.autopost setup` " + fr.T("command.autopost.setup") + "\n" +
		"`.autopost edit <release|outage> [channel]` " + fr.T("command.autopost.edit")
	assert.Equal(t, []string{want}, f.responder.Replies())
	assert.NotContains(t, want, "Minecraft news")
}

func TestRouter_Permissions(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})
	ctx := context.Background()

	f.router.HandleMessage(ctx, f.invocation(testGuild, 0), ".prefix !")
	f.router.HandleMessage(ctx, f.invocation(0, 0), ".prefix !")
	f.router.HandleMessage(ctx, f.invocation(testGuild, discordgo.PermissionAdministrator), ".prefix !")

	assert.Equal(t, []string{"prefix"}, f.calls)
	assert.Equal(t, []string{
		"You need the Manage Server permission to use this command.",
		"This command can only be used in a server.",
		"prefix ran",
	}, f.responder.Replies())
}

func TestRouter_ArgumentErrors(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})

	f.text(".enchant")
	f.text(".autopost edit bedrock")
	f.text(".autopost edit release general")

	assert.Empty(t, f.calls)
	assert.Equal(t, []string{
		"Missing required argument `text`. Usage: `.enchant <text...>`",
		"`bedrock` is not a valid choice. Pick one of: release, outage",
		"That is not a channel mention. Mention it like #news.",
	}, f.responder.Replies())
}

func TestRouter_HandlerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"user error", common.NewUserError("No such player.", "lookup failed"), []string{"No such player."}},
		{"system error", common.NewSystemError(errors.New("db down"), "save failed"), []string{"Something went wrong while running that command. Please try again later."}},
		{"plain error", errors.New("boom"), []string{"Something went wrong while running that command. Please try again later."}},
		{"wizard timeout", ErrWaitTimeout, []string{"Response timed out."}},
		{"wrapped timeout", errors.Join(errors.New("step 2"), ErrWaitTimeout), []string{"Response timed out."}},
		{"cancelled", context.Canceled, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, staticSettings{})
			f.err = tt.err

			f.text(".creeper")

			assert.Equal(t, tt.want, f.responder.Replies())
		})
	}
}

func TestRouter_Cooldown(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})
	f.router.cooldowns = NewCooldowns(0.001, 3)

	for i := 0; i < 4; i++ {
		f.text(".creeper")
	}

	assert.Len(t, f.calls, 3)
	replies := f.responder.Replies()
	assert.Contains(t, replies[3], "Slow down!")
}

func TestRouter_LocalizedReplies(t *testing.T) {
	locale := "de-DE"
	f := newRouterFixture(t, staticSettings{testGuild: {ID: testGuild, Locale: &locale}})

	f.router.HandleMessage(context.Background(), f.invocation(testGuild, 0), ".prefix")

	de := testCatalog(t).Localizer("de-DE", "")
	assert.Equal(t, []string{de.T("error.missing_permission")}, f.responder.Replies())
}

func TestRouter_Slash(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})

	f.router.HandleSlash(context.Background(), f.invocation(testGuild, discordgo.PermissionManageServer),
		[]string{"autopost", "edit"}, map[string]string{"category": "release", "channel": "31"})
	f.router.HandleSlash(context.Background(), f.invocation(testGuild, discordgo.PermissionManageServer),
		[]string{"missing"}, nil)

	require.Equal(t, []string{"autopost edit"}, f.calls)
	channel, _ := f.lastArgs.ID("channel")
	assert.Equal(t, int64(31), channel)
}

func TestContext_Ask(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})
	c := f.router.newContext(context.Background(), f.invocation(testGuild, 0), &models.Guild{ID: testGuild}, ".")
	c.WizardTimeout = 5 * time.Second
	answered := make(chan *discordgo.Message, 1)

	go func() {
		m, err := c.Ask("Which port?")
		assert.NoError(t, err)
		answered <- m
	}()
	require.Eventually(t, func() bool { return f.router.Waiter().Pending() == 1 }, time.Second, time.Millisecond)

	other := &discordgo.Message{Author: &discordgo.User{ID: "6"}, ChannelID: "20", Content: "1"}
	elsewhere := &discordgo.Message{Author: &discordgo.User{ID: "5"}, ChannelID: "21", Content: "2"}
	answer := &discordgo.Message{Author: &discordgo.User{ID: "5"}, ChannelID: "20", Content: "25575"}
	assert.False(t, f.router.Waiter().Dispatch(other))
	assert.False(t, f.router.Waiter().Dispatch(elsewhere))
	assert.True(t, f.router.Waiter().Dispatch(answer))

	assert.Equal(t, "25575", (<-answered).Content)
	assert.Equal(t, []string{"Which port?"}, f.responder.Replies())
}

func TestContext_AskTimesOut(t *testing.T) {
	f := newRouterFixture(t, staticSettings{})
	c := f.router.newContext(context.Background(), f.invocation(testGuild, 0), &models.Guild{ID: testGuild}, ".")

	_, err := c.Ask("Which port?")

	assert.ErrorIs(t, err, ErrWaitTimeout)
}

func TestContext_Describe(t *testing.T) {
	c := NewContext(context.Background(), Invocation{})
	teleport := &Command{Name: "teleport", Description: "Go somewhere"}
	assert.Equal(t, "Go somewhere", c.Describe(teleport))

	c.L = testCatalog(t).Localizer("de-DE", "")
	assert.Equal(t, "Go somewhere", c.Describe(teleport), "untranslated commands keep their description")
	assert.Equal(t, "Oh Mann", c.Describe(&Command{Name: "creeper", Description: "Aw man"}))
}
