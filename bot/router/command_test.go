package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(c *Context) error { return nil }

func TestRegistry_LookupByAlias(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Command{Name: "kill", Aliases: []string{"slay"}, Handler: noop}))

	assert.Equal(t, "kill", reg.Lookup("slay").Name)
	assert.Equal(t, "kill", reg.Lookup("KILL").Name)
	assert.Nil(t, reg.Lookup("murder"))
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Command{Name: "idea", Handler: noop}))

	err := reg.Register(&Command{Name: "buildidea", Aliases: []string{"idea"}, Handler: noop})
	assert.ErrorContains(t, err, `"idea"`)
	assert.Nil(t, reg.Lookup("buildidea"), "a rejected command must not be half registered")
}

func TestRegistry_ValidatesCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
	}{
		{"no handler", &Command{Name: "x"}},
		{"upper case", &Command{Name: "X", Handler: noop}},
		{"rest not last", &Command{Name: "x", Handler: noop, Options: []Option{
			{Name: "a", Rest: true}, {Name: "b"},
		}}},
		{"rest not string", &Command{Name: "x", Handler: noop, Options: []Option{
			{Name: "a", Type: OptionInteger, Rest: true},
		}}},
		{"required after optional", &Command{Name: "x", Handler: noop, Options: []Option{
			{Name: "a"}, {Name: "b", Required: true},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, NewRegistry().Register(tt.cmd))
		})
	}
}

func TestCommand_PathsAndUsage(t *testing.T) {
	setup := &Command{Name: "setup", Handler: noop}
	edit := &Command{Name: "edit", Handler: noop, Options: []Option{
		{Name: "category", Required: true, Choices: []string{"release", "snapshot"}},
		{Name: "channel", Type: OptionChannel},
	}}
	group := &Command{Name: "autopost", Subcommands: []*Command{setup, edit}}
	pvp := &Command{Name: "pvp", Handler: noop, Options: []Option{
		{Name: "member1", Type: OptionUser, Required: true},
		{Name: "member2", Type: OptionUser},
	}}
	enchant := &Command{Name: "enchant", Handler: noop, Options: []Option{
		{Name: "text", Required: true, Rest: true},
	}}

	reg := NewRegistry()
	reg.MustRegister(group, pvp, enchant)

	assert.Equal(t, "autopost edit", edit.FullName())
	assert.Same(t, edit, reg.Find("autopost edit"))
	assert.Nil(t, reg.Find("autopost delete"))
	assert.Equal(t, ".autopost <setup|edit>", group.Usage("."))
	assert.Equal(t, ".autopost edit <release|snapshot> [channel]", edit.Usage("."))
	assert.Equal(t, "!pvp <member1> [member2]", pvp.Usage("!"))
	assert.Equal(t, ".enchant <text...>", enchant.Usage("."))
}

func TestRegistry_ByCog(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(
		&Command{Name: "villager", Cog: CogFun, Handler: noop},
		&Command{Name: "prefix", Cog: CogConfig, Handler: noop},
		&Command{Name: "creeper", Cog: CogFun, Handler: noop},
	)

	cogs := reg.ByCog()
	require.Len(t, cogs[CogFun], 2)
	assert.Equal(t, "creeper", cogs[CogFun][0].Name)
	assert.Equal(t, "prefix", cogs[CogConfig][0].Name)
	assert.Equal(t, "villager", reg.Commands()[0].Name)
}

func TestCommand_InheritsGroupRequirements(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Command{
		Name:        "rconconfig",
		ManageGuild: true,
		Subcommands: []*Command{{Name: "reset", Handler: noop}},
	}, &Command{
		Name:        "account",
		Subcommands: []*Command{{Name: "info", Handler: noop}},
	}))

	assert.True(t, reg.Find("rconconfig reset").RequiresManageGuild())
	assert.False(t, reg.Find("rconconfig reset").RequiresGuild())
	assert.False(t, reg.Find("account info").RequiresManageGuild())
}
