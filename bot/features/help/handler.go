package help

import (
	"strings"

	"obsidion/bot/common"
	"obsidion/bot/router"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) handleHelp(c *router.Context) error {
	if !c.Args.Has("command") {
		return c.ReplyEmbed(f.listing(c))
	}
	name := strings.Join(router.Tokenize(c.Args.String("command")), " ")
	if strings.TrimSpace(name) == "" {
		return c.ReplyEmbed(f.listing(c))
	}

	cmd := f.registry.Find(strings.TrimPrefix(name, c.Prefix))
	if cmd == nil {
		return common.NewUserError(c.L.T("help.unknown", strings.ReplaceAll(name, "`", "")), "unknown help topic")
	}
	return c.ReplyEmbed(describe(c, cmd))
}

func (f *Feature) listing(c *router.Context) *discordgo.MessageEmbed {
	cogs := f.registry.ByCog()

	var fields []*discordgo.MessageEmbedField
	for _, cog := range cogOrder {
		cmds := cogs[cog]
		if len(cmds) == 0 {
			continue
		}
		names := make([]string, len(cmds))
		for i, cmd := range cmds {
			names[i] = "`" + cmd.Name + "`"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  c.L.T("help.cog." + cog),
			Value: strings.Join(names, " "),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  c.L.T("help.title"),
		Color:  common.ColorPrimary,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: c.L.T("help.footer", c.Prefix)},
	}
}

func describe(c *router.Context, cmd *router.Command) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{{
		Name:  c.L.T("help.usage"),
		Value: "`" + cmd.Usage(c.Prefix) + "`",
	}}

	if len(cmd.Aliases) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  c.L.T("help.aliases"),
			Value: strings.Join(cmd.Aliases, ", "),
		})
	}

	if cmd.IsGroup() {
		lines := make([]string, len(cmd.Subcommands))
		for i, sub := range cmd.Subcommands {
			lines[i] = "`" + sub.Usage(c.Prefix) + "` " + c.Describe(sub)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  c.L.T("help.subcommands"),
			Value: strings.Join(lines, "\n"),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       cmd.FullName(),
		Description: c.Describe(cmd),
		Color:       common.ColorPrimary,
		Fields:      fields,
	}
}
