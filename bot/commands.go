package bot

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"obsidion/bot/common"
	"obsidion/bot/router"

	"github.com/bwmarrin/discordgo"
)

// maxDescriptionLength is Discord's limit for command and option descriptions
const maxDescriptionLength = 100

var manageGuildPermission int64 = discordgo.PermissionManageServer

var optionTypes = map[router.OptionType]discordgo.ApplicationCommandOptionType{
	router.OptionString:  discordgo.ApplicationCommandOptionString,
	router.OptionInteger: discordgo.ApplicationCommandOptionInteger,
	router.OptionUser:    discordgo.ApplicationCommandOptionUser,
	router.OptionChannel: discordgo.ApplicationCommandOptionChannel,
	router.OptionRole:    discordgo.ApplicationCommandOptionRole,
}

// registerCommands replaces the global slash commands with the registry
func (b *Bot) registerCommands() error {
	commands := ApplicationCommands(b.router.Registry())
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, "", commands); err != nil {
		return fmt.Errorf("cannot overwrite slash commands: %w", err)
	}
	log.WithField("count", len(commands)).Info("Registered slash commands")
	return nil
}

// ApplicationCommands converts the registry into slash command definitions
func ApplicationCommands(registry *router.Registry) []*discordgo.ApplicationCommand {
	cmds := registry.Commands()
	out := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, cmd := range cmds {
		app := &discordgo.ApplicationCommand{
			Name:        cmd.Name,
			Description: description(cmd.Description, cmd.Name),
			Options:     commandOptions(cmd),
		}
		if cmd.ManageGuild {
			app.DefaultMemberPermissions = &manageGuildPermission
		}
		if cmd.GuildOnly || cmd.ManageGuild {
			dm := false
			app.DMPermission = &dm
		}
		out = append(out, app)
	}
	return out
}

func commandOptions(cmd *router.Command) []*discordgo.ApplicationCommandOption {
	if cmd.IsGroup() {
		subs := make([]*discordgo.ApplicationCommandOption, 0, len(cmd.Subcommands))
		for _, sub := range cmd.Subcommands {
			optType := discordgo.ApplicationCommandOptionSubCommand
			if sub.IsGroup() {
				optType = discordgo.ApplicationCommandOptionSubCommandGroup
			}
			subs = append(subs, &discordgo.ApplicationCommandOption{
				Type:        optType,
				Name:        sub.Name,
				Description: description(sub.Description, sub.Name),
				Options:     commandOptions(sub),
			})
		}
		return subs
	}

	opts := make([]*discordgo.ApplicationCommandOption, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		o := &discordgo.ApplicationCommandOption{
			Type:        optionTypes[opt.Type],
			Name:        opt.Name,
			Description: description(opt.Description, opt.Name),
			Required:    opt.Required,
		}
		for _, choice := range opt.Choices {
			o.Choices = append(o.Choices, &discordgo.ApplicationCommandOptionChoice{Name: choice, Value: choice})
		}
		opts = append(opts, o)
	}
	return opts
}

func description(desc, fallback string) string {
	if desc == "" {
		desc = fallback
	}
	return common.TruncateTo(desc, maxDescriptionLength)
}

// slashInvocation flattens interaction data into a command path and the
// raw option values text commands would have produced
func slashInvocation(data discordgo.ApplicationCommandInteractionData) ([]string, map[string]string) {
	path := []string{data.Name}
	opts := data.Options
	for len(opts) == 1 && (opts[0].Type == discordgo.ApplicationCommandOptionSubCommand ||
		opts[0].Type == discordgo.ApplicationCommandOptionSubCommandGroup) {
		path = append(path, opts[0].Name)
		opts = opts[0].Options
	}

	values := make(map[string]string, len(opts))
	for _, opt := range opts {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionInteger:
			values[opt.Name] = strconv.FormatInt(opt.IntValue(), 10)
		case discordgo.ApplicationCommandOptionUser,
			discordgo.ApplicationCommandOptionChannel,
			discordgo.ApplicationCommandOptionRole:
			if id, ok := opt.Value.(string); ok {
				values[opt.Name] = id
			}
		default:
			values[opt.Name] = fmt.Sprint(opt.Value)
		}
	}
	return path, values
}
