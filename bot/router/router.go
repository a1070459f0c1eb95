package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"obsidion/bot/common"
	"obsidion/i18n"
	"obsidion/models"

	log "github.com/sirupsen/logrus"
)

// cooldownBurst is how many commands a user may fire back to back
const cooldownBurst = 3

// SettingsProvider returns a guild's preferences. Guilds without stored
// preferences may yield nil.
type SettingsProvider interface {
	Settings(ctx context.Context, guildID int64) (*models.Guild, error)
}

// Config holds the router defaults
type Config struct {
	DefaultPrefix string
	DefaultLocale string
	WizardTimeout time.Duration
	CommandRate   float64
}

// Router resolves text and slash invocations to commands and runs them
type Router struct {
	config    Config
	registry  *Registry
	catalog   *i18n.Catalog
	settings  SettingsProvider
	cooldowns *Cooldowns
	waiter    *Waiter
	botID     atomic.Int64
}

// New creates a router over registry
func New(config Config, registry *Registry, catalog *i18n.Catalog, settings SettingsProvider) *Router {
	return &Router{
		config:    config,
		registry:  registry,
		catalog:   catalog,
		settings:  settings,
		cooldowns: NewCooldowns(config.CommandRate, cooldownBurst),
		waiter:    NewWaiter(),
	}
}

// Registry returns the commands the router dispatches to
func (r *Router) Registry() *Registry {
	return r.registry
}

// Waiter returns the waiter that answers Context.Await
func (r *Router) Waiter() *Waiter {
	return r.waiter
}

// SetBotID enables the mention prefix for the bot user id
func (r *Router) SetBotID(id int64) {
	r.botID.Store(id)
}

// HandleMessage runs content as a text command. It reports whether content
// addressed a known command.
func (r *Router) HandleMessage(ctx context.Context, inv Invocation, content string) bool {
	guild := r.guildSettings(ctx, inv.GuildID)
	prefix := guild.PrefixOr(r.config.DefaultPrefix)

	rest, ok := r.stripPrefix(content, prefix)
	if !ok {
		return false
	}
	tokens := tokenize(rest)
	if len(tokens) == 0 {
		return false
	}

	cmd := r.registry.Lookup(tokens[0].text)
	if cmd == nil {
		return false
	}
	next := 1
	for cmd.IsGroup() && next < len(tokens) {
		sub := cmd.Subcommand(tokens[next].text)
		if sub == nil {
			break
		}
		cmd = sub
		next++
	}

	c := r.newContext(ctx, inv, guild, prefix)
	r.execute(c, cmd, func() map[string]string {
		return textValues(cmd, rest, tokens[next:])
	})
	return true
}

// HandleSlash runs the command at path with option values already
// rendered as text (ids for users, channels and roles)
func (r *Router) HandleSlash(ctx context.Context, inv Invocation, path []string, values map[string]string) {
	cmd := r.registry.Find(strings.Join(path, " "))
	if cmd == nil {
		log.WithField("command", strings.Join(path, " ")).Warn("Received unknown slash command")
		return
	}

	guild := r.guildSettings(ctx, inv.GuildID)
	c := r.newContext(ctx, inv, guild, guild.PrefixOr(r.config.DefaultPrefix))
	r.execute(c, cmd, func() map[string]string { return values })
}

func (r *Router) newContext(ctx context.Context, inv Invocation, guild *models.Guild, prefix string) *Context {
	c := NewContext(ctx, inv)
	c.Guild = guild
	c.Prefix = prefix
	c.L = r.catalog.Localizer(guild.LocaleOr(r.config.DefaultLocale), guild.RegionalOr(""))
	c.Awaiter = r.waiter
	c.WizardTimeout = r.config.WizardTimeout
	return c
}

func (r *Router) execute(c *Context, cmd *Command, values func() map[string]string) {
	c.Command = cmd
	fields := log.Fields{
		"command": cmd.FullName(),
		"guildID": c.GuildID,
		"userID":  c.Author.ID,
	}

	if ok, retry := r.cooldowns.Allow(c.AuthorID()); !ok {
		log.WithFields(fields).Debug("Command on cooldown")
		r.reply(c, c.L.T("error.cooldown", common.FormatDuration(retry)))
		return
	}

	if cmd.IsGroup() {
		r.reply(c, GroupHelp(c, cmd))
		return
	}
	if (cmd.RequiresGuild() || cmd.RequiresManageGuild()) && !c.InGuild() {
		r.reply(c, c.L.T("error.guild_only"))
		return
	}
	if cmd.RequiresManageGuild() && !c.CanManageGuild() {
		log.WithFields(fields).Info("Command denied, missing Manage Server")
		r.reply(c, c.L.T("error.missing_permission"))
		return
	}

	args, err := bind(cmd, values())
	if err != nil {
		var argErr *ArgError
		if errors.As(err, &argErr) {
			r.reply(c, r.argMessage(c, argErr))
			return
		}
		r.handleError(c, fields, err)
		return
	}
	c.Args = args

	start := time.Now()
	if err := cmd.Handler(c); err != nil {
		r.handleError(c, fields, err)
		return
	}
	log.WithFields(fields).WithField("duration", time.Since(start)).Debug("Command executed")
}

func (r *Router) handleError(c *Context, fields log.Fields, err error) {
	switch {
	case errors.Is(err, ErrWaitTimeout):
		r.reply(c, c.L.T("wizard.timeout"))
		return
	case errors.Is(err, context.Canceled):
		log.WithFields(fields).Debug("Command cancelled")
		return
	}

	if botErr, ok := common.AsBotError(err); ok && !botErr.System {
		log.WithFields(fields).WithField("reason", botErr.LogMessage).Info("Command rejected")
		r.reply(c, botErr.UserMessage)
		return
	}

	log.WithFields(fields).WithError(err).Error("Command failed")
	r.reply(c, c.L.T("error.generic"))
}

func (r *Router) argMessage(c *Context, e *ArgError) string {
	if e.Kind == ArgMissing {
		return c.L.T("error.missing_argument", e.Option.Name, c.Command.Usage(c.Prefix))
	}
	switch e.Option.Type {
	case OptionInteger:
		return c.L.T("error.invalid_number", e.Value)
	case OptionUser:
		return c.L.T("error.invalid_member")
	case OptionChannel:
		return c.L.T("error.invalid_channel")
	case OptionRole:
		return c.L.T("error.invalid_role")
	default:
		return c.L.T("error.invalid_choice", e.Value, strings.Join(e.Option.Choices, ", "))
	}
}

func (r *Router) reply(c *Context, content string) {
	if err := c.Reply(content); err != nil {
		log.WithFields(log.Fields{
			"command": c.Command.FullName(),
			"error":   err,
		}).Warn("Failed to send reply")
	}
}

func (r *Router) guildSettings(ctx context.Context, guildID int64) *models.Guild {
	empty := &models.Guild{ID: guildID}
	if guildID == 0 {
		return empty
	}
	guild, err := r.settings.Settings(ctx, guildID)
	if err != nil {
		log.WithFields(log.Fields{
			"guildID": guildID,
			"error":   err,
		}).Warn("Failed to load guild settings, using defaults")
		return empty
	}
	if guild == nil {
		return empty
	}
	return guild
}

// stripPrefix removes the guild prefix or a mention of the bot
func (r *Router) stripPrefix(content, prefix string) (string, bool) {
	if id := r.botID.Load(); id != 0 {
		for _, mention := range []string{fmt.Sprintf("<@%d>", id), fmt.Sprintf("<@!%d>", id)} {
			if strings.HasPrefix(content, mention) {
				return strings.TrimSpace(content[len(mention):]), true
			}
		}
	}
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", false
	}
	rest := content[len(prefix):]
	if rest == "" || strings.TrimLeft(rest, " \t\n") != rest {
		return "", false
	}
	return rest, true
}

// GroupHelp lists the subcommands of a group
func GroupHelp(c *Context, cmd *Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.Describe(cmd))
	for _, sub := range cmd.Subcommands {
		fmt.Fprintf(&b, "`%s` %s\n", sub.Usage(c.Prefix), c.Describe(sub))
	}
	return strings.TrimSpace(b.String())
}
