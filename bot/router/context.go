package router

import (
	"context"
	"strings"
	"time"

	"obsidion/bot/common"
	"obsidion/i18n"
	"obsidion/models"

	"github.com/bwmarrin/discordgo"
)

// Responder sends the output of a command
type Responder interface {
	// Reply answers the invocation
	Reply(content string) error
	// ReplyEmbed answers the invocation with an embed
	ReplyEmbed(embed *discordgo.MessageEmbed) error
	// Send posts to another channel
	Send(channelID int64, content string) error
	// SendEmbed posts an embed to another channel
	SendEmbed(channelID int64, embed *discordgo.MessageEmbed) error
	// Delete removes a message
	Delete(channelID, messageID int64) error
}

// MessageAwaiter waits for a message matching a predicate
type MessageAwaiter interface {
	Wait(ctx context.Context, match func(*discordgo.Message) bool, timeout time.Duration) (*discordgo.Message, error)
}

// Invocation is what the gateway tells us about a command call
type Invocation struct {
	GuildID     int64 // zero in direct messages
	ChannelID   int64
	MessageID   int64 // zero for slash commands
	Author      *discordgo.User
	Permissions int64 // the author's permissions in the channel
	Responder   Responder
}

// Context carries one command execution
type Context struct {
	Responder

	Command   *Command
	Args      Args
	GuildID   int64
	ChannelID int64
	MessageID int64
	Author    *discordgo.User
	Guild     *models.Guild // never nil; empty for DMs and unconfigured guilds
	Prefix    string
	L         *i18n.Localizer

	Awaiter       MessageAwaiter
	WizardTimeout time.Duration

	ctx         context.Context
	permissions int64
}

// NewContext creates the context of an invocation
func NewContext(ctx context.Context, inv Invocation) *Context {
	return &Context{
		Responder:   inv.Responder,
		GuildID:     inv.GuildID,
		ChannelID:   inv.ChannelID,
		MessageID:   inv.MessageID,
		Author:      inv.Author,
		Guild:       &models.Guild{ID: inv.GuildID},
		ctx:         ctx,
		permissions: inv.Permissions,
	}
}

// Context returns the request context
func (c *Context) Context() context.Context {
	return c.ctx
}

// AuthorID returns the invoking user's id
func (c *Context) AuthorID() int64 {
	id, _ := common.ParseID(c.Author.ID)
	return id
}

// AuthorMention returns a mention of the invoking user
func (c *Context) AuthorMention() string {
	return c.Author.Mention()
}

// InGuild reports whether the command was used in a server
func (c *Context) InGuild() bool {
	return c.GuildID != 0
}

// CanManageGuild reports whether the author holds Manage Server
func (c *Context) CanManageGuild() bool {
	return c.permissions&(discordgo.PermissionManageServer|discordgo.PermissionAdministrator) != 0
}

// Await waits for the author's next message in the command channel
func (c *Context) Await() (*discordgo.Message, error) {
	return c.AwaitMatch(nil)
}

// AwaitMatch waits for the author's next message in the command channel
// that also satisfies match. Other messages are left to the router.
func (c *Context) AwaitMatch(match func(*discordgo.Message) bool) (*discordgo.Message, error) {
	authorID := c.Author.ID
	channelID := common.FormatID(c.ChannelID)
	return c.Awaiter.Wait(c.ctx, func(m *discordgo.Message) bool {
		if m.Author == nil || m.Author.ID != authorID || m.ChannelID != channelID {
			return false
		}
		return match == nil || match(m)
	}, c.WizardTimeout)
}

// Ask sends prompt and waits for the author's answer
func (c *Context) Ask(prompt string) (*discordgo.Message, error) {
	if err := c.Reply(prompt); err != nil {
		return nil, err
	}
	return c.Await()
}

// Describe returns the description of cmd in the guild's language. Commands
// without a translation keep their own Description.
func (c *Context) Describe(cmd *Command) string {
	if c.L != nil {
		key := "command." + strings.Join(cmd.Path(), ".")
		if desc, ok := c.L.Lookup(key); ok {
			return desc
		}
	}
	return cmd.Description
}
