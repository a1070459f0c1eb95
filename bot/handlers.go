package bot

import (
	log "github.com/sirupsen/logrus"

	"obsidion/bot/common"
	"obsidion/bot/router"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	id, err := common.ParseID(r.User.ID)
	if err != nil {
		log.WithError(err).Error("Ready event carried an invalid bot user ID")
		return
	}
	b.router.SetBotID(id)

	log.WithFields(log.Fields{
		"user":   r.User.Username,
		"guilds": len(r.Guilds),
	}).Info("Bot is ready")
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	// wizard answers are consumed and never run as commands
	if b.router.Waiter().Dispatch(m.Message) {
		return
	}

	channelID, err := common.ParseID(m.ChannelID)
	if err != nil {
		return
	}
	messageID, _ := common.ParseID(m.ID)

	inv := router.Invocation{
		ChannelID: channelID,
		MessageID: messageID,
		Author:    m.Author,
		Responder: common.NewMessageResponder(s, m.ChannelID),
	}
	if m.GuildID != "" {
		inv.GuildID, _ = common.ParseID(m.GuildID)
		if perms, err := s.State.MessagePermissions(m.Message); err == nil {
			inv.Permissions = perms
		}
	}

	b.router.HandleMessage(b.ctx, inv, m.Content)
}

func (b *Bot) handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	responder := common.NewInteractionResponder(s, i.Interaction)
	inv := router.Invocation{
		Responder: responder,
	}
	inv.ChannelID, _ = common.ParseID(i.ChannelID)
	switch {
	case i.Member != nil:
		inv.GuildID, _ = common.ParseID(i.GuildID)
		inv.Author = i.Member.User
		inv.Permissions = i.Member.Permissions
	case i.User != nil:
		inv.Author = i.User
	default:
		return
	}

	if err := responder.Defer(); err != nil {
		log.WithError(err).WithField("interactionID", i.ID).Warn("Failed to defer interaction")
		return
	}

	path, values := slashInvocation(i.ApplicationCommandData())
	b.router.HandleSlash(b.ctx, inv, path, values)
}
