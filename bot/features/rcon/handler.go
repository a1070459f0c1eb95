package rcon

import (
	"errors"
	"strconv"
	"strings"

	"obsidion/bot/common"
	"obsidion/bot/router"
	"obsidion/models"
	"obsidion/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const noRolesAnswer = "none"

func (f *Feature) handleSetup(c *router.Context) error {
	profile := &models.RconProfile{GuildID: c.GuildID}

	answer, err := c.Ask(c.L.T("rcon.ask_address"))
	if err != nil {
		return err
	}
	profile.Server = strings.TrimSpace(answer.Content)
	if !service.ValidHost(profile.Server) {
		return common.NewUserError(c.L.T("rcon.invalid_address"), "invalid rcon address")
	}

	answer, err = c.Ask(c.L.T("rcon.ask_port"))
	if err != nil {
		return err
	}
	if profile.Port, err = models.ParsePort(answer.Content); err != nil {
		return common.NewUserError(c.L.T("rcon.invalid_port"), err.Error())
	}

	answer, err = c.Ask(c.L.T("rcon.ask_password"))
	if err != nil {
		return err
	}
	profile.Password = answer.Content
	f.deleteAnswer(c, answer)
	if !service.ValidPassword(profile.Password) {
		return common.NewUserError(c.L.T("rcon.invalid_password"), "invalid rcon password")
	}

	if err := c.Reply(c.L.T("rcon.ask_roles")); err != nil {
		return err
	}
	answer, err = c.AwaitMatch(isRolesAnswer)
	if err != nil {
		return err
	}
	profile.Roles = common.ParseRoleMentions(answer.Content)

	if err := c.Reply(c.L.T("rcon.ask_channel")); err != nil {
		return err
	}
	answer, err = c.AwaitMatch(func(m *discordgo.Message) bool {
		return len(common.ParseChannelMentions(m.Content)) > 0
	})
	if err != nil {
		return err
	}
	profile.Channel = common.ParseChannelMentions(answer.Content)[0]

	err = f.rconService.SaveProfile(c.Context(), profile)
	switch {
	case errors.Is(err, service.ErrInvalidAddress):
		return common.NewUserError(c.L.T("rcon.invalid_address"), err.Error())
	case errors.Is(err, service.ErrInvalidPort):
		return common.NewUserError(c.L.T("rcon.invalid_port"), err.Error())
	case errors.Is(err, service.ErrInvalidPassword):
		return common.NewUserError(c.L.T("rcon.invalid_password"), err.Error())
	case err != nil:
		return common.NewSystemError(err, "failed to save rcon profile")
	}

	log.WithFields(log.Fields{
		"guildID": c.GuildID,
		"address": profile.Address(),
	}).Info("RCON setup completed")

	if err := c.Reply(c.L.T("rcon.completed")); err != nil {
		return err
	}
	return c.ReplyEmbed(profileEmbed(c, profile))
}

func (f *Feature) handleSettings(c *router.Context) error {
	profile, err := f.rconService.GetProfile(c.Context(), c.GuildID)
	if errors.Is(err, service.ErrRconNotConfigured) {
		return common.NewUserError(c.L.T("rcon.not_configured"), err.Error())
	}
	if err != nil {
		return common.NewSystemError(err, "failed to get rcon profile")
	}
	return c.ReplyEmbed(profileEmbed(c, profile))
}

func (f *Feature) handleReset(c *router.Context) error {
	err := f.rconService.ResetProfile(c.Context(), c.GuildID)
	if errors.Is(err, service.ErrRconNotConfigured) {
		return common.NewUserError(c.L.T("rcon.not_configured"), err.Error())
	}
	if err != nil {
		return common.NewSystemError(err, "failed to reset rcon profile")
	}
	return c.Reply(c.L.T("rcon.reset"))
}

// deleteAnswer removes the message holding the password. Missing
// permissions only cost a warning.
func (f *Feature) deleteAnswer(c *router.Context, m *discordgo.Message) {
	messageID, err := common.ParseID(m.ID)
	if err == nil {
		err = c.Delete(c.ChannelID, messageID)
	}
	if err != nil {
		log.WithFields(log.Fields{
			"guildID":   c.GuildID,
			"channelID": c.ChannelID,
			"error":     err,
		}).Warn("Failed to delete RCON password message")
	}
}

func profileEmbed(c *router.Context, p *models.RconProfile) *discordgo.MessageEmbed {
	roles := c.L.T("rcon.no_roles")
	if len(p.Roles) > 0 {
		mentions := make([]string, len(p.Roles))
		for i, id := range p.Roles {
			mentions[i] = common.RoleMention(id)
		}
		roles = strings.Join(mentions, " ")
	}

	return &discordgo.MessageEmbed{
		Title: c.L.T("rcon.settings_title"),
		Color: common.ColorGrass,
		Fields: []*discordgo.MessageEmbedField{
			{Name: c.L.T("rcon.field.address"), Value: p.Server, Inline: true},
			{Name: c.L.T("rcon.field.port"), Value: strconv.Itoa(p.Port), Inline: true},
			{Name: c.L.T("rcon.field.password"), Value: p.MaskedPassword(), Inline: true},
			{Name: c.L.T("rcon.field.roles"), Value: roles},
			{Name: c.L.T("rcon.field.channel"), Value: common.ChannelMention(p.Channel)},
		},
	}
}

func isRolesAnswer(m *discordgo.Message) bool {
	if strings.EqualFold(strings.TrimSpace(m.Content), noRolesAnswer) {
		return true
	}
	return len(common.ParseRoleMentions(m.Content)) > 0
}
