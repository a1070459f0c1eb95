package autopost

import (
	"strings"

	"obsidion/bot/common"
	"obsidion/bot/router"
	"obsidion/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleSetup(c *router.Context) error {
	channels := make(models.NewsChannels, len(models.NewsCategories))

	for _, category := range models.NewsCategories {
		name := categoryName(c, category)

		if err := c.Reply(c.L.T("autopost.ask_category", name)); err != nil {
			return err
		}
		answer, err := c.AwaitMatch(isYesNo)
		if err != nil {
			return err
		}
		if !isYes(answer.Content) {
			if err := c.Reply(c.L.T("wizard.ok")); err != nil {
				return err
			}
			continue
		}

		if err := c.Reply(c.L.T("autopost.ask_channel", name)); err != nil {
			return err
		}
		answer, err = c.AwaitMatch(hasChannelMention)
		if err != nil {
			return err
		}
		channels[category] = common.ParseChannelMentions(answer.Content)[0]
	}

	if err := f.autopostService.SaveChannels(c.Context(), c.GuildID, channels); err != nil {
		return common.NewSystemError(err, "failed to save autopost channels")
	}

	log.WithFields(log.Fields{
		"guildID":  c.GuildID,
		"channels": len(channels),
	}).Info("Autopost setup completed")

	if err := c.Reply(c.L.T("autopost.completed")); err != nil {
		return err
	}
	return c.ReplyEmbed(settingsEmbed(c, channels))
}

func (f *Feature) handleEdit(c *router.Context) error {
	category, err := models.ParseNewsCategory(c.Args.String("category"))
	if err != nil {
		return common.NewSystemError(err, "category passed choice validation")
	}
	channelID, _ := c.Args.ID("channel")

	if err := f.autopostService.SetChannel(c.Context(), c.GuildID, category, channelID); err != nil {
		return common.NewSystemError(err, "failed to set autopost channel")
	}

	name := categoryName(c, category)
	if channelID == 0 {
		return c.Reply(c.L.T("autopost.cleared", name))
	}
	return c.Reply(c.L.T("autopost.updated", name, common.ChannelMention(channelID)))
}

func (f *Feature) handleSettings(c *router.Context) error {
	channels, err := f.autopostService.GetChannels(c.Context(), c.GuildID)
	if err != nil {
		return common.NewSystemError(err, "failed to get autopost channels")
	}
	return c.ReplyEmbed(settingsEmbed(c, channels))
}

func (f *Feature) handleTest(c *router.Context) error {
	channels, err := f.autopostService.GetChannels(c.Context(), c.GuildID)
	if err != nil {
		return common.NewSystemError(err, "failed to get autopost channels")
	}

	configured := channels.Configured()
	if len(configured) == 0 {
		return c.Reply(c.L.T("autopost.test_none"))
	}

	sent := 0
	for _, channelID := range configured {
		if err := c.Send(channelID, c.L.T("autopost.test_message")); err != nil {
			log.WithFields(log.Fields{
				"guildID":   c.GuildID,
				"channelID": channelID,
				"error":     err,
			}).Warn("Failed to send autopost test message")
			continue
		}
		sent++
	}
	return c.Reply(c.L.T("autopost.test_sent", sent))
}

func settingsEmbed(c *router.Context, channels models.NewsChannels) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(models.NewsCategories))
	for _, category := range models.NewsCategories {
		value := c.L.T("autopost.none")
		if id, ok := channels.Channel(category); ok {
			value = common.ChannelMention(id)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   categoryName(c, category),
			Value:  value,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  c.L.T("autopost.settings_title"),
		Color:  common.ColorGrass,
		Fields: fields,
	}
}

func categoryName(c *router.Context, category models.NewsCategory) string {
	return c.L.T("autopost.category." + string(category))
}

func isYesNo(m *discordgo.Message) bool {
	switch strings.ToLower(strings.TrimSpace(m.Content)) {
	case "y", "yes", "n", "no":
		return true
	}
	return false
}

func isYes(content string) bool {
	answer := strings.ToLower(strings.TrimSpace(content))
	return answer == "y" || answer == "yes"
}

func hasChannelMention(m *discordgo.Message) bool {
	return len(common.ParseChannelMentions(m.Content)) > 0
}
