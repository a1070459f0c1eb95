package bot

import (
	"context"
	"fmt"
	"time"

	"obsidion/bot/common"
	"obsidion/i18n"
	"obsidion/models"
	"obsidion/service"

	"github.com/bwmarrin/discordgo"
)

// maxEmbedDescription is Discord's limit for embed descriptions
const maxEmbedDescription = 4096

// EmbedSender posts an embed to a channel
type EmbedSender interface {
	SendEmbed(channelID int64, embed *discordgo.MessageEmbed) error
}

// NewsPoster renders news items in each subscriber's language
type NewsPoster struct {
	sender        EmbedSender
	catalog       *i18n.Catalog
	defaultLocale string
}

// NewNewsPoster creates a poster that sends through sender
func NewNewsPoster(sender EmbedSender, catalog *i18n.Catalog, defaultLocale string) *NewsPoster {
	return &NewsPoster{
		sender:        sender,
		catalog:       catalog,
		defaultLocale: defaultLocale,
	}
}

// PostNews sends item to the subscribed channel
func (p *NewsPoster) PostNews(ctx context.Context, sub service.Subscription, item *models.NewsItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	guild := &models.Guild{ID: sub.GuildID, Locale: sub.Locale, Regional: sub.Regional}
	l := p.catalog.Localizer(guild.LocaleOr(p.defaultLocale), guild.RegionalOr(""))

	if err := p.sender.SendEmbed(sub.ChannelID, NewsEmbed(l, item)); err != nil {
		return fmt.Errorf("failed to post news to channel %d: %w", sub.ChannelID, err)
	}
	return nil
}

// NewsEmbed renders one news item
func NewsEmbed(l *i18n.Localizer, item *models.NewsItem) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Author:      &discordgo.MessageEmbedAuthor{Name: l.T("autopost.category." + string(item.Category))},
		Title:       item.Title,
		URL:         item.URL,
		Description: common.TruncateTo(item.Summary, maxEmbedDescription),
		Color:       common.ColorGrass,
	}
	if item.URL != "" {
		embed.Fields = []*discordgo.MessageEmbedField{{
			Name:  l.T("news.read_more"),
			Value: item.URL,
		}}
	}
	if item.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: item.ImageURL}
	}
	if !item.PublishedAt.IsZero() {
		embed.Timestamp = item.PublishedAt.UTC().Format(time.RFC3339)
	}
	return embed
}
