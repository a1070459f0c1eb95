package common

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// allowedMentions lets replies ping users but never roles or @everyone,
// since many replies echo user text
var allowedMentions = &discordgo.MessageAllowedMentions{
	Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
}

// ChannelSender posts to arbitrary channels
type ChannelSender struct {
	Session *discordgo.Session
}

// Send posts content to a channel
func (c ChannelSender) Send(channelID int64, content string) error {
	_, err := c.Session.ChannelMessageSendComplex(FormatID(channelID), &discordgo.MessageSend{
		Content:         Truncate(content),
		AllowedMentions: allowedMentions,
	})
	return err
}

// SendEmbed posts an embed to a channel
func (c ChannelSender) SendEmbed(channelID int64, embed *discordgo.MessageEmbed) error {
	_, err := c.Session.ChannelMessageSendEmbed(FormatID(channelID), embed)
	return err
}

// Delete removes a message
func (c ChannelSender) Delete(channelID, messageID int64) error {
	return c.Session.ChannelMessageDelete(FormatID(channelID), FormatID(messageID))
}

// MessageResponder answers text commands in the channel they were sent in
type MessageResponder struct {
	ChannelSender
	ChannelID string
}

// NewMessageResponder creates a responder for a message command
func NewMessageResponder(s *discordgo.Session, channelID string) *MessageResponder {
	return &MessageResponder{ChannelSender: ChannelSender{Session: s}, ChannelID: channelID}
}

// Reply sends content to the command channel
func (r *MessageResponder) Reply(content string) error {
	_, err := r.Session.ChannelMessageSendComplex(r.ChannelID, &discordgo.MessageSend{
		Content:         Truncate(content),
		AllowedMentions: allowedMentions,
	})
	return err
}

// ReplyEmbed sends an embed to the command channel
func (r *MessageResponder) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := r.Session.ChannelMessageSendEmbed(r.ChannelID, embed)
	return err
}

// InteractionSession is the part of *discordgo.Session that answers
// interactions
type InteractionSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// InteractionResponder answers slash commands. After Defer the first reply
// edits the deferred response; without it the first reply is the
// interaction response. Later replies are follow-up messages.
type InteractionResponder struct {
	ChannelSender
	Interaction *discordgo.Interaction

	api       InteractionSession
	mu        sync.Mutex
	deferred  bool
	responded bool
}

// NewInteractionResponder creates a responder for a slash command
func NewInteractionResponder(s *discordgo.Session, i *discordgo.Interaction) *InteractionResponder {
	return &InteractionResponder{ChannelSender: ChannelSender{Session: s}, Interaction: i, api: s}
}

// Defer acknowledges the interaction so the handler may take longer than
// Discord's initial response window
func (r *InteractionResponder) Defer() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deferred || r.responded {
		return nil
	}
	err := r.api.InteractionRespond(r.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err == nil {
		r.deferred = true
	}
	return err
}

// Reply responds with content
func (r *InteractionResponder) Reply(content string) error {
	return r.respond(Truncate(content), nil)
}

// ReplyEmbed responds with an embed
func (r *InteractionResponder) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return r.respond("", []*discordgo.MessageEmbed{embed})
}

func (r *InteractionResponder) respond(content string, embeds []*discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.responded {
		_, err := r.api.FollowupMessageCreate(r.Interaction, true, &discordgo.WebhookParams{
			Content:         content,
			Embeds:          embeds,
			AllowedMentions: allowedMentions,
		})
		return err
	}

	var err error
	if r.deferred {
		edit := &discordgo.WebhookEdit{AllowedMentions: allowedMentions}
		if content != "" {
			edit.Content = &content
		}
		if embeds != nil {
			edit.Embeds = &embeds
		}
		_, err = r.api.InteractionResponseEdit(r.Interaction, edit)
	} else {
		err = r.api.InteractionRespond(r.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:         content,
				Embeds:          embeds,
				AllowedMentions: allowedMentions,
			},
		})
	}
	if err == nil {
		r.responded = true
	}
	return err
}
