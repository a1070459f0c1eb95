// Package featuretest provides fakes for testing command handlers without
// a Discord connection.
package featuretest

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"obsidion/bot/router"
	"obsidion/i18n"
	"obsidion/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// Test IDs
const (
	GuildID   int64 = 100000000000000001
	UserID    int64 = 200000000000000002
	ChannelID int64 = 300000000000000003
	OwnerID   int64 = 500000000000000005
)

// Responder records everything a handler sends
type Responder struct {
	mu         sync.Mutex
	Replies    []string
	Embeds     []*discordgo.MessageEmbed
	Sent       map[int64][]string
	SentEmbeds map[int64][]*discordgo.MessageEmbed
	Deleted    []int64
	SendErr    map[int64]error // per channel failures for Send and SendEmbed
}

func (r *Responder) Reply(content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Replies = append(r.Replies, content)
	return nil
}

func (r *Responder) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Embeds = append(r.Embeds, embed)
	return nil
}

func (r *Responder) Send(channelID int64, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.SendErr[channelID]; err != nil {
		return err
	}
	if r.Sent == nil {
		r.Sent = make(map[int64][]string)
	}
	r.Sent[channelID] = append(r.Sent[channelID], content)
	return nil
}

func (r *Responder) SendEmbed(channelID int64, embed *discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.SendErr[channelID]; err != nil {
		return err
	}
	if r.SentEmbeds == nil {
		r.SentEmbeds = make(map[int64][]*discordgo.MessageEmbed)
	}
	r.SentEmbeds[channelID] = append(r.SentEmbeds[channelID], embed)
	return nil
}

func (r *Responder) Delete(channelID, messageID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deleted = append(r.Deleted, messageID)
	return nil
}

// LastReply returns the most recent reply or ""
func (r *Responder) LastReply() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Replies) == 0 {
		return ""
	}
	return r.Replies[len(r.Replies)-1]
}

// Awaiter answers waits from a script. Once the script runs out every
// wait times out.
type Awaiter struct {
	Answers []string
	next    int
}

// Wait returns the next scripted answer as a message from the test user
func (a *Awaiter) Wait(ctx context.Context, match func(*discordgo.Message) bool, timeout time.Duration) (*discordgo.Message, error) {
	if a.next >= len(a.Answers) {
		return nil, router.ErrWaitTimeout
	}
	m := &discordgo.Message{
		ID:        strconv.Itoa(9000 + a.next),
		ChannelID: strconv.FormatInt(ChannelID, 10),
		Author:    &discordgo.User{ID: strconv.FormatInt(UserID, 10)},
		Content:   a.Answers[a.next],
	}
	a.next++
	if !match(m) {
		return nil, router.ErrWaitTimeout
	}
	return m, nil
}

// Asked returns how many answers were consumed
func (a *Awaiter) Asked() int {
	return a.next
}

// Catalog loads the embedded message catalog
func Catalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.LoadCatalog(nil)
	require.NoError(t, err)
	return catalog
}

// Fixture is a command context wired to fakes
type Fixture struct {
	Ctx       *router.Context
	Responder *Responder
	Awaiter   *Awaiter
}

// NewFixture creates an en-US guild context for cmd with the given
// argument values and scripted wizard answers
func NewFixture(t *testing.T, cmd *router.Command, args map[string]string, answers ...string) *Fixture {
	t.Helper()
	responder := &Responder{}
	awaiter := &Awaiter{Answers: answers}

	c := router.NewContext(context.Background(), router.Invocation{
		GuildID:   GuildID,
		ChannelID: ChannelID,
		MessageID: 1,
		Author:    &discordgo.User{ID: strconv.FormatInt(UserID, 10), Username: "Steve"},
		Responder: responder,
	})
	c.Command = cmd
	c.Args = router.NewArgs(args)
	c.Guild = &models.Guild{ID: GuildID}
	c.Prefix = "."
	c.L = Catalog(t).Localizer("en-US", "")
	c.Awaiter = awaiter
	c.WizardTimeout = time.Second

	return &Fixture{Ctx: c, Responder: responder, Awaiter: awaiter}
}

// FindCommand returns the command at path from cmds
func FindCommand(t *testing.T, cmds []*router.Command, path string) *router.Command {
	t.Helper()
	reg := router.NewRegistry()
	require.NoError(t, reg.Register(cmds...))
	cmd := reg.Find(path)
	require.NotNil(t, cmd, "command %q not found", path)
	return cmd
}
