package router

import (
	"context"
	"sync"
	"testing"

	"obsidion/i18n"
	"obsidion/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeResponder struct {
	mu      sync.Mutex
	replies []string
	embeds  []*discordgo.MessageEmbed
	sent    map[int64][]string
	deleted []int64
}

func (f *fakeResponder) Reply(content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, content)
	return nil
}

func (f *fakeResponder) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embeds = append(f.embeds, embed)
	return nil
}

func (f *fakeResponder) Send(channelID int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sent == nil {
		f.sent = make(map[int64][]string)
	}
	f.sent[channelID] = append(f.sent[channelID], content)
	return nil
}

func (f *fakeResponder) SendEmbed(channelID int64, embed *discordgo.MessageEmbed) error {
	return nil
}

func (f *fakeResponder) Delete(channelID, messageID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeResponder) Replies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.replies...)
}

type staticSettings map[int64]*models.Guild

func (s staticSettings) Settings(ctx context.Context, guildID int64) (*models.Guild, error) {
	return s[guildID], nil
}

func testCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.LoadCatalog(nil)
	require.NoError(t, err)
	return catalog
}
