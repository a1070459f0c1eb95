package fun

import (
	"fmt"

	"obsidion/bot/common"
	"obsidion/bot/router"
	core "obsidion/fun"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) handleBuildIdea(c *router.Context) error {
	idea := f.pools.BuildIdeas.Render(f.rng, nil)
	return c.Reply(c.L.T("fun.buildidea", c.AuthorMention(), idea))
}

func (f *Feature) handleFact(c *router.Context) error {
	var (
		fact  string
		index int
	)
	if id, ok := c.Args.Int("id"); ok {
		entry, err := f.pools.Facts.At(int(id) - 1)
		if err != nil {
			return common.NewUserError(
				c.L.T("fun.fact_out_of_range", id, f.pools.Facts.Len()),
				fmt.Sprintf("fact %d out of range", id),
			)
		}
		fact, index = entry, int(id)-1
	} else {
		fact, index = f.pools.Facts.Pick(f.rng)
	}

	return c.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       c.L.T("fun.fact_title", index+1),
		Description: fact,
		Color:       common.ColorFact,
	})
}

func (f *Feature) handleVillager(c *router.Context) error {
	return f.replyConverted(c, core.Villager(c.Args.String("text")))
}

func (f *Feature) handleEnchant(c *router.Context) error {
	return f.replyConverted(c, core.Enchant(c.Args.String("text")))
}

func (f *Feature) handleUnenchant(c *router.Context) error {
	return f.replyConverted(c, core.Unenchant(c.Args.String("text")))
}

func (f *Feature) replyConverted(c *router.Context, text string) error {
	return c.Reply(fmt.Sprintf("%s, %s", c.AuthorMention(), common.InlineCode(text)))
}

func (f *Feature) handleCreeper(c *router.Context) error {
	return c.Reply(c.L.T("fun.creeper"))
}

func (f *Feature) handleKill(c *router.Context) error {
	target := c.AuthorMention()
	if id, ok := c.Args.ID("member"); ok && id != f.ownerID {
		target = common.UserMention(id)
	}

	return c.Reply(f.pools.Kill.Render(f.rng, map[string]string{
		core.PlaceholderMember: target,
	}))
}

func (f *Feature) handlePvP(c *router.Context) error {
	member1, _ := c.Args.ID("member1")
	member2 := c.AuthorMention()
	if id, ok := c.Args.ID("member2"); ok {
		member2 = common.UserMention(id)
	}

	return c.Reply(f.pools.PvP.Render(f.rng, map[string]string{
		core.PlaceholderMember1: common.UserMention(member1),
		core.PlaceholderMember2: member2,
	}))
}

func (f *Feature) handleRPS(c *router.Context) error {
	player, err := core.ParseHand(c.Args.String("choice"))
	if err != nil {
		return common.NewUserError(c.L.T("fun.rps_invalid"), "invalid rps hand")
	}

	bot, outcome := core.Play(f.rng, player)
	return c.Reply(c.L.T("fun.rps_result",
		c.L.T("fun.hand."+string(player)),
		c.L.T("fun.hand."+string(bot)),
		c.L.T(outcomeKey(outcome)),
	))
}

func outcomeKey(o core.Outcome) string {
	switch o {
	case core.Win:
		return "fun.rps_win"
	case core.Tie:
		return "fun.rps_tie"
	default:
		return "fun.rps_lose"
	}
}
