package fun

import (
	"obsidion/bot/router"
	core "obsidion/fun"
)

// Feature implements the Fun cog
type Feature struct {
	pools   *core.Pools
	rng     core.Source
	ownerID int64
}

// NewFeature creates the fun feature. ownerID can never be the target of
// kill.
func NewFeature(pools *core.Pools, rng core.Source, ownerID int64) *Feature {
	return &Feature{
		pools:   pools,
		rng:     rng,
		ownerID: ownerID,
	}
}

// Commands returns the commands of the cog
func (f *Feature) Commands() []*router.Command {
	text := []router.Option{{
		Name:        "text",
		Description: "The text to convert",
		Required:    true,
		Rest:        true,
	}}

	return []*router.Command{
		{
			Name:        "buildidea",
			Aliases:     []string{"idea", "bidea"},
			Cog:         router.CogFun,
			Description: "Get an idea for something to build",
			Handler:     f.handleBuildIdea,
		},
		{
			Name:        "fact",
			Cog:         router.CogFun,
			Description: "Get a fact about Minecraft",
			Options: []router.Option{{
				Name:        "id",
				Description: "Number of the fact, the first one is 1",
				Type:        router.OptionInteger,
			}},
			Handler: f.handleFact,
		},
		{
			Name:        "villager",
			Aliases:     []string{"villagerspeak", "villagerspeech", "hmm"},
			Cog:         router.CogFun,
			Description: "Convert English to villager speech hmm",
			Options:     text,
			Handler:     f.handleVillager,
		},
		{
			Name:        "enchant",
			Cog:         router.CogFun,
			Description: "Write a message in the enchanting table alphabet",
			Options:     text,
			Handler:     f.handleEnchant,
		},
		{
			Name:        "unenchant",
			Cog:         router.CogFun,
			Description: "Read a message written in the enchanting table alphabet",
			Options:     text,
			Handler:     f.handleUnenchant,
		},
		{
			Name:        "creeper",
			Cog:         router.CogFun,
			Description: "Aw man",
			Handler:     f.handleCreeper,
		},
		{
			Name:        "kill",
			Aliases:     []string{"slay"},
			Cog:         router.CogFun,
			Description: "Kill that pesky friend in a fun and stylish way",
			Options: []router.Option{{
				Name:        "member",
				Description: "Who to kill, yourself by default",
				Type:        router.OptionUser,
			}},
			Handler: f.handleKill,
		},
		{
			Name:        "pvp",
			Aliases:     []string{"battle"},
			Cog:         router.CogFun,
			Description: "Make two members duel",
			Options: []router.Option{
				{Name: "member1", Description: "First fighter", Type: router.OptionUser, Required: true},
				{Name: "member2", Description: "Second fighter, you by default", Type: router.OptionUser},
			},
			Handler: f.handlePvP,
		},
		{
			Name:        "rps",
			Cog:         router.CogFun,
			Description: "Play rock paper shears",
			Options: []router.Option{{
				Name:        "choice",
				Description: "Your hand",
				Required:    true,
				Choices:     []string{string(core.Rock), string(core.Paper), string(core.Shears)},
			}},
			Handler: f.handleRPS,
		},
	}
}
