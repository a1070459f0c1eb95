package rcon

import (
	"obsidion/bot/router"
	"obsidion/service"
)

// Feature stores the RCON credentials of a guild's Minecraft server
type Feature struct {
	rconService service.RconService
}

// NewFeature creates a new rcon feature instance
func NewFeature(rconService service.RconService) *Feature {
	return &Feature{rconService: rconService}
}

// Commands returns the rconconfig command group
func (f *Feature) Commands() []*router.Command {
	return []*router.Command{{
		Name:        "rconconfig",
		Cog:         router.CogConfig,
		Description: "Configure RCON access to your Minecraft server",
		GuildOnly:   true,
		ManageGuild: true,
		Subcommands: []*router.Command{
			{
				Name:        "setup",
				Description: "Walk through the RCON settings",
				Handler:     f.handleSetup,
			},
			{
				Name:        "settings",
				Description: "Show the stored RCON settings",
				Handler:     f.handleSettings,
			},
			{
				Name:        "reset",
				Description: "Delete the stored RCON settings",
				Handler:     f.handleReset,
			},
		},
	}}
}
