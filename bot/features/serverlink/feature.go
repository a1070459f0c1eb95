package serverlink

import (
	"obsidion/bot/router"
	"obsidion/service"
)

// Feature links a guild to its Minecraft server
type Feature struct {
	guildService service.GuildService
}

// NewFeature creates a new serverlink feature instance
func NewFeature(guildService service.GuildService) *Feature {
	return &Feature{guildService: guildService}
}

// Commands returns the serverlink command group
func (f *Feature) Commands() []*router.Command {
	return []*router.Command{{
		Name:        "serverlink",
		Cog:         router.CogConfig,
		Description: "Link a Minecraft server to this Discord server",
		GuildOnly:   true,
		ManageGuild: true,
		Subcommands: []*router.Command{
			{
				Name:        "link",
				Description: "Link a Minecraft server",
				Options: []router.Option{{
					Name:        "address",
					Description: "Server address as host or host:port",
					Required:    true,
				}},
				Handler: f.handleLink,
			},
			{
				Name:        "unlink",
				Description: "Remove the Minecraft server link",
				Handler:     f.handleUnlink,
			},
			{
				Name:        "info",
				Description: "Show the linked Minecraft server",
				Handler:     f.handleInfo,
			},
		},
	}}
}
