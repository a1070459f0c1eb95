package settings

import (
	"obsidion/bot/router"
	"obsidion/service"
)

// Feature handles guild preference commands
type Feature struct {
	guildService  service.GuildService
	defaultPrefix string
	defaultLocale string
}

// NewFeature creates a new settings feature instance
func NewFeature(guildService service.GuildService, defaultPrefix, defaultLocale string) *Feature {
	return &Feature{
		guildService:  guildService,
		defaultPrefix: defaultPrefix,
		defaultLocale: defaultLocale,
	}
}

// Commands returns the prefix, locale and regionalformat commands
func (f *Feature) Commands() []*router.Command {
	return []*router.Command{
		{
			Name:        "prefix",
			Aliases:     []string{"serverprefixes"},
			Cog:         router.CogConfig,
			Description: "Set the server prefix, or reset it when left empty",
			Options: []router.Option{{
				Name:        "prefix",
				Description: "The new prefix",
			}},
			GuildOnly:   true,
			ManageGuild: true,
			Handler:     f.handlePrefix,
		},
		{
			Name:        "locale",
			Cog:         router.CogConfig,
			Description: "Change the bot language in this server, e.g. en-US or default",
			Options: []router.Option{{
				Name:        "language_code",
				Description: "Language code with country code, or default",
				Required:    true,
			}},
			GuildOnly:   true,
			ManageGuild: true,
			Handler:     f.handleLocale,
		},
		{
			Name:        "regionalformat",
			Aliases:     []string{"region"},
			Cog:         router.CogConfig,
			Description: "Change how numbers are formatted, or follow the language when left empty",
			Options: []router.Option{{
				Name:        "language_code",
				Description: "Language code with country code",
			}},
			GuildOnly:   true,
			ManageGuild: true,
			Handler:     f.handleRegionalFormat,
		},
	}
}
