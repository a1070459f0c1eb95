package autopost

import (
	"obsidion/bot/router"
	"obsidion/models"
	"obsidion/service"
)

// Feature configures which channels receive Minecraft news
type Feature struct {
	autopostService service.AutopostService
}

// NewFeature creates a new autopost feature instance
func NewFeature(autopostService service.AutopostService) *Feature {
	return &Feature{autopostService: autopostService}
}

// Commands returns the autopost command group
func (f *Feature) Commands() []*router.Command {
	categories := make([]string, len(models.NewsCategories))
	for i, c := range models.NewsCategories {
		categories[i] = string(c)
	}

	return []*router.Command{{
		Name:        "autopost",
		Cog:         router.CogConfig,
		Description: "Set up automatic posting of Minecraft news",
		GuildOnly:   true,
		ManageGuild: true,
		Subcommands: []*router.Command{
			{
				Name:        "setup",
				Description: "Walk through every news category",
				Handler:     f.handleSetup,
			},
			{
				Name:        "edit",
				Description: "Change or turn off the channel of one category",
				Options: []router.Option{
					{
						Name:        "category",
						Description: "News category",
						Required:    true,
						Choices:     categories,
					},
					{
						Name:        "channel",
						Description: "Channel to post in, leave empty to turn off",
						Type:        router.OptionChannel,
					},
				},
				Handler: f.handleEdit,
			},
			{
				Name:        "settings",
				Description: "Show the automatic posting channels",
				Handler:     f.handleSettings,
			},
			{
				Name:        "test",
				Description: "Send a test message to every configured channel",
				Handler:     f.handleTest,
			},
		},
	}}
}
