package account

import (
	"obsidion/bot/router"
	"obsidion/service"
)

// Feature links Discord users to Minecraft accounts
type Feature struct {
	accountService service.AccountService
}

// NewFeature creates a new account feature instance
func NewFeature(accountService service.AccountService) *Feature {
	return &Feature{accountService: accountService}
}

// Commands returns the account command group
func (f *Feature) Commands() []*router.Command {
	return []*router.Command{{
		Name:        "account",
		Cog:         router.CogConfig,
		Description: "Link your Minecraft account to your Discord account",
		Subcommands: []*router.Command{
			{
				Name:        "link",
				Description: "Link a Minecraft account",
				Options: []router.Option{{
					Name:        "username",
					Description: "Your Minecraft username",
					Required:    true,
				}},
				Handler: f.handleLink,
			},
			{
				Name:        "unlink",
				Description: "Remove your Minecraft account link",
				Handler:     f.handleUnlink,
			},
			{
				Name:        "info",
				Description: "Show your linked Minecraft account",
				Handler:     f.handleInfo,
			},
		},
	}}
}
