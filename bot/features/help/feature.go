package help

import (
	"obsidion/bot/router"
)

// cogOrder is the order cogs appear in the listing
var cogOrder = []string{router.CogFun, router.CogConfig}

// Feature describes the registered commands
type Feature struct {
	registry *router.Registry
}

// NewFeature creates a help feature over registry. The help command can
// be registered into the same registry it describes.
func NewFeature(registry *router.Registry) *Feature {
	return &Feature{registry: registry}
}

// Commands returns the help command
func (f *Feature) Commands() []*router.Command {
	return []*router.Command{{
		Name:        "help",
		Description: "List the commands or describe one",
		Options: []router.Option{{
			Name:        "command",
			Description: "Command to describe, e.g. autopost setup",
			Rest:        true,
		}},
		Handler: f.handleHelp,
	}}
}
