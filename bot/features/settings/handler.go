package settings

import (
	"errors"
	"fmt"
	"strings"

	"obsidion/bot/common"
	"obsidion/bot/router"
	"obsidion/i18n"
	"obsidion/service"
)

// sampleNumber shows off the grouping of a regional format
const sampleNumber = 1234567

// handlePrefix handles the prefix command
func (f *Feature) handlePrefix(c *router.Context) error {
	prefix := strings.TrimSpace(c.Args.String("prefix"))

	if err := f.guildService.SetPrefix(c.Context(), c.GuildID, prefix); err != nil {
		if errors.Is(err, service.ErrInvalidPrefix) {
			return common.NewUserError(c.L.T("settings.prefix_invalid"), "invalid prefix")
		}
		return common.NewSystemError(err, "failed to set prefix")
	}

	if prefix == "" {
		return c.Reply(c.L.T("settings.prefix_reset", f.defaultPrefix))
	}
	return c.Reply(c.L.T("settings.prefix_set", prefix))
}

// handleLocale handles the locale command. The confirmation is written in
// the new language.
func (f *Feature) handleLocale(c *router.Context) error {
	code := c.Args.String("language_code")

	locale, err := f.guildService.SetLocale(c.Context(), c.GuildID, code)
	if err != nil {
		return localeError(c, err, "failed to set locale")
	}

	regional := ""
	if c.Guild.Regional != nil {
		regional = *c.Guild.Regional
	}
	if locale == "" {
		l := c.L.With(f.defaultLocale, regional)
		return c.Reply(l.T("settings.locale_reset"))
	}
	l := c.L.With(locale, regional)
	return c.Reply(l.T("settings.locale_set", locale))
}

// handleRegionalFormat handles the regionalformat command
func (f *Feature) handleRegionalFormat(c *router.Context) error {
	code := c.Args.String("language_code")

	regional, err := f.guildService.SetRegionalFormat(c.Context(), c.GuildID, code)
	if err != nil {
		return localeError(c, err, "failed to set regional format")
	}

	if regional == "" {
		return c.Reply(c.L.T("settings.regional_reset"))
	}
	return c.Reply(c.L.T("settings.regional_set", regional, i18n.FormatNumber(regional, sampleNumber)))
}

func localeError(c *router.Context, err error, logMessage string) error {
	switch {
	case errors.Is(err, service.ErrMissingRegion):
		return common.NewUserError(c.L.T("settings.locale_region"), fmt.Sprintf("%s: %v", logMessage, err))
	case errors.Is(err, service.ErrInvalidLocale):
		return common.NewUserError(c.L.T("settings.locale_invalid"), fmt.Sprintf("%s: %v", logMessage, err))
	default:
		return common.NewSystemError(err, logMessage)
	}
}
