package serverlink

import (
	"errors"
	"strings"

	"obsidion/bot/common"
	"obsidion/bot/router"
	"obsidion/service"
)

func (f *Feature) handleLink(c *router.Context) error {
	address := c.Args.String("address")

	normalized, err := f.guildService.LinkServer(c.Context(), c.GuildID, address)
	if errors.Is(err, service.ErrInvalidAddress) {
		return common.NewUserError(c.L.T("serverlink.invalid", strings.ReplaceAll(address, "`", "")), err.Error())
	}
	if err != nil {
		return common.NewSystemError(err, "failed to link server")
	}

	return c.Reply(c.L.T("serverlink.linked", normalized))
}

func (f *Feature) handleUnlink(c *router.Context) error {
	if err := f.guildService.UnlinkServer(c.Context(), c.GuildID); err != nil {
		return common.NewSystemError(err, "failed to unlink server")
	}
	return c.Reply(c.L.T("serverlink.unlinked"))
}

func (f *Feature) handleInfo(c *router.Context) error {
	guild, err := f.guildService.GetGuild(c.Context(), c.GuildID)
	if err != nil {
		return common.NewSystemError(err, "failed to get guild")
	}
	if guild.Server == nil || *guild.Server == "" {
		return c.Reply(c.L.T("serverlink.none"))
	}
	return c.Reply(c.L.T("serverlink.info", *guild.Server))
}
