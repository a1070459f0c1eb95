package account

import (
	"errors"

	"obsidion/bot/common"
	"obsidion/bot/router"
	"obsidion/mojang"
	"obsidion/service"
)

func (f *Feature) handleLink(c *router.Context) error {
	username := c.Args.String("username")

	profile, err := f.accountService.Link(c.Context(), c.AuthorID(), username)
	switch {
	case errors.Is(err, mojang.ErrPlayerNotFound), errors.Is(err, mojang.ErrInvalidUsername):
		return common.NewUserError(c.L.T("account.player_not_found", username), err.Error())
	case errors.Is(err, mojang.ErrUnavailable), errors.Is(err, mojang.ErrRateLimited):
		return common.NewUserError(c.L.T("account.lookup_failed"), err.Error())
	case err != nil:
		return common.NewSystemError(err, "failed to link account")
	}

	return c.Reply(c.L.T("account.linked", profile.Name))
}

func (f *Feature) handleUnlink(c *router.Context) error {
	err := f.accountService.Unlink(c.Context(), c.AuthorID())
	if errors.Is(err, service.ErrAccountNotLinked) {
		return common.NewUserError(c.L.T("account.not_linked"), "no account to unlink")
	}
	if err != nil {
		return common.NewSystemError(err, "failed to unlink account")
	}

	return c.Reply(c.L.T("account.unlinked"))
}

func (f *Feature) handleInfo(c *router.Context) error {
	account, err := f.accountService.GetAccount(c.Context(), c.AuthorID())
	if err != nil {
		return common.NewSystemError(err, "failed to get account")
	}
	if account == nil {
		return c.Reply(c.L.T("account.not_linked"))
	}

	return c.Reply(c.L.T("account.info", account.UUID.String()))
}
