package service

import (
	"errors"

	"obsidion/i18n"
	"obsidion/mojang"
)

var (
	ErrInvalidLocale     = i18n.ErrInvalidLocale
	ErrMissingRegion     = i18n.ErrMissingRegion
	ErrPlayerNotFound    = mojang.ErrPlayerNotFound
	ErrInvalidPrefix     = errors.New("prefix must be between 1 and 200 characters")
	ErrInvalidAddress    = errors.New("invalid server address")
	ErrInvalidPort       = errors.New("port must be between 1 and 65535")
	ErrInvalidPassword   = errors.New("password must be between 1 and 200 characters")
	ErrAccountNotLinked  = errors.New("account not linked")
	ErrRconNotConfigured = errors.New("rcon not configured")
)
