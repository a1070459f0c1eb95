package models

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// RconProfile stores the remote console credentials of a guild's server.
// The bot never connects with them; they are kept for the server tooling.
type RconProfile struct {
	GuildID  int64   `db:"id"`
	Server   string  `db:"server"`
	Password string  `db:"password"`
	Port     int     `db:"port"`
	Roles    []int64 `db:"roles"`   // roles allowed to run console commands
	Channel  int64   `db:"channel"` // channel that receives console output
}

// Address joins server and port
func (p *RconProfile) Address() string {
	return net.JoinHostPort(p.Server, strconv.Itoa(p.Port))
}

// MaskedPassword hides the password, keeping its length hint coarse
func (p *RconProfile) MaskedPassword() string {
	if p.Password == "" {
		return ""
	}
	return strings.Repeat("*", 8)
}

// ParsePort validates a port number
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("port must be a number")
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port must be between 1 and 65535")
	}
	return port, nil
}
