package service

import (
	"net"
	"regexp"
	"strings"
	"unicode/utf8"

	"obsidion/models"
)

const (
	maxPrefixLen   = 200
	maxAddressLen  = 200
	maxPasswordLen = 200
)

var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)

// NormalizePrefix trims a prefix and checks its length
func NormalizePrefix(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if n := utf8.RuneCountInString(prefix); n == 0 || n > maxPrefixLen {
		return "", ErrInvalidPrefix
	}
	return prefix, nil
}

// NormalizeServerAddress validates a host or host:port address
func NormalizeServerAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" || len(address) > maxAddressLen || strings.ContainsAny(address, " \t\n/") {
		return "", ErrInvalidAddress
	}

	host := address
	if h, port, err := net.SplitHostPort(address); err == nil {
		if _, err := models.ParsePort(port); err != nil {
			return "", ErrInvalidAddress
		}
		host = h
	} else if strings.Contains(address, ":") && net.ParseIP(address) == nil {
		return "", ErrInvalidAddress
	}

	if !ValidHost(host) {
		return "", ErrInvalidAddress
	}
	return address, nil
}

// ValidHost accepts IP addresses and DNS host names
func ValidHost(host string) bool {
	if net.ParseIP(host) != nil {
		return true
	}
	return len(host) <= 253 && hostnamePattern.MatchString(host)
}

// ValidPassword reports whether an RCON password can be stored
func ValidPassword(password string) bool {
	return password != "" && len(password) <= maxPasswordLen
}
