package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeServerAddress(t *testing.T) {
	valid := map[string]string{
		"mc.hypixel.net":        "mc.hypixel.net",
		" play.example.com ":    "play.example.com",
		"play.example.com:1234": "play.example.com:1234",
		"127.0.0.1":             "127.0.0.1",
		"10.0.0.5:25565":        "10.0.0.5:25565",
		"[::1]:25565":           "[::1]:25565",
		"::1":                   "::1",
		"localhost":             "localhost",
	}
	for in, want := range valid {
		got, err := NormalizeServerAddress(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	invalid := []string{
		"",
		"has space.com",
		"example.com:0",
		"example.com:99999",
		"example.com:port",
		"-bad-.com",
		"http://example.com",
		strings.Repeat("a", 201),
	}
	for _, in := range invalid {
		_, err := NormalizeServerAddress(in)
		assert.ErrorIs(t, err, ErrInvalidAddress, in)
	}
}

func TestNormalizePrefix(t *testing.T) {
	p, err := NormalizePrefix(" ?? ")
	assert.NoError(t, err)
	assert.Equal(t, "??", p)

	_, err = NormalizePrefix("   ")
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = NormalizePrefix(strings.Repeat("é", 201))
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = NormalizePrefix(strings.Repeat("é", 200))
	assert.NoError(t, err)
}
