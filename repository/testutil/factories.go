package testutil

import (
	"obsidion/models"

	"github.com/google/uuid"
)

// CreateTestGuild creates a guild with every preference set
func CreateTestGuild(guildID int64) *models.Guild {
	prefix := "!"
	locale := "de-DE"
	regional := "fr-FR"
	server := "mc.example.com:25565"
	return &models.Guild{
		ID:       guildID,
		Prefix:   &prefix,
		Locale:   &locale,
		Regional: &regional,
		Server:   &server,
		News: models.NewsChannels{
			models.NewsRelease: guildID + 1,
			models.NewsOutage:  guildID + 2,
		},
	}
}

// CreateTestAccount creates an account link with a random profile id
func CreateTestAccount(userID int64) *models.Account {
	return &models.Account{ID: userID, UUID: uuid.New()}
}

// CreateTestRconProfile creates a complete RCON profile
func CreateTestRconProfile(guildID int64) *models.RconProfile {
	return &models.RconProfile{
		GuildID:  guildID,
		Server:   "mc.example.com",
		Password: "hunter2",
		Port:     25575,
		Roles:    []int64{111, 222},
		Channel:  333,
	}
}
