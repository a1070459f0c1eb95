package models

import "github.com/google/uuid"

// Account links a Discord user to a Minecraft profile
type Account struct {
	ID   int64     `db:"id"` // Discord user ID
	UUID uuid.UUID `db:"uuid"`
}
