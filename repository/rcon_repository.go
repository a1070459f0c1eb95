package repository

import (
	"context"
	"errors"
	"fmt"

	"obsidion/database"
	"obsidion/models"

	"github.com/jackc/pgx/v5"
)

// RconRepository implements the RconRepository interface
type RconRepository struct {
	q queryable
}

// NewRconRepository creates a new RCON profile repository
func NewRconRepository(db *database.DB) *RconRepository {
	return &RconRepository{q: db.Pool}
}

func newRconRepositoryWithTx(tx queryable) *RconRepository {
	return &RconRepository{q: tx}
}

// Get returns the guild's profile or nil
func (r *RconRepository) Get(ctx context.Context, guildID int64) (*models.RconProfile, error) {
	query := `SELECT id, server, password, port, roles, channel FROM rcon WHERE id = $1`

	var profile models.RconProfile
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&profile.GuildID,
		&profile.Server,
		&profile.Password,
		&profile.Port,
		&profile.Roles,
		&profile.Channel,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rcon profile %d: %w", guildID, err)
	}
	return &profile, nil
}

// Upsert stores the profile, replacing any previous one
func (r *RconRepository) Upsert(ctx context.Context, profile *models.RconProfile) error {
	query := `
		INSERT INTO rcon (id, server, password, port, roles, channel)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET server = EXCLUDED.server,
		    password = EXCLUDED.password,
		    port = EXCLUDED.port,
		    roles = EXCLUDED.roles,
		    channel = EXCLUDED.channel
	`

	roles := profile.Roles
	if roles == nil {
		roles = []int64{}
	}

	_, err := r.q.Exec(ctx, query,
		profile.GuildID,
		profile.Server,
		profile.Password,
		profile.Port,
		roles,
		profile.Channel,
	)
	if err != nil {
		return fmt.Errorf("failed to save rcon profile %d: %w", profile.GuildID, err)
	}
	return nil
}

// Delete removes the guild's profile
func (r *RconRepository) Delete(ctx context.Context, guildID int64) (bool, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM rcon WHERE id = $1`, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to delete rcon profile %d: %w", guildID, err)
	}
	return result.RowsAffected() > 0, nil
}
