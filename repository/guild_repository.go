package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"obsidion/database"
	"obsidion/models"

	"github.com/jackc/pgx/v5"
)

const guildColumns = `id, prefix, regional, locale, server, news`

// GuildRepository implements the GuildRepository interface
type GuildRepository struct {
	q queryable
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db *database.DB) *GuildRepository {
	return &GuildRepository{q: db.Pool}
}

func newGuildRepositoryWithTx(tx queryable) *GuildRepository {
	return &GuildRepository{q: tx}
}

// Get returns the guild or nil when it has no row
func (r *GuildRepository) Get(ctx context.Context, guildID int64) (*models.Guild, error) {
	query := `SELECT ` + guildColumns + ` FROM guild WHERE id = $1`

	guild, err := scanGuild(r.q.QueryRow(ctx, query, guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild %d: %w", guildID, err)
	}
	return guild, nil
}

// GetOrCreate returns the guild, inserting an empty row first if needed.
// The row is locked until the surrounding transaction ends.
func (r *GuildRepository) GetOrCreate(ctx context.Context, guildID int64) (*models.Guild, error) {
	insert := `INSERT INTO guild (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`
	if _, err := r.q.Exec(ctx, insert, guildID); err != nil {
		return nil, fmt.Errorf("failed to create guild %d: %w", guildID, err)
	}

	query := `SELECT ` + guildColumns + ` FROM guild WHERE id = $1 FOR UPDATE`
	guild, err := scanGuild(r.q.QueryRow(ctx, query, guildID))
	if err != nil {
		return nil, fmt.Errorf("failed to get guild %d: %w", guildID, err)
	}
	return guild, nil
}

// Update overwrites the preference columns of an existing guild
func (r *GuildRepository) Update(ctx context.Context, guild *models.Guild) error {
	var news any
	if len(guild.News) > 0 {
		data, err := json.Marshal(guild.News)
		if err != nil {
			return fmt.Errorf("failed to encode news channels: %w", err)
		}
		news = string(data)
	}

	query := `
		UPDATE guild
		SET prefix = $2,
		    regional = $3,
		    locale = $4,
		    server = $5,
		    news = $6::jsonb
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query,
		guild.ID,
		guild.Prefix,
		guild.Regional,
		guild.Locale,
		guild.Server,
		news,
	)
	if err != nil {
		return fmt.Errorf("failed to update guild %d: %w", guild.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild %d not found", guild.ID)
	}
	return nil
}

// ListByNewsCategory returns guilds that post category somewhere
func (r *GuildRepository) ListByNewsCategory(ctx context.Context, category models.NewsCategory) ([]*models.Guild, error) {
	query := `SELECT ` + guildColumns + ` FROM guild WHERE news ->> $1 IS NOT NULL ORDER BY id`

	rows, err := r.q.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds for %s: %w", category, err)
	}
	defer rows.Close()

	var guilds []*models.Guild
	for rows.Next() {
		guild, err := scanGuild(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guild: %w", err)
		}
		guilds = append(guilds, guild)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guilds: %w", err)
	}
	return guilds, nil
}

// Count returns the number of guild rows
func (r *GuildRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM guild`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count guilds: %w", err)
	}
	return count, nil
}

func scanGuild(row pgx.Row) (*models.Guild, error) {
	var (
		guild models.Guild
		news  []byte
	)
	err := row.Scan(
		&guild.ID,
		&guild.Prefix,
		&guild.Regional,
		&guild.Locale,
		&guild.Server,
		&news,
	)
	if err != nil {
		return nil, err
	}

	if len(news) > 0 {
		if err := json.Unmarshal(news, &guild.News); err != nil {
			return nil, fmt.Errorf("failed to decode news channels of guild %d: %w", guild.ID, err)
		}
	}
	return &guild, nil
}
