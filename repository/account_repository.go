package repository

import (
	"context"
	"errors"
	"fmt"

	"obsidion/database"
	"obsidion/models"

	"github.com/jackc/pgx/v5"
)

// AccountRepository implements the AccountRepository interface
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

func newAccountRepositoryWithTx(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

// Get returns the user's link or nil
func (r *AccountRepository) Get(ctx context.Context, userID int64) (*models.Account, error) {
	var account models.Account
	err := r.q.QueryRow(ctx, `SELECT id, uuid FROM account WHERE id = $1 AND uuid IS NOT NULL`, userID).Scan(
		&account.ID,
		&account.UUID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", userID, err)
	}
	return &account, nil
}

// Upsert creates the link or replaces the linked profile
func (r *AccountRepository) Upsert(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO account (id, uuid)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET uuid = EXCLUDED.uuid
	`
	if _, err := r.q.Exec(ctx, query, account.ID, account.UUID); err != nil {
		return fmt.Errorf("failed to save account %d: %w", account.ID, err)
	}
	return nil
}

// Delete removes the link
func (r *AccountRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM account WHERE id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete account %d: %w", userID, err)
	}
	return result.RowsAffected() > 0, nil
}
