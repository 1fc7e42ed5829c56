package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"flagquiz/internal/domain/entities"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// SaveUser inserts a new user or refreshes the chat id of an existing
// one, reactivating it. It sets IsActive and CreatedAt from the database.
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	query := `
    INSERT INTO users (id, chat_id)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE
        SET chat_id = EXCLUDED.chat_id, is_active = TRUE
    RETURNING is_active, created_at
    `
	err := r.db.QueryRow(ctx, query, user.ID, user.ChatID).Scan(&user.IsActive, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// Deactivate marks a user inactive so reminder runs skip it.
func (r *UserRepository) Deactivate(ctx context.Context, userID int64) error {
	query := "UPDATE users SET is_active = FALSE WHERE id = $1"

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}

	return nil
}
