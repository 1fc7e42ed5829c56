package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flagquiz/internal/domain/entities"
)

var ErrSettingsNotFound = errors.New("settings not found")

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates settings for a new user with the given round length.
// The remaining defaults live in the table definition.
func (r *SettingsRepository) Create(ctx context.Context, userID int64, roundLength int) error {
	query := `
        INSERT INTO user_settings (user_id, round_length)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO NOTHING
    `

	_, err := r.db.Exec(ctx, query, userID, roundLength)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings by user ID.
// Returns ErrSettingsNotFound if settings don't exist.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
        SELECT user_id, continent, round_length, sound_enabled,
               reminder_enabled, reminder_hour, created_at, updated_at
        FROM user_settings
        WHERE user_id = $1
    `

	var settings entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.Continent,
		&settings.RoundLength,
		&settings.SoundEnabled,
		&settings.ReminderEnabled,
		&settings.ReminderHour,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings by user id: %w", err)
	}

	return &settings, nil
}

// UpdateContinent updates only the preferred continent.
func (r *SettingsRepository) UpdateContinent(ctx context.Context, userID int64, continent string) error {
	query := `
        UPDATE user_settings
        SET continent = $2, updated_at = NOW()
        WHERE user_id = $1
    `

	cmdTag, err := r.db.Exec(ctx, query, userID, continent)
	if err != nil {
		return fmt.Errorf("update continent: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateRoundLength updates only the questions-per-round preference.
func (r *SettingsRepository) UpdateRoundLength(ctx context.Context, userID int64, roundLength int) error {
	query := `
        UPDATE user_settings
        SET round_length = $2, updated_at = NOW()
        WHERE user_id = $1
    `

	cmdTag, err := r.db.Exec(ctx, query, userID, roundLength)
	if err != nil {
		return fmt.Errorf("update round length: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// ToggleSound flips the sound effects preference.
func (r *SettingsRepository) ToggleSound(ctx context.Context, userID int64) error {
	query := `
        UPDATE user_settings
        SET sound_enabled = NOT sound_enabled, updated_at = NOW()
        WHERE user_id = $1
    `

	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("toggle sound: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// ToggleReminder flips the daily reminder preference.
func (r *SettingsRepository) ToggleReminder(ctx context.Context, userID int64) error {
	query := `
        UPDATE user_settings
        SET reminder_enabled = NOT reminder_enabled, updated_at = NOW()
        WHERE user_id = $1
    `

	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("toggle reminder: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateReminderHour updates the UTC hour the daily reminder fires at.
func (r *SettingsRepository) UpdateReminderHour(ctx context.Context, userID int64, hour int) error {
	query := `
        UPDATE user_settings
        SET reminder_hour = $2, updated_at = NOW()
        WHERE user_id = $1
    `

	cmdTag, err := r.db.Exec(ctx, query, userID, hour)
	if err != nil {
		return fmt.Errorf("update reminder hour: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// GetReminderRecipients lists active users whose enabled reminder is set
// to the given UTC hour.
func (r *SettingsRepository) GetReminderRecipients(ctx context.Context, hour int) ([]entities.ReminderRecipient, error) {
	query := `
        SELECT s.user_id, u.chat_id
        FROM user_settings s
        JOIN users u ON u.id = s.user_id
        WHERE s.reminder_enabled AND s.reminder_hour = $1 AND u.is_active
        ORDER BY s.user_id
    `

	rows, err := r.db.Query(ctx, query, hour)
	if err != nil {
		return nil, fmt.Errorf("get reminder recipients: %w", err)
	}
	defer rows.Close()

	var recipients []entities.ReminderRecipient
	for rows.Next() {
		var rec entities.ReminderRecipient
		if err := rows.Scan(&rec.UserID, &rec.ChatID); err != nil {
			return nil, fmt.Errorf("scan reminder recipient: %w", err)
		}
		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminder recipients: %w", err)
	}

	return recipients, nil
}
