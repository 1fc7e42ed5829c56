package entities

import "time"

// User is a bot user. IsActive flips to false when the user blocks the
// bot; inactive users receive no reminders.
type User struct {
	ID        int64 // Telegram user ID
	ChatID    int64 // private chat with the bot
	IsActive  bool
	CreatedAt time.Time
}

func NewUser(id, chatID int64) *User {
	return &User{
		ID:       id,
		ChatID:   chatID,
		IsActive: true,
	}
}
