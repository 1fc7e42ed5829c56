package entities

import (
	"time"
)

// Default preference values applied when a settings row is created.
const (
	DefaultContinent    = "all"
	DefaultRoundLength  = 10
	DefaultReminderHour = 18 // UTC
)

// UserSettings stores per-user quiz preferences.
type UserSettings struct {
	UserID          int64
	Continent       string // preferred continent for /play without arguments, "all" for the whole catalog
	RoundLength     int    // questions per round
	SoundEnabled    bool   // send sound effects after answers
	ReminderEnabled bool
	ReminderHour    int // hour of day in UTC when the daily reminder fires
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:       userID,
		Continent:    DefaultContinent,
		RoundLength:  DefaultRoundLength,
		SoundEnabled: true,
		ReminderHour: DefaultReminderHour,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ReminderRecipient pairs a user with the chat a due reminder goes to.
type ReminderRecipient struct {
	UserID int64
	ChatID int64
}
