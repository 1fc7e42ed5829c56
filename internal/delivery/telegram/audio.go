package telegram

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// SoundKind enumerates the fixed sound effects.
type SoundKind string

const (
	SoundSuccess  SoundKind = "success"
	SoundError    SoundKind = "error"
	SoundComplete SoundKind = "complete"
)

// AudioManager sends audio assets to chats. At most one audio message is
// live per chat: playing a new asset removes the previous one first, and
// Stop removes whatever is currently live. Failures are logged and
// swallowed; audio never blocks round progression.
type AudioManager struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger

	mu      sync.Mutex
	playing map[int64]int // chat id -> message id of the live audio message
}

func NewAudioManager(bot *tgbotapi.BotAPI, logger *zap.Logger) *AudioManager {
	return &AudioManager{
		bot:     bot,
		logger:  logger,
		playing: make(map[int64]int),
	}
}

// Play sends the audio asset at path to the chat, replacing the chat's
// current audio message if one is live.
func (m *AudioManager) Play(chatID int64, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked(chatID)

	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(path))
	sent, err := m.bot.Send(audio)
	if err != nil {
		m.logger.Warn("failed to send audio",
			zap.Int64("chat_id", chatID),
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	m.playing[chatID] = sent.MessageID
}

// PlaySound plays one of the fixed sound effects.
func (m *AudioManager) PlaySound(chatID int64, kind SoundKind) {
	m.Play(chatID, filepath.Join("assets", "audio", fmt.Sprintf("%s.mp3", kind)))
}

// PlayCountryName plays the pronunciation clip for a country code. The
// clip name follows the catalog convention: the lowercased alpha-2 code.
func (m *AudioManager) PlayCountryName(chatID int64, code string) {
	clip := fmt.Sprintf("%s.mp3", strings.ToLower(strings.TrimSpace(code)))
	m.Play(chatID, filepath.Join("assets", "audio", "names", clip))
}

// Stop removes the chat's live audio message, if any.
func (m *AudioManager) Stop(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(chatID)
}

func (m *AudioManager) stopLocked(chatID int64) {
	messageID, ok := m.playing[chatID]
	if !ok {
		return
	}
	delete(m.playing, chatID)

	if _, err := m.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		m.logger.Debug("failed to delete audio message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}
