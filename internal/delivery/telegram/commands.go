package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"flagquiz/internal/service"
)

// handleStart greets the user and seeds the settings row.
func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.settingsService.GetOrCreate(ctx, userID); err != nil {
			h.logger.Warn("failed to seed settings",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}

		return h.send(newHTMLMessage(chatID, msgWelcome))
	}
}

// handlePlay starts a round. An argument narrows the pool to one
// continent ("/play europe"); without one the player's preferred
// continent applies.
func (h *Handler) handlePlay(userID int64, args string, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.deleteMessage(chatID, messageID)
		return h.startRound(ctx, userID, chatID, args)
	}
}

// handleContinents shows the playable continents with play buttons.
func (h *Handler) handleContinents(messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		labels, err := h.countryService.Continents(ctx)
		if err != nil {
			h.logger.Error("failed to load continents", zap.Error(err))
			return h.send(newHTMLMessage(chatID, msgContinentsUnavailable))
		}

		h.deleteMessage(chatID, messageID)

		msg := newHTMLMessage(chatID, formatContinents(labels))
		msg.ReplyMarkup = buildContinentsKeyboard(labels)
		return h.send(msg)
	}
}

// handleSettings displays user settings.
func (h *Handler) handleSettings(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			h.logger.Error("failed to load settings",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return h.send(newHTMLMessage(chatID, msgSettingsUnavailable))
		}

		h.deleteMessage(chatID, messageID)

		msg := newHTMLMessage(chatID, formatSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard()
		return h.send(msg)
	}
}

// handleStop abandons the active round.
func (h *Handler) handleStop(messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.deleteMessage(chatID, messageID)

		if _, ok := h.sessions.Get(chatID); !ok {
			return h.send(newHTMLMessage(chatID, msgNoActiveRound))
		}

		h.stopRound(chatID)
		return h.send(newHTMLMessage(chatID, msgRoundStopped))
	}
}

// handleHelp explains the rules.
func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newHTMLMessage(chatID, msgHelp))
	}
}

// startRound builds a fresh game for the chat and renders its first
// question. Any running round in the chat is discarded, together with
// its pending auto-advance and live audio.
func (h *Handler) startRound(ctx context.Context, userID, chatID int64, continent string) error {
	settings := h.settingsOrDefault(ctx, userID)
	if continent == "" {
		continent = settings.Continent
	}

	countries, err := h.countryService.GetAll(ctx)
	if err != nil {
		h.logger.Error("failed to load catalog", zap.Error(err))
		return h.send(newHTMLMessage(chatID, msgQuizUnavailable))
	}

	game := service.NewGame(countries, settings.RoundLength, nil)
	if err := game.Start(continent); err != nil {
		if errors.Is(err, service.ErrInsufficientPool) {
			return h.send(newHTMLMessage(chatID, msgPoolTooSmall))
		}
		return fmt.Errorf("start round: %w", err)
	}

	h.logger.Info("round started",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
		zap.String("continent", game.Continent()),
		zap.Int("questions", game.TotalQuestions()),
	)

	sess := h.sessions.GetOrCreate(chatID)

	// Drop the previous round's screen so its stale buttons cannot fire
	// into the new round.
	if old := sess.Screen(); old != 0 {
		h.deleteMessage(chatID, old)
		sess.SetScreen(0)
	}
	h.audio.Stop(chatID)

	sess.Swap(game)

	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
	)
	sess.Do(func(g *service.Game) {
		q := g.CurrentQuestion()
		text = formatQuestion(q, g.QuestionNumber(), g.TotalQuestions())
		kb = buildAnswerKeyboard(q)
	})

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = kb

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send question: %w", err)
	}
	sess.SetScreen(sent.MessageID)

	return nil
}

// stopRound tears down the chat's session: timer, audio, state.
func (h *Handler) stopRound(chatID int64) {
	h.sessions.Delete(chatID)
	h.audio.Stop(chatID)
}

// advanceRound moves the game past an answered question and rewrites the
// quiz screen, either with the next question or the round result. A
// question that has not been answered yet stays put, which makes stale
// timer callbacks harmless.
func (h *Handler) advanceRound(chatID int64, soundEnabled bool) {
	sess, ok := h.sessions.Get(chatID)
	if !ok {
		return
	}

	var (
		text     string
		kb       tgbotapi.InlineKeyboardMarkup
		rendered bool
		over     bool
	)

	sess.Do(func(g *service.Game) {
		if !g.Answered() {
			return
		}

		if g.NextQuestion() {
			q := g.CurrentQuestion()
			text = formatQuestion(q, g.QuestionNumber(), g.TotalQuestions())
			kb = buildAnswerKeyboard(q)
		} else {
			text = formatRoundResult(g.Score(), g.TotalQuestions())
			kb = buildRoundResultKeyboard(g.Continent())
			over = true
		}
		rendered = true
	})

	if !rendered {
		return
	}

	if screen := sess.Screen(); screen != 0 {
		_ = h.editMessage(chatID, screen, text, &kb)
	}

	if over && soundEnabled {
		h.audio.PlaySound(chatID, SoundComplete)
	}
}
