package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"flagquiz/internal/service"
)

// handleCallback routes inline keyboard presses to their handlers.
func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionPlay:
		_ = h.withErrorHandling(h.handlePlayCallback(cb, cd))(ctx, chatID)
	case actionAnswer:
		_ = h.withErrorHandling(h.handleAnswerCallback(cb, cd))(ctx, chatID)
	case actionNext:
		_ = h.withErrorHandling(h.handleNextCallback(cb))(ctx, chatID)
	case actionStop:
		_ = h.withErrorHandling(h.handleStopCallback(cb))(ctx, chatID)
	case actionSay:
		_ = h.withErrorHandling(h.handleSayCallback(cb, cd))(ctx, chatID)
	case actionSettings:
		_ = h.withErrorHandling(h.handleSettingsCallback(cb, cd))(ctx, chatID)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
	}
}

// handlePlayCallback starts a round from an inline button, optionally
// pinned to the continent carried in the callback data.
func (h *Handler) handlePlayCallback(cb *tgbotapi.CallbackQuery, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		var continent string
		if len(cd.Params) > 0 {
			continent = cd.Params[0]
		}

		h.answerCallback(cb.ID, "")
		return h.startRound(ctx, cb.From.ID, chatID, continent)
	}
}

// handleAnswerCallback grades a tapped option, shows the feedback screen
// and arms the auto-advance timer. Repeat taps on the same question and
// taps on a dead round only get a toast.
func (h *Handler) handleAnswerCallback(cb *tgbotapi.CallbackQuery, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(cd.Params) == 0 {
			h.answerCallback(cb.ID, "")
			return nil
		}
		code := cd.Params[0]

		sess, ok := h.sessions.Get(chatID)
		if !ok {
			h.answerCallback(cb.ID, msgNoActiveRound)
			return nil
		}

		settings := h.settingsOrDefault(ctx, cb.From.ID)

		var (
			text    string
			kb      tgbotapi.InlineKeyboardMarkup
			correct bool
			graded  bool
		)
		sess.Do(func(g *service.Game) {
			q := g.CurrentQuestion()
			res := g.SubmitAnswer(code)
			if q == nil || res == nil {
				return
			}

			text = formatFeedback(res, q, g.QuestionNumber(), g.TotalQuestions())
			kb = buildFeedbackKeyboard(res.CorrectCode)
			correct = res.Correct
			graded = true
		})

		if !graded {
			h.answerCallback(cb.ID, "")
			return nil
		}

		sess.SetScreen(cb.Message.MessageID)
		if err := h.editMessage(chatID, cb.Message.MessageID, text, &kb); err != nil {
			return err
		}

		if settings.SoundEnabled {
			if correct {
				h.audio.PlaySound(chatID, SoundSuccess)
			} else {
				h.audio.PlaySound(chatID, SoundError)
			}
		}

		soundEnabled := settings.SoundEnabled
		sess.ScheduleAdvance(h.advanceDelay, func() {
			h.advanceRound(chatID, soundEnabled)
		})

		if correct {
			h.answerCallback(cb.ID, "✅")
		} else {
			h.answerCallback(cb.ID, "❌")
		}
		return nil
	}
}

// handleNextCallback advances to the next question without waiting for
// the timer.
func (h *Handler) handleNextCallback(cb *tgbotapi.CallbackQuery) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sess, ok := h.sessions.Get(chatID)
		if !ok {
			h.answerCallback(cb.ID, msgNoActiveRound)
			return nil
		}
		sess.CancelAdvance()

		settings := h.settingsOrDefault(ctx, cb.From.ID)
		h.advanceRound(chatID, settings.SoundEnabled)

		h.answerCallback(cb.ID, "")
		return nil
	}
}

// handleStopCallback abandons the round from the quiz screen.
func (h *Handler) handleStopCallback(cb *tgbotapi.CallbackQuery) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.stopRound(chatID)

		if err := h.editMessage(chatID, cb.Message.MessageID, msgRoundStopped, nil); err != nil {
			return err
		}

		h.answerCallback(cb.ID, "")
		return nil
	}
}

// handleSayCallback pronounces the country named by the callback data.
// Codes that no longer resolve against the catalog get a quiet ack.
func (h *Handler) handleSayCallback(cb *tgbotapi.CallbackQuery, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(cd.Params) == 0 {
			h.answerCallback(cb.ID, "")
			return nil
		}

		country, err := h.countryService.GetByCode(ctx, cd.Params[0])
		if err != nil {
			h.logger.Debug("unknown country code in callback",
				zap.String("data", cb.Data),
				zap.Error(err),
			)
			h.answerCallback(cb.ID, "")
			return nil
		}

		h.audio.PlayCountryName(chatID, country.Code)
		h.answerCallback(cb.ID, "🔊 "+country.Name)
		return nil
	}
}
