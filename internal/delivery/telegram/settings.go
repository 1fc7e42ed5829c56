package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleSettingsCallback drives the settings screens. The first param
// names the screen, the optional second carries a chosen value; after a
// value is applied the user lands back on the menu.
func (h *Handler) handleSettingsCallback(cb *tgbotapi.CallbackQuery, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		userID := cb.From.ID

		sub := settingsMenu
		if len(cd.Params) > 0 {
			sub = cd.Params[0]
		}
		var value string
		if len(cd.Params) > 1 {
			value = cd.Params[1]
		}

		switch sub {
		case settingsMenu:
			// Straight to the re-render below.

		case settingsContinent:
			if value == "" {
				labels, err := h.countryService.Continents(ctx)
				if err != nil {
					return fmt.Errorf("load continents: %w", err)
				}

				kb := buildContinentPrefKeyboard(labels)
				h.answerCallback(cb.ID, "")
				return h.editMessage(chatID, cb.Message.MessageID, msgPickContinent, &kb)
			}
			if err := h.settingsService.UpdateContinent(ctx, userID, value); err != nil {
				return fmt.Errorf("update continent: %w", err)
			}

		case settingsLength:
			if value == "" {
				kb := buildLengthKeyboard()
				h.answerCallback(cb.ID, "")
				return h.editMessage(chatID, cb.Message.MessageID, msgPickLength, &kb)
			}

			length, err := strconv.Atoi(value)
			if err != nil || length < 1 {
				h.logger.Debug("bad round length in callback", zap.String("data", cb.Data))
				h.answerCallback(cb.ID, "")
				return nil
			}
			if err := h.settingsService.UpdateRoundLength(ctx, userID, length); err != nil {
				return fmt.Errorf("update round length: %w", err)
			}

		case settingsSound:
			if err := h.settingsService.ToggleSound(ctx, userID); err != nil {
				return fmt.Errorf("toggle sound: %w", err)
			}

		case settingsReminder:
			if err := h.settingsService.ToggleReminder(ctx, userID); err != nil {
				return fmt.Errorf("toggle reminder: %w", err)
			}

		case settingsReminderHour:
			if value == "" {
				kb := buildReminderHourKeyboard()
				h.answerCallback(cb.ID, "")
				return h.editMessage(chatID, cb.Message.MessageID, msgPickReminderHour, &kb)
			}

			hour, err := strconv.Atoi(value)
			if err != nil || hour < 0 || hour > 23 {
				h.logger.Debug("bad reminder hour in callback", zap.String("data", cb.Data))
				h.answerCallback(cb.ID, "")
				return nil
			}
			if err := h.settingsService.UpdateReminderHour(ctx, userID, hour); err != nil {
				return fmt.Errorf("update reminder hour: %w", err)
			}

		default:
			h.logger.Debug("unknown settings callback", zap.String("data", cb.Data))
			h.answerCallback(cb.ID, "")
			return nil
		}

		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		kb := buildSettingsKeyboard()
		h.answerCallback(cb.ID, "")
		return h.editMessage(chatID, cb.Message.MessageID, formatSettings(settings), &kb)
	}
}
