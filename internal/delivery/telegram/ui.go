package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"flagquiz/internal/domain/entities"
)

// buildAnswerKeyboard builds the option buttons for a question, one row
// per country plus a stop row.
func buildAnswerKeyboard(q *entities.Question) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, option := range q.Options {
		button := tgbotapi.NewInlineKeyboardButtonData(option.Name, buildAnswerCallback(option.Code))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", buildStopCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFeedbackKeyboard builds the reveal-screen keyboard shown between
// the answer and the auto-advance.
func buildFeedbackKeyboard(correctCode string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildNextCallback()),
			tgbotapi.NewInlineKeyboardButtonData("🔊 Pronounce", buildSayCallback(correctCode)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", buildStopCallback()),
		),
	)
}

// buildRoundResultKeyboard builds the round-over keyboard. The replay
// button restarts with the same continent filter.
func buildRoundResultKeyboard(continent string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildPlayCallback(continent)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌍 Continents", buildSettingsCallback(settingsContinent)),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildContinentsKeyboard builds the continent picker for starting a
// round, two continents per row.
func buildContinentsKeyboard(labels []string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 All", buildPlayCallback("all")),
		),
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, label := range labels {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildPlayCallback(label)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildSettingsKeyboard builds the main settings keyboard.
func buildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌍 Continent", buildSettingsCallback(settingsContinent)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Round length", buildSettingsCallback(settingsLength)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔊 Sound", buildSettingsCallback(settingsSound)),
			tgbotapi.NewInlineKeyboardButtonData("⏰ Reminder", buildSettingsCallback(settingsReminder)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🕕 Reminder hour", buildSettingsCallback(settingsReminderHour)),
		),
	)
}

// buildContinentPrefKeyboard builds the preferred-continent picker in
// settings.
func buildContinentPrefKeyboard(labels []string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 All", buildSettingsCallback(settingsContinent, "all")),
		),
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, label := range labels {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(settingsContinent, label)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildLengthKeyboard builds the questions-per-round picker.
func buildLengthKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("5 questions", buildLengthCallback(5)),
			tgbotapi.NewInlineKeyboardButtonData("10 questions", buildLengthCallback(10)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("15 questions", buildLengthCallback(15)),
			tgbotapi.NewInlineKeyboardButtonData("20 questions", buildLengthCallback(20)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildReminderHourKeyboard builds the reminder hour picker (UTC).
func buildReminderHourKeyboard() tgbotapi.InlineKeyboardMarkup {
	hours := []int{6, 8, 12, 16, 18, 20}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, hour := range hours {
		label := fmt.Sprintf("%02d:00", hour)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildReminderHourCallback(hour)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildReminderKeyboard builds the single play button under the daily
// nudge.
func buildReminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Play now", buildPlayCallback("")),
		),
	)
}
