// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"flagquiz/internal/domain/entities"
)

// Error and status messages.
const (
	msgInternalError         = "Something went wrong. Please try again later."
	msgQuizUnavailable       = "Could not start a round. Please try again later."
	msgPoolTooSmall          = "Not enough countries in that region for a round. Try another continent or \"all\"."
	msgNoActiveRound         = "No active round. Send /play to start one."
	msgRoundStopped          = "Round stopped. Send /play whenever you want another go."
	msgContinentsUnavailable = "Could not load the continent list. Please try again later."
	msgSettingsUnavailable   = "Could not load your settings. Please try again later."
	msgUnknownCommand        = "Unknown command. Available commands:\n\n/play — start a round\n/continents — pick a continent\n/settings — preferences\n/stop — abandon the round\n/help — how to play"
	msgNotACommand           = "Tap the answer buttons to play. Send /play to start a round."
	msgPickContinent         = "🌍 Which continent should your rounds draw from?"
	msgPickLength            = "📝 How many questions per round?"
	msgPickReminderHour      = "🕕 When should the daily reminder arrive? Hours are UTC."
)

const msgWelcome = "👋 <b>Welcome to the flag quiz!</b>\n\n" +
	"I show you a flag, you pick the country. Ten flags per round, " +
	"one guess per flag.\n\n" +
	"▶️ /play — start a round\n" +
	"🌍 /continents — play a single continent\n" +
	"⚙️ /settings — round length, sounds, daily reminder\n\n" +
	"Good luck! 🍀"

const msgHelp = "<b>How to play</b>\n\n" +
	"▶️ /play starts a round of flags. Tap the country you think the " +
	"flag belongs to — you get one guess per flag, then the round moves " +
	"on by itself (or tap <b>Next</b>).\n\n" +
	"🌍 /play europe (or /continents) limits the round to one continent.\n" +
	"⏹ /stop abandons the running round.\n" +
	"⚙️ /settings changes the round length, sound effects and the daily " +
	"reminder.\n\n" +
	"Scores live only inside a round; a new round always starts at zero."

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// formatQuestion renders a question screen: the flag to identify and the
// round position.
func formatQuestion(q *entities.Question, number, total int) string {
	return fmt.Sprintf(
		"<b>Question %d of %d</b>\n\n%s\n\nWhich country does this flag belong to?",
		number,
		total,
		q.Target.FlagEmoji(),
	)
}

// formatFeedback renders the reveal screen after an answer.
func formatFeedback(res *entities.Result, q *entities.Question, number, total int) string {
	correct, _ := q.OptionByCode(res.CorrectCode)

	var verdict string
	if res.Correct {
		verdict = "✅ <b>Correct!</b>"
	} else {
		verdict = "❌ <b>Wrong.</b>"
	}

	return fmt.Sprintf(
		"<b>Question %d of %d</b>\n\n%s  %s\n\n%s That's the flag of <b>%s</b>.",
		number,
		total,
		q.Target.FlagEmoji(),
		correct.Name,
		verdict,
		correct.Name,
	)
}

// formatRoundResult renders the round-over screen.
func formatRoundResult(score, total int) string {
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	emoji, message := "🗺", "Keep exploring the map!"
	switch {
	case percentage >= 90:
		emoji, message = "🌟", "Outstanding! A true geographer."
	case percentage >= 70:
		emoji, message = "👍", "Nice work!"
	case percentage >= 50:
		emoji, message = "💪", "Not bad, keep going!"
	}

	progressBar := buildProgressBar(score, total, 10)

	return fmt.Sprintf(
		"%s <b>Round over!</b>\n\nScore: <b>%d/%d (%.0f%%)</b>\n%s\n\n%s",
		emoji,
		score,
		total,
		percentage,
		progressBar,
		message,
	)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// formatContinents renders the continent picker text.
func formatContinents(labels []string) string {
	var sb strings.Builder
	sb.WriteString("🌍 <b>Pick a continent to play:</b>\n\n")
	for _, label := range labels {
		sb.WriteString(fmt.Sprintf("• %s\n", label))
	}
	sb.WriteString("\nOr play the whole world at once.")
	return sb.String()
}

// formatSettings renders the settings screen text.
func formatSettings(settings *entities.UserSettings) string {
	return fmt.Sprintf(
		"<b>⚙️ Settings</b>\n\n"+
			"🌍 <b>Continent:</b> %s\n"+
			"📝 <b>Questions per round:</b> %d\n"+
			"🔊 <b>Sound effects:</b> %s\n"+
			"⏰ <b>Daily reminder:</b> %s\n",
		formatContinentPref(settings.Continent),
		settings.RoundLength,
		formatBool(settings.SoundEnabled),
		formatReminder(settings),
	)
}

// formatReminderNudge renders the daily reminder, with a teaser flag
// when one is available.
func formatReminderNudge(teaser *entities.Country) string {
	if teaser == nil {
		return "⏰ Time for your daily flags!\n\nTen flags are waiting. Can you beat yesterday's score?"
	}

	return fmt.Sprintf(
		"⏰ Time for your daily flags!\n\n%s Recognize this one? Ten more are waiting.",
		teaser.FlagEmoji(),
	)
}

func formatContinentPref(continent string) string {
	if strings.EqualFold(continent, "all") {
		return "All"
	}
	return continent
}

func formatBool(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func formatReminder(settings *entities.UserSettings) string {
	if !settings.ReminderEnabled {
		return "off"
	}
	return fmt.Sprintf("on, %02d:00 UTC", settings.ReminderHour)
}
