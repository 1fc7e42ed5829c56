package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"flagquiz/internal/domain/entities"
	"flagquiz/internal/storage"
)

type CountryService interface {
	GetByCode(ctx context.Context, code string) (*entities.Country, error)
	GetAll(ctx context.Context) ([]entities.Country, error)
	GetRandom(ctx context.Context) (*entities.Country, error)
	Continents(ctx context.Context) ([]string, error)
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
	Deactivate(ctx context.Context, userID int64) error
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateContinent(ctx context.Context, userID int64, continent string) error
	UpdateRoundLength(ctx context.Context, userID int64, roundLength int) error
	ToggleSound(ctx context.Context, userID int64) error
	ToggleReminder(ctx context.Context, userID int64) error
	UpdateReminderHour(ctx context.Context, userID int64, hour int) error
}

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	countryService  CountryService
	userService     UserService
	settingsService SettingsService
	sessions        *storage.SessionStorage
	audio           *AudioManager
	advanceDelay    time.Duration
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	countryService CountryService,
	userService UserService,
	settingsService SettingsService,
	sessions *storage.SessionStorage,
	audio *AudioManager,
	advanceDelay time.Duration,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		countryService:  countryService,
		userService:     userService,
		settingsService: settingsService,
		sessions:        sessions,
		audio:           audio,
		advanceDelay:    advanceDelay,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if err := h.userService.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		messageID := update.Message.MessageID

		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart(from.ID))(ctx, chatID)

		case "play":
			_ = h.withErrorHandling(h.handlePlay(from.ID, update.Message.CommandArguments(), messageID))(ctx, chatID)

		case "continents":
			_ = h.withErrorHandling(h.handleContinents(messageID))(ctx, chatID)

		case "settings":
			_ = h.withErrorHandling(h.handleSettings(from.ID, messageID))(ctx, chatID)

		case "stop":
			_ = h.withErrorHandling(h.handleStop(messageID))(ctx, chatID)

		case "help":
			_ = h.withErrorHandling(h.handleHelp())(ctx, chatID)

		default:
			h.sendError(chatID, msgUnknownCommand)
		}

		return
	}

	// Plain text has no role in a button quiz; nudge toward /play.
	h.sendError(chatID, msgNotACommand)
}

// SendReminder delivers the daily nudge. Implements the reminder
// service's notifier.
func (h *Handler) SendReminder(userID, chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	teaser, err := h.countryService.GetRandom(ctx)
	if err != nil {
		h.logger.Debug("reminder teaser unavailable", zap.Error(err))
		teaser = nil
	}

	msg := newHTMLMessage(chatID, formatReminderNudge(teaser))
	msg.ReplyMarkup = buildReminderKeyboard()

	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Warn("failed to send reminder",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)

		// A blocked bot can never reach this chat again; stop trying.
		if strings.Contains(strings.ToLower(err.Error()), "blocked") {
			if err := h.userService.Deactivate(ctx, userID); err != nil {
				h.logger.Error("failed to deactivate user",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			}
		}
	}
}

func (h *Handler) settingsOrDefault(ctx context.Context, userID int64) *entities.UserSettings {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		h.logger.Warn("falling back to default settings",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return entities.NewUserSettings(userID)
	}
	return settings
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// editMessage rewrites a previously sent message in place.
func (h *Handler) editMessage(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = kb
	return h.send(edit)
}

// deleteMessage removes a message, ignoring failures: the message may
// already be gone.
func (h *Handler) deleteMessage(chatID int64, messageID int) {
	if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		h.logger.Debug("failed to delete message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}

// answerCallback clears the user's "clock" on a tapped button, with an
// optional toast text.
func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Debug("failed to answer callback", zap.Error(err))
	}
}
