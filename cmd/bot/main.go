package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"flagquiz/assets"
	"flagquiz/internal/config"
	"flagquiz/internal/delivery/telegram"
	"flagquiz/internal/infra/postgres"
	"flagquiz/internal/logger"
	"flagquiz/internal/repository"
	"flagquiz/internal/service"
	"flagquiz/internal/storage"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to connect to telegram", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "play",
			Description: "Start a round of flag questions",
		},
		{
			Command:     "continents",
			Description: "Pick a continent to play",
		},
		{
			Command:     "settings",
			Description: "Preferences",
		},
		{
			Command:     "stop",
			Description: "Abandon the current round",
		},
		{
			Command:     "help",
			Description: "How to play",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	countryRepo, err := repository.NewCountryRepository(cfg.CatalogJSONPath)
	if errors.Is(err, os.ErrNotExist) {
		zl.Warn("catalog file missing, using the embedded catalog",
			zap.String("path", cfg.CatalogJSONPath),
		)
		countryRepo, err = repository.NewCountryRepositoryFromBytes(assets.DefaultCatalog)
	}
	if err != nil {
		zl.Fatal("failed to load country catalog",
			zap.String("path", cfg.CatalogJSONPath),
			zap.Error(err),
		)
	}
	zl.Info("country catalog loaded", zap.Int("countries", countryRepo.Len()))

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	countryService := service.NewCountryService(countryRepo)
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingsRepo, cfg.Quiz.QuestionsPerRound)

	sessions := storage.NewSessionStorage()
	audio := telegram.NewAudioManager(bot, zl)

	handler := telegram.NewHandler(
		bot,
		zl,
		countryService,
		userService,
		settingsService,
		sessions,
		audio,
		cfg.Quiz.AdvanceDelay,
	)

	reminderService := service.NewReminderService(settingsRepo, zl)
	reminderService.SetNotifier(handler)
	go reminderService.Start(ctx)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown complete")
}
