package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"flagquiz/internal/domain/entities"
)

// ReminderRepository lists the users whose daily reminder is due.
type ReminderRepository interface {
	GetReminderRecipients(ctx context.Context, hour int) ([]entities.ReminderRecipient, error)
}

// ReminderNotifier delivers a reminder nudge to a chat. Implemented by
// the telegram handler.
type ReminderNotifier interface {
	SendReminder(userID, chatID int64)
}

// ReminderService sends the daily "come play" nudge. Every full hour it
// collects the users whose configured reminder hour (UTC) just arrived
// and hands them to the notifier.
type ReminderService struct {
	reminderRepo ReminderRepository
	notifier     ReminderNotifier
	logger       *zap.Logger
}

func NewReminderService(reminderRepo ReminderRepository, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start runs the scheduling loop until ctx is canceled.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started")

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc("0 * * * *", func() {
		if err := s.sendDueReminders(ctx, time.Now().UTC().Hour()); err != nil {
			s.logger.Error("failed to send due reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

// sendDueReminders notifies every recipient whose reminder hour matches.
func (s *ReminderService) sendDueReminders(ctx context.Context, hour int) error {
	if s.notifier == nil {
		return fmt.Errorf("notifier not initialized")
	}

	recipients, err := s.reminderRepo.GetReminderRecipients(ctx, hour)
	if err != nil {
		return fmt.Errorf("get reminder recipients: %w", err)
	}

	for _, r := range recipients {
		s.notifier.SendReminder(r.UserID, r.ChatID)
	}

	if len(recipients) > 0 {
		s.logger.Info("reminders sent",
			zap.Int("hour", hour),
			zap.Int("count", len(recipients)),
		)
	}

	return nil
}
